package chart

import (
	"math"

	"radialplot/internal/mathutil"
	"radialplot/internal/scale"
)

// DragState is the pointer-edit state.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

type dragController struct {
	state DragState
	index int
}

// Patch describes one drag edit. The chart has already written Value onto
// the caller's entry; hosts that keep their own copy can apply the patch.
type Patch struct {
	ID    int
	Value float64
}

// DragState returns the current state of the drag state machine.
func (c *Chart) DragState() DragState {
	return c.drag.state
}

// DragStart enters Dragging for point i. Only editable charts accept drags.
// A running intro animation is completed first so it cannot overwrite the
// edit.
func (c *Chart) DragStart(i int) bool {
	if !c.opts.Editable || i < 0 || i >= len(c.points) {
		return false
	}
	c.FinishAnimation()
	c.drag = dragController{state: Dragging, index: i}
	c.state.InDrag = true
	return true
}

// DragMove maps the pointer at p (plot coordinates, relative to the centre)
// to a value for entry i, writes it onto the entry and repaints the area and
// that point. The stored value is floor(Invert(|p|)) clamped to [ε, 100].
// Ignored while Idle or when i is not the entry being dragged.
func (c *Chart) DragMove(i int, p mathutil.Vec2) (Patch, bool) {
	if c.drag.state != Dragging || i != c.drag.index || i < 0 || i >= len(c.data) {
		return Patch{}, false
	}

	v := dragValue(c.model, p)
	e := c.data[i]
	e.Value = v

	c.values = c.data.Values(c.logger)
	c.classify()

	c.area.D = c.gen.Area(c.values)
	c.points[i].Center = c.gen.Vertex(v, i)
	c.applyValidityClasses()
	if c.state.Hovered == i && c.opts.Tooltips {
		c.showTooltip(i)
	}

	return Patch{ID: e.ID, Value: v}, true
}

// DragEnd returns to Idle.
func (c *Chart) DragEnd() {
	c.drag = dragController{}
	c.state.InDrag = false
}

func dragValue(m *scale.Model, p mathutil.Vec2) float64 {
	v := math.Floor(m.Invert(p.Len()))
	if math.IsNaN(v) || v < mathutil.Epsilon {
		return mathutil.Epsilon
	}
	if v > scale.MaxValue {
		return scale.MaxValue
	}
	return v
}
