package chart

import (
	"fmt"

	"radialplot/internal/geometry"
	"radialplot/internal/mathutil"
	"radialplot/internal/scene"
)

// Hover grows point i to the hover radius and, with tooltips enabled, shows
// "name: value%" above it. Hover growth is visual only.
func (c *Chart) Hover(i int) {
	if i < 0 || i >= len(c.points) || i == c.state.Hovered {
		return
	}
	c.Unhover()
	if c.state.Hovered >= 0 {
		// The dragged point keeps its hover state until the drag ends.
		return
	}

	c.state.Hovered = i
	if c.points[i].R > 0 {
		c.points[i].R = c.opts.HoverPointRadius
	}
	if c.opts.Tooltips {
		c.showTooltip(i)
	}
}

// Unhover restores the hovered point and removes the tooltip. The point being
// dragged stays hovered.
func (c *Chart) Unhover() {
	i := c.state.Hovered
	if i < 0 {
		return
	}
	if c.state.InDrag && c.drag.index == i {
		return
	}
	if c.points[i].R > 0 {
		c.points[i].R = c.opts.PointRadius
	}
	c.hideTooltip()
	c.state.Hovered = -1
}

func (c *Chart) showTooltip(i int) {
	c.hideTooltip()
	pt := c.points[i]
	e := c.data[i]
	text := fmt.Sprintf("%s: %s%%", e.Name, geometry.FormatNumber(e.Value))
	c.tooltip = c.surface.Append(c.plot,
		scene.NewText("tooltip-text", pt.Center.Add(mathutil.Vec2{-13, -4}), text))
}

func (c *Chart) hideTooltip() {
	if c.tooltip != nil {
		c.surface.Remove(c.tooltip)
		c.tooltip = nil
	}
}
