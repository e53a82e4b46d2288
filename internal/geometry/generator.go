package geometry

import (
	"strconv"

	"radialplot/internal/mathutil"
	"radialplot/internal/scale"
)

// IncrementStep is the value spacing of the increment rings.
const IncrementStep = 20

// Generator turns magnitudes into chart geometry for one scale model.
type Generator struct {
	Scale   *scale.Model
	Interp  Interpolation
	Tension float64
}

// NewGenerator returns a generator using the default cardinal tension when
// tension is out of [0, 1].
func NewGenerator(m *scale.Model, in Interpolation, tension float64) *Generator {
	if tension < 0 || tension > 1 {
		tension = DefaultTension
	}
	return &Generator{Scale: m, Interp: in, Tension: tension}
}

// Vertex is the position of value v on slot i.
func (g *Generator) Vertex(v float64, i int) mathutil.Vec2 {
	return g.Scale.Point(v, i)
}

// Vertices places every value on its slot.
func (g *Generator) Vertices(values []float64) []mathutil.Vec2 {
	pts := make([]mathutil.Vec2, len(values))
	for i, v := range values {
		pts[i] = g.Vertex(v, i)
	}
	return pts
}

// Area is the closed outline through values.
func (g *Generator) Area(values []float64) Path {
	return Closed(g.Vertices(values), g.Interp, g.Tension)
}

// Axis runs from the centre to the 100% ring on slot i.
func (g *Generator) Axis(i int) (from, to mathutil.Vec2) {
	return mathutil.Vec2{}, mathutil.Polar(g.Scale.Outer(), g.Scale.Angle(float64(i)))
}

// Ring is one increment band.
type Ring struct {
	Step  int
	Class string
	Inner float64
	Outer float64
	Path  Path
}

// Steps lists the increment values 0, 20, …, 100.
func Steps() []int {
	var out []int
	for s := 0; s <= scale.MaxValue; s += IncrementStep {
		out = append(out, s)
	}
	return out
}

// Rings returns one annulus per increment step, alternating increment-a and
// increment-b by step index.
func (g *Generator) Rings() []Ring {
	steps := Steps()
	rings := make([]Ring, len(steps))
	for k, s := range steps {
		r := Ring{Step: s, Class: "increment-a"}
		if k%2 == 1 {
			r.Class = "increment-b"
		}

		switch lo := s - IncrementStep; {
		case lo < 0:
			r.Inner = 0
		case lo == 0:
			r.Inner = g.Scale.Inner
		default:
			r.Inner = g.Scale.Value(float64(lo))
		}
		if s == 0 {
			r.Outer = g.Scale.Inner
		} else {
			r.Outer = g.Scale.Value(float64(s))
		}

		r.Path.Circle(mathutil.Vec2{}, r.Outer, false)
		if r.Inner > 0 {
			r.Path.Circle(mathutil.Vec2{}, r.Inner, true)
		}
		rings[k] = r
	}
	return rings
}

// TextMark is a positioned label. Rotate is in degrees about Pos.
type TextMark struct {
	Text   string
	Pos    mathutil.Vec2
	Rotate float64
}

// IncrementLabels returns the numeric ring labels. Log spacing makes them
// misleading, so a log scale yields none.
func (g *Generator) IncrementLabels() []TextMark {
	if g.Scale.Type == scale.Log {
		return nil
	}
	lift := g.Scale.Value(IncrementStep) / IncrementStep
	var out []TextMark
	for _, s := range Steps() {
		out = append(out, TextMark{
			Text: strconv.Itoa(s),
			Pos:  mathutil.Vec2{5, -(g.Scale.Value(float64(s)) + lift)},
		})
	}
	return out
}

// Label places the name of slot i just outside the outer ring, nudged back
// a fifth of a slot and rotated to the slot angle.
func (g *Generator) Label(i int, name string) TextMark {
	return TextMark{
		Text:   name,
		Pos:    mathutil.Polar(g.Scale.Outer()+2, g.Scale.Angle(float64(i)-0.2)),
		Rotate: mathutil.Rad2Deg(g.Scale.Angle(float64(i))),
	}
}
