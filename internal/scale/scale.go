// Package scale maps chart values to radii and slot indices to angles.
package scale

import (
	"fmt"
	"math"
	"strings"

	"radialplot/internal/mathutil"
)

// Type selects the radial value mapping.
type Type int

const (
	Linear Type = iota
	Log
)

// MaxValue is the top of the value domain; values are percentages.
const MaxValue = 100

func (t Type) String() string {
	if t == Log {
		return "log"
	}
	return "linear"
}

// ParseType accepts "linear" or "log".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return Linear, nil
	case "log":
		return Log, nil
	}
	return Linear, fmt.Errorf("scale: unknown type %q (valid: linear, log)", s)
}

// Model holds the value and angle scales for one dataset size.
// It is rebuilt whenever the size, scale type or radii change.
type Model struct {
	Type   Type
	Inner  float64
	Radius float64
	N      int

	// Piecewise mapping: domain[k] → rng[k], interpolated through fwd.
	domain []float64
	rng    []float64
}

// New builds a model for n slots.
//
// Linear maps [ε, 100] onto [inner, inner+radius]. Log is a three-point
// piecewise log mapping [ε, 1, 100] onto [inner, inner+radius·2/100,
// inner+radius] so values near zero stay finite.
func New(t Type, inner, radius float64, n int) *Model {
	if n < 1 {
		n = 1
	}
	m := &Model{Type: t, Inner: inner, Radius: radius, N: n}
	if t == Log {
		m.domain = []float64{mathutil.Epsilon, 1, MaxValue}
		m.rng = []float64{inner, inner + radius*2/100, inner + radius}
	} else {
		m.domain = []float64{mathutil.Epsilon, MaxValue}
		m.rng = []float64{inner, inner + radius}
	}
	return m
}

// Outer is the radius of the 100% ring.
func (m *Model) Outer() float64 {
	return m.Inner + m.Radius
}

func (m *Model) fwd(v float64) float64 {
	if m.Type == Log {
		return math.Log(v)
	}
	return v
}

func (m *Model) inv(u float64) float64 {
	if m.Type == Log {
		return math.Exp(u)
	}
	return u
}

// Value maps v to a radius. v ≤ 0 (or NaN) is treated as ε and v > 100 as 100.
func (m *Model) Value(v float64) float64 {
	v = mathutil.Clamp(v, mathutil.Epsilon, MaxValue)

	k := 0
	for k < len(m.domain)-2 && v > m.domain[k+1] {
		k++
	}
	u0, u1 := m.fwd(m.domain[k]), m.fwd(m.domain[k+1])
	t := (m.fwd(v) - u0) / (u1 - u0)
	return mathutil.Lerp(m.rng[k], m.rng[k+1], t)
}

// Invert maps a radius back to a value. Radii outside the range extrapolate
// from the nearest piece; callers clamp the result.
func (m *Model) Invert(r float64) float64 {
	k := 0
	for k < len(m.rng)-2 && r > m.rng[k+1] {
		k++
	}
	r0, r1 := m.rng[k], m.rng[k+1]
	if r1 == r0 {
		return m.domain[k]
	}
	t := (r - r0) / (r1 - r0)
	u := mathutil.Lerp(m.fwd(m.domain[k]), m.fwd(m.domain[k+1]), t)
	return m.inv(u)
}

// Angle maps slot i to radians: [0, N] → [0, 2π]. Fractional slots are
// allowed (labels sit slightly before their axis).
func (m *Model) Angle(i float64) float64 {
	return i / float64(m.N) * mathutil.Tau
}

// RadiusOf returns the plotted radius of v: zero sits on the inner radius.
func (m *Model) RadiusOf(v float64) float64 {
	if v == 0 {
		return m.Inner
	}
	return m.Value(v)
}

// Point returns the Cartesian position of value v on slot i.
func (m *Model) Point(v float64, i int) mathutil.Vec2 {
	return mathutil.Polar(m.RadiusOf(v), m.Angle(float64(i)))
}
