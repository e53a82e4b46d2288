package mathutil_test

import (
	"math"
	"testing"

	"radialplot/internal/mathutil"

	"github.com/stretchr/testify/assert"
)

func TestPolarTwelveOClock(t *testing.T) {
	p := mathutil.Polar(10, 0)
	assert.InDelta(t, 0, p[0], 1e-12)
	assert.InDelta(t, -10, p[1], 1e-12)

	// Quarter turn lands on the positive x axis (3 o'clock).
	p = mathutil.Polar(10, math.Pi/2)
	assert.InDelta(t, 10, p[0], 1e-12)
	assert.InDelta(t, 0, p[1], 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, mathutil.Clamp(math.NaN(), 1, 5))
	assert.Equal(t, 1.0, mathutil.Clamp(-3, 1, 5))
	assert.Equal(t, 5.0, mathutil.Clamp(9, 1, 5))
	assert.Equal(t, 2.5, mathutil.Clamp(2.5, 1, 5))
}

func TestMat3ComposeAndInvert(t *testing.T) {
	m := mathutil.Mat3Mul(mathutil.Translate(50, 50), mathutil.Scale(2))
	p := m.MulPoint(mathutil.Vec2{3, -4})
	assert.InDelta(t, 56, p[0], 1e-12)
	assert.InDelta(t, 42, p[1], 1e-12)

	back := m.Inverse().MulPoint(p)
	assert.InDelta(t, 3, back[0], 1e-9)
	assert.InDelta(t, -4, back[1], 1e-9)
	assert.InDelta(t, 2, m.MaxScale(), 1e-12)
}

func TestRotMatchesPolar(t *testing.T) {
	// Rotating the 12 o'clock vector by θ gives Polar(r, θ).
	for _, theta := range []float64{0.3, 1.2, 2.9, 4.4} {
		got := mathutil.Rot(theta).MulPoint(mathutil.Vec2{0, -7})
		want := mathutil.Polar(7, theta)
		assert.InDelta(t, want[0], got[0], 1e-9)
		assert.InDelta(t, want[1], got[1], 1e-9)
	}
}
