package geometry_test

import (
	"math"
	"testing"

	"radialplot/internal/geometry"
	"radialplot/internal/mathutil"
	"radialplot/internal/scale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gen(t scale.Type, n int, in geometry.Interpolation) *geometry.Generator {
	return geometry.NewGenerator(scale.New(t, 3, 43, n), in, geometry.DefaultTension)
}

func TestAreaLinearClosedVertices(t *testing.T) {
	g := gen(scale.Linear, 4, geometry.LinearClosed)
	p := g.Area([]float64{100, 0, 50, 100})

	require.Len(t, p, 5)
	assert.Equal(t, geometry.MoveTo, p[0].Op)
	assert.Equal(t, geometry.Close, p[4].Op)

	assert.InDelta(t, -46, p[0].P[0][1], 1e-9)
	assert.InDelta(t, 3, p[1].P[0][0], 1e-9, "zero sits on the inner radius")
	assert.InDelta(t, g.Scale.Value(50), p[2].P[0][1], 1e-9)
}

func TestInterpolationDoesNotMoveVertices(t *testing.T) {
	values := []float64{30, 10, 20, 25, 15}
	lin := gen(scale.Linear, 5, geometry.LinearClosed).Area(values)
	card := gen(scale.Linear, 5, geometry.CardinalClosed).Area(values)

	require.Equal(t, geometry.CubeTo, card[1].Op)
	// Vertex k of the linear path is the end point of cubic k of the spline.
	for k := 1; k < len(values); k++ {
		assert.InDelta(t, lin[k].P[0][0], card[k].P[2][0], 1e-9)
		assert.InDelta(t, lin[k].P[0][1], card[k].P[2][1], 1e-9)
	}
	last := card[len(values)].P[2]
	assert.InDelta(t, lin[0].P[0][0], last[0], 1e-9, "spline closes on the first vertex")
}

func TestCardinalFallsBackBelowThreePoints(t *testing.T) {
	p := gen(scale.Linear, 2, geometry.CardinalClosed).Area([]float64{40, 60})
	for _, c := range p {
		assert.NotEqual(t, geometry.CubeTo, c.Op)
	}
}

func TestAxis(t *testing.T) {
	g := gen(scale.Linear, 6, geometry.LinearClosed)
	for i := 0; i < 6; i++ {
		from, to := g.Axis(i)
		assert.Equal(t, mathutil.Vec2{}, from)
		assert.InDelta(t, 46, to.Len(), 1e-9)
	}
}

func TestRings(t *testing.T) {
	g := gen(scale.Linear, 6, geometry.LinearClosed)
	rings := g.Rings()
	require.Len(t, rings, 6)

	assert.Equal(t, 0.0, rings[0].Inner)
	assert.Equal(t, 3.0, rings[0].Outer)
	assert.Equal(t, 3.0, rings[1].Inner)
	assert.InDelta(t, g.Scale.Value(20), rings[1].Outer, 1e-12)
	assert.InDelta(t, g.Scale.Value(80), rings[5].Inner, 1e-12)
	assert.InDelta(t, 46, rings[5].Outer, 1e-12)

	for k, r := range rings {
		want := "increment-a"
		if k%2 == 1 {
			want = "increment-b"
		}
		assert.Equal(t, want, r.Class)
	}
}

func TestIncrementLabels(t *testing.T) {
	labels := gen(scale.Linear, 6, geometry.LinearClosed).IncrementLabels()
	require.Len(t, labels, 6)
	assert.Equal(t, "0", labels[0].Text)
	assert.Equal(t, "100", labels[5].Text)
	assert.Equal(t, 5.0, labels[3].Pos[0])

	for _, n := range []int{3, 6, 11} {
		assert.Empty(t, gen(scale.Log, n, geometry.LinearClosed).IncrementLabels())
	}
}

func TestLabelPlacement(t *testing.T) {
	g := gen(scale.Linear, 4, geometry.LinearClosed)
	m := g.Label(1, "B")
	assert.Equal(t, "B", m.Text)
	assert.InDelta(t, 90, m.Rotate, 1e-9)
	assert.InDelta(t, 48, m.Pos.Len(), 1e-9)
	assert.InDelta(t, math.Sin(g.Scale.Angle(0.8))*48, m.Pos[0], 1e-9)
}

func TestPathString(t *testing.T) {
	var p geometry.Path
	p.MoveTo(mathutil.Vec2{0, -46})
	p.LineTo(mathutil.Vec2{1.23456, 0.5})
	p.CubeTo(mathutil.Vec2{1, 2}, mathutil.Vec2{3, 4}, mathutil.Vec2{-0.00001, 6})
	p.Close()
	assert.Equal(t, "M0,-46L1.2346,0.5C1,2,3,4,0,6Z", p.String())
}

func TestFlattenCircle(t *testing.T) {
	var p geometry.Path
	p.Circle(mathutil.Vec2{}, 10, false)
	contours := p.Flatten(0.01)
	require.Len(t, contours, 1)
	assert.True(t, contours[0].Closed)
	for _, pt := range contours[0].Points {
		assert.InDelta(t, 10, pt.Len(), 0.03)
	}
}

func TestParseInterpolation(t *testing.T) {
	in, err := geometry.ParseInterpolation("Cardinal-Closed")
	require.NoError(t, err)
	assert.Equal(t, geometry.CardinalClosed, in)
	_, err = geometry.ParseInterpolation("basis")
	assert.Error(t, err)
}
