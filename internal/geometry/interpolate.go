package geometry

import (
	"fmt"
	"strings"

	"radialplot/internal/mathutil"
)

// Interpolation selects how the area curves between its vertices.
type Interpolation int

const (
	LinearClosed Interpolation = iota
	CardinalClosed
)

// DefaultTension is the cardinal spline tension.
const DefaultTension = 0.7

func (in Interpolation) String() string {
	if in == CardinalClosed {
		return "cardinal-closed"
	}
	return "linear-closed"
}

// ParseInterpolation accepts "linear-closed" or "cardinal-closed".
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear-closed":
		return LinearClosed, nil
	case "cardinal-closed":
		return CardinalClosed, nil
	}
	return LinearClosed, fmt.Errorf("geometry: unknown interpolation %q (valid: linear-closed, cardinal-closed)", s)
}

// Closed joins pts into a closed path.
func Closed(pts []mathutil.Vec2, in Interpolation, tension float64) Path {
	if in == CardinalClosed && len(pts) >= 3 {
		return cardinalClosed(pts, tension)
	}
	return linearClosed(pts)
}

func linearClosed(pts []mathutil.Vec2) Path {
	if len(pts) == 0 {
		return nil
	}
	p := make(Path, 0, len(pts)+1)
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
	return p
}

// cardinalClosed builds a closed cardinal spline as cubic segments. The
// tangent at p[i] is (1−tension)/2 · (p[i+1] − p[i−1]); segment i runs from
// p[i] with control points p[i]+t[i] and p[i+1]−t[i+1].
func cardinalClosed(pts []mathutil.Vec2, tension float64) Path {
	n := len(pts)
	a := (1 - tension) / 2

	tangents := make([]mathutil.Vec2, n)
	for i := range pts {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		tangents[i] = next.Sub(prev).Scale(a)
	}

	p := make(Path, 0, n+2)
	p.MoveTo(pts[0])
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p.CubeTo(pts[i].Add(tangents[i]), pts[j].Sub(tangents[j]), pts[j])
	}
	p.Close()
	return p
}
