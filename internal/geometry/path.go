package geometry

import (
	"math"
	"strconv"
	"strings"

	"radialplot/internal/mathutil"
)

// Op is a path command.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	CubeTo
	Close
)

// Cmd is one path command. CubeTo uses P[0], P[1] as control points and P[2]
// as the end point; MoveTo and LineTo use P[0] only.
type Cmd struct {
	Op Op
	P  [3]mathutil.Vec2
}

// Path is a sequence of commands in chart coordinates.
type Path []Cmd

func (p *Path) MoveTo(pt mathutil.Vec2) {
	*p = append(*p, Cmd{Op: MoveTo, P: [3]mathutil.Vec2{pt}})
}

func (p *Path) LineTo(pt mathutil.Vec2) {
	*p = append(*p, Cmd{Op: LineTo, P: [3]mathutil.Vec2{pt}})
}

func (p *Path) CubeTo(c1, c2, pt mathutil.Vec2) {
	*p = append(*p, Cmd{Op: CubeTo, P: [3]mathutil.Vec2{c1, c2, pt}})
}

func (p *Path) Close() {
	*p = append(*p, Cmd{Op: Close})
}

// String renders the path as SVG path data.
func (p Path) String() string {
	var sb strings.Builder
	for _, c := range p {
		switch c.Op {
		case MoveTo:
			sb.WriteByte('M')
			writePoint(&sb, c.P[0])
		case LineTo:
			sb.WriteByte('L')
			writePoint(&sb, c.P[0])
		case CubeTo:
			sb.WriteByte('C')
			writePoint(&sb, c.P[0])
			sb.WriteByte(',')
			writePoint(&sb, c.P[1])
			sb.WriteByte(',')
			writePoint(&sb, c.P[2])
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writePoint(sb *strings.Builder, v mathutil.Vec2) {
	sb.WriteString(FormatNumber(v[0]))
	sb.WriteByte(',')
	sb.WriteString(FormatNumber(v[1]))
}

// FormatNumber prints v with at most 4 decimals and no trailing zeros.
func FormatNumber(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Transform returns a copy of p with every point mapped through m.
func (p Path) Transform(m mathutil.Mat3) Path {
	out := make(Path, len(p))
	for i, c := range p {
		out[i] = c
		for k := range c.P {
			out[i].P[k] = m.MulPoint(c.P[k])
		}
	}
	return out
}

// Contour is one flattened subpath.
type Contour struct {
	Points []mathutil.Vec2
	Closed bool
}

// Flatten converts p into polylines. Cubic segments are subdivided until the
// chord error is under tol.
func (p Path) Flatten(tol float64) []Contour {
	if tol <= 0 {
		tol = 0.05
	}
	var out []Contour
	var cur Contour
	var pen, start mathutil.Vec2

	flush := func() {
		if len(cur.Points) > 1 {
			out = append(out, cur)
		}
		cur = Contour{}
	}

	for _, c := range p {
		switch c.Op {
		case MoveTo:
			flush()
			pen, start = c.P[0], c.P[0]
			cur.Points = append(cur.Points, pen)
		case LineTo:
			if len(cur.Points) == 0 {
				cur.Points = append(cur.Points, pen)
			}
			pen = c.P[0]
			cur.Points = append(cur.Points, pen)
		case CubeTo:
			if len(cur.Points) == 0 {
				cur.Points = append(cur.Points, pen)
			}
			n := cubicSteps(pen, c.P[0], c.P[1], c.P[2], tol)
			for s := 1; s <= n; s++ {
				cur.Points = append(cur.Points, cubicAt(pen, c.P[0], c.P[1], c.P[2], float64(s)/float64(n)))
			}
			pen = c.P[2]
		case Close:
			cur.Closed = true
			flush()
			pen = start
		}
	}
	flush()
	return out
}

// cubicSteps estimates a subdivision count from the control polygon's
// deviation (Wang's formula).
func cubicSteps(p0, p1, p2, p3 mathutil.Vec2, tol float64) int {
	d1 := p0.Sub(p1.Scale(2)).Add(p2).Len()
	d2 := p1.Sub(p2.Scale(2)).Add(p3).Len()
	dd := math.Max(d1, d2)
	n := int(math.Ceil(math.Sqrt(dd * 0.75 / tol)))
	if n < 1 {
		return 1
	}
	if n > 64 {
		return 64
	}
	return n
}

func cubicAt(p0, p1, p2, p3 mathutil.Vec2, t float64) mathutil.Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return p0.Scale(a).Add(p1.Scale(b)).Add(p2.Scale(c)).Add(p3.Scale(d))
}

// kappa places cubic control points for a quarter-circle approximation.
const kappa = 0.5522847498307936

// Circle appends a full circle of radius r centred on c. Clockwise in screen
// space unless ccw is set.
func (p *Path) Circle(c mathutil.Vec2, r float64, ccw bool) {
	k := r * kappa
	top := c.Add(mathutil.Vec2{0, -r})
	right := c.Add(mathutil.Vec2{r, 0})
	bottom := c.Add(mathutil.Vec2{0, r})
	left := c.Add(mathutil.Vec2{-r, 0})

	p.MoveTo(top)
	if !ccw {
		p.CubeTo(top.Add(mathutil.Vec2{k, 0}), right.Add(mathutil.Vec2{0, -k}), right)
		p.CubeTo(right.Add(mathutil.Vec2{0, k}), bottom.Add(mathutil.Vec2{k, 0}), bottom)
		p.CubeTo(bottom.Add(mathutil.Vec2{-k, 0}), left.Add(mathutil.Vec2{0, k}), left)
		p.CubeTo(left.Add(mathutil.Vec2{0, -k}), top.Add(mathutil.Vec2{-k, 0}), top)
	} else {
		p.CubeTo(top.Add(mathutil.Vec2{-k, 0}), left.Add(mathutil.Vec2{0, -k}), left)
		p.CubeTo(left.Add(mathutil.Vec2{0, k}), bottom.Add(mathutil.Vec2{-k, 0}), bottom)
		p.CubeTo(bottom.Add(mathutil.Vec2{k, 0}), right.Add(mathutil.Vec2{0, k}), right)
		p.CubeTo(right.Add(mathutil.Vec2{0, -k}), top.Add(mathutil.Vec2{k, 0}), top)
	}
	p.Close()
}
