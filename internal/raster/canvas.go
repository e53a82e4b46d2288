package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"radialplot/internal/geometry"
	"radialplot/internal/mathutil"
)

// Canvas is a premultiplied RGBA target with a reusable coverage rasterizer.
type Canvas struct {
	Width  int
	Height int
	Img    *image.RGBA

	rz *vector.Rasterizer
}

// NewCanvas allocates a transparent w×h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		Width:  w,
		Height: h,
		Img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		rz:     vector.NewRasterizer(w, h),
	}
}

// FillBackground paints every pixel with c.
func (cv *Canvas) FillBackground(c color.Color) {
	draw.Draw(cv.Img, cv.Img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillPath fills p, already in pixel coordinates, with c. Overlapping
// contours of opposite winding cancel, so a counter-clockwise inner circle
// punches a hole.
func (cv *Canvas) FillPath(p geometry.Path, c color.Color) {
	if len(p) == 0 || isClear(c) {
		return
	}
	cv.rz.Reset(cv.Width, cv.Height)
	open := false
	for _, cmd := range p {
		switch cmd.Op {
		case geometry.MoveTo:
			if open {
				cv.rz.ClosePath()
			}
			cv.rz.MoveTo(f32(cmd.P[0]))
			open = true
		case geometry.LineTo:
			cv.rz.LineTo(f32(cmd.P[0]))
		case geometry.CubeTo:
			b, c2, d := cmd.P[0], cmd.P[1], cmd.P[2]
			cv.rz.CubeTo(
				float32(b[0]), float32(b[1]),
				float32(c2[0]), float32(c2[1]),
				float32(d[0]), float32(d[1]))
		case geometry.Close:
			cv.rz.ClosePath()
			open = false
		}
	}
	if open {
		cv.rz.ClosePath()
	}
	cv.rz.Draw(cv.Img, cv.Img.Bounds(), image.NewUniform(c), image.Point{})
}

// StrokePath outlines p with a line of the given pixel width. Each flattened
// segment becomes a quad and each vertex a small disc for the joins.
func (cv *Canvas) StrokePath(p geometry.Path, width float64, c color.Color) {
	if len(p) == 0 || width <= 0 || isClear(c) {
		return
	}
	half := width / 2
	cv.rz.Reset(cv.Width, cv.Height)
	for _, ct := range p.Flatten(0.25) {
		pts := ct.Points
		if ct.Closed && len(pts) > 1 {
			pts = append(pts, pts[0])
		}
		for i := 1; i < len(pts); i++ {
			cv.addSegment(pts[i-1], pts[i], half)
		}
		if width > 1.5 {
			for _, pt := range pts {
				cv.addDisc(pt, half)
			}
		}
	}
	cv.rz.Draw(cv.Img, cv.Img.Bounds(), image.NewUniform(c), image.Point{})
}

func (cv *Canvas) addSegment(a, b mathutil.Vec2, half float64) {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return
	}
	n := mathutil.Vec2{-d[1], d[0]}.Scale(half / l)
	cv.addPolygon([]mathutil.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

func (cv *Canvas) addDisc(c mathutil.Vec2, r float64) {
	const sides = 12
	pts := make([]mathutil.Vec2, sides)
	for i := range pts {
		a := float64(i) / sides * mathutil.Tau
		pts[i] = c.Add(mathutil.Vec2{r * math.Cos(a), r * math.Sin(a)})
	}
	cv.addPolygon(pts)
}

// addPolygon adds pts with positive orientation so overlapping stroke
// pieces accumulate instead of cancelling.
func (cv *Canvas) addPolygon(pts []mathutil.Vec2) {
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	cv.rz.MoveTo(f32(pts[0]))
	for _, pt := range pts[1:] {
		cv.rz.LineTo(f32(pt))
	}
	cv.rz.ClosePath()
}

func signedArea(pts []mathutil.Vec2) float64 {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p[0]*q[1] - q[0]*p[1]
	}
	return a / 2
}

func f32(v mathutil.Vec2) (float32, float32) {
	return float32(v[0]), float32(v[1])
}

func isClear(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}
