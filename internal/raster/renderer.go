// Package raster paints a chart scene into an image. Fills and strokes go
// through golang.org/x/image/vector, text through Go Regular faces, and the
// result is supersampled down to the requested size.
package raster

import (
	"image"
	"math"

	"radialplot/internal/geometry"
	"radialplot/internal/mathutil"
	"radialplot/internal/scene"
)

// Options control a single raster pass.
type Options struct {
	Size        int // output width and height in pixels
	Supersample int // render at Size*Supersample, then downsample
	Theme       Theme
}

// RenderScene paints doc into a Size×Size NRGBA image. Nodes are painted in
// document order; classes missing from the theme are skipped.
func RenderScene(doc *scene.Document, opts Options) *image.NRGBA {
	size := opts.Size
	if size < 1 {
		size = 1
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	renderSize := size * ss

	cv := NewCanvas(renderSize, renderSize)
	if opts.Theme.Background.A > 0 {
		cv.FillBackground(opts.Theme.Background)
	}
	if doc == nil {
		return Downsample(cv.Img, size)
	}

	extent := math.Max(doc.Width, doc.Height)
	if extent <= 0 {
		extent = scene.ViewBoxSize
	}
	device := mathutil.Scale(float64(renderSize) / extent)

	faces := newFaceCache()
	defer faces.Close()

	doc.Walk(func(n *scene.Node, m mathutil.Mat3) {
		st, ok := opts.Theme.Lookup(n.Class)
		if !ok {
			return
		}
		dm := mathutil.Mat3Mul(device, m)
		k := dm.MaxScale()

		switch n.Kind {
		case scene.Path:
			p := n.D.Transform(dm)
			cv.FillPath(p, st.Fill)
			cv.StrokePath(p, st.StrokeWidth*k, st.Stroke)

		case scene.Circle:
			if n.R <= 0 {
				return
			}
			var c geometry.Path
			c.Circle(n.Center, n.R, false)
			p := c.Transform(dm)
			cv.FillPath(p, st.Fill)
			cv.StrokePath(p, st.StrokeWidth*k, st.Stroke)

		case scene.Line:
			var l geometry.Path
			l.MoveTo(n.From)
			l.LineTo(n.To)
			cv.StrokePath(l.Transform(dm), st.StrokeWidth*k, st.Stroke)

		case scene.Text:
			if st.TextSize <= 0 || st.Fill.A == 0 {
				return
			}
			at := dm.MulPoint(n.Pos)
			angle := math.Atan2(dm[3], dm[0])
			drawText(cv.Img, faces.face(st.TextSize*k), n.Text, at[0], at[1], angle, st.Fill)
		}
	})

	return Downsample(cv.Img, size)
}
