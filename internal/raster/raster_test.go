package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radialplot/internal/geometry"
	"radialplot/internal/mathutil"
	"radialplot/internal/scene"
)

var red = color.NRGBA{0xff, 0, 0, 0xff}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a >> 8
}

func TestFillPathSquare(t *testing.T) {
	cv := NewCanvas(20, 20)
	var p geometry.Path
	p.MoveTo(mathutil.Vec2{5, 5})
	p.LineTo(mathutil.Vec2{15, 5})
	p.LineTo(mathutil.Vec2{15, 15})
	p.LineTo(mathutil.Vec2{5, 15})
	p.Close()
	cv.FillPath(p, red)

	assert.Equal(t, uint32(255), alphaAt(cv.Img, 10, 10))
	assert.Equal(t, uint32(0), alphaAt(cv.Img, 2, 2))
	r, _, _, _ := cv.Img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestFillPathRingHasHole(t *testing.T) {
	cv := NewCanvas(40, 40)
	var p geometry.Path
	c := mathutil.Vec2{20, 20}
	p.Circle(c, 18, false)
	p.Circle(c, 8, true)
	cv.FillPath(p, red)

	assert.Equal(t, uint32(0), alphaAt(cv.Img, 20, 20), "inside the hole")
	assert.Equal(t, uint32(255), alphaAt(cv.Img, 20, 7), "inside the band")
	assert.Equal(t, uint32(0), alphaAt(cv.Img, 1, 1))
}

func TestStrokePath(t *testing.T) {
	cv := NewCanvas(20, 20)
	var p geometry.Path
	p.MoveTo(mathutil.Vec2{2, 10})
	p.LineTo(mathutil.Vec2{18, 10})
	cv.StrokePath(p, 2, red)

	assert.Equal(t, uint32(255), alphaAt(cv.Img, 10, 9))
	assert.Equal(t, uint32(0), alphaAt(cv.Img, 10, 3))

	before := append([]uint8(nil), cv.Img.Pix...)
	cv.StrokePath(p, 0, red)
	cv.StrokePath(p, 2, color.NRGBA{})
	assert.Equal(t, before, cv.Img.Pix, "zero width or clear colour paints nothing")
}

func TestDownsample(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 0x80, 0x80 // premultiplied half-alpha red
	}
	out := Downsample(img, 4)
	require.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	px := out.NRGBAAt(2, 2)
	assert.Equal(t, uint8(0x80), px.A)
	assert.Equal(t, uint8(0xff), px.R)

	same := Downsample(img, 8)
	assert.Equal(t, uint8(0xff), same.NRGBAAt(0, 0).R)
}

func TestThemeLookup(t *testing.T) {
	th := DefaultTheme()
	st, ok := th.Lookup("extra area-invalid")
	require.True(t, ok)
	assert.Equal(t, th.Styles["area-invalid"], st)

	_, ok = th.Lookup("plot")
	assert.False(t, ok)
}

func TestRenderSceneShapes(t *testing.T) {
	doc := scene.New()
	g := doc.Append(nil, scene.NewGroup("plot", scene.Transform{Translate: mathutil.Vec2{50, 50}}))
	doc.Append(g, scene.NewCircle("point", mathutil.Vec2{}, 10))
	doc.Append(g, scene.NewCircle("point", mathutil.Vec2{30, 30}, 0))

	img := RenderScene(doc, Options{Size: 50, Supersample: 2, Theme: DefaultTheme()})
	require.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())
	assert.Equal(t, uint8(255), img.NRGBAAt(25, 25).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(40, 40).A, "zero-radius circles are not painted")
	assert.Equal(t, uint8(0), img.NRGBAAt(2, 2).A)
}

func TestRenderSceneBackgroundAndUnknownClasses(t *testing.T) {
	doc := scene.New()
	doc.Append(nil, scene.NewCircle("no-such-class", mathutil.Vec2{50, 50}, 40))

	th := DefaultTheme()
	th.Background = color.NRGBA{0, 0, 0, 0xff}
	img := RenderScene(doc, Options{Size: 16, Supersample: 1, Theme: th})
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, img.NRGBAAt(8, 8))
}

func TestRenderSceneText(t *testing.T) {
	doc := scene.New()
	doc.Append(nil, scene.NewText("label", mathutil.Vec2{10, 50}, "Hello"))
	rot := scene.NewText("label", mathutil.Vec2{}, "World")
	rot.Transform = scene.Transform{Translate: mathutil.Vec2{50, 20}, Rotate: 90}
	doc.Append(nil, rot)

	img := RenderScene(doc, Options{Size: 200, Supersample: 1, Theme: DefaultTheme()})

	inked := func(x0, y0, x1, y1 int) bool {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if img.NRGBAAt(x, y).A > 0 {
					return true
				}
			}
		}
		return false
	}
	assert.True(t, inked(20, 85, 80, 102), "horizontal text near its baseline")
	assert.True(t, inked(98, 38, 112, 100), "rotated text runs downward")
	assert.False(t, inked(150, 150, 200, 200))
}

func TestRenderNilDocument(t *testing.T) {
	img := RenderScene(nil, Options{Size: 4})
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}
