package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// faceCache hands out Go Regular faces by pixel size. When the font cannot
// be parsed every size falls back to basicfont.
type faceCache struct {
	fnt   *opentype.Font
	faces map[int]font.Face
}

func newFaceCache() *faceCache {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		fnt = nil
	}
	return &faceCache{fnt: fnt, faces: make(map[int]font.Face)}
}

func (fc *faceCache) face(px float64) font.Face {
	size := int(math.Round(px))
	if size < 1 {
		size = 1
	}
	if f, ok := fc.faces[size]; ok {
		return f
	}
	var f font.Face = basicfont.Face7x13
	if fc.fnt != nil {
		nf, err := opentype.NewFace(fc.fnt, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err == nil {
			f = nf
		}
	}
	fc.faces[size] = f
	return f
}

func (fc *faceCache) Close() {
	for _, f := range fc.faces {
		f.Close()
	}
}

// drawText draws s with its baseline origin at (x, y), rotated clockwise by
// angle radians about that origin.
func drawText(dst draw.Image, face font.Face, s string, x, y, angle float64, c color.Color) {
	if s == "" {
		return
	}
	if math.Abs(angle) < 1e-6 {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
		}
		d.DrawString(s)
		return
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	w := font.MeasureString(face, s).Ceil() + 2
	h := ascent + m.Descent.Ceil() + 2
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(1, ascent+1),
	}
	d.DrawString(s)

	// Map the temp baseline origin onto (x, y) and rotate around it.
	sin, cos := math.Sincos(angle)
	ox, oy := 1.0, float64(ascent+1)
	aff := f64.Aff3{
		cos, -sin, x - (cos*ox - sin*oy),
		sin, cos, y - (sin*ox + cos*oy),
	}
	draw.BiLinear.Transform(dst, aff, tmp, tmp.Bounds(), draw.Over, nil)
}
