package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a premultiplied canvas to targetSize×targetSize with
// CatmullRom filtering and returns it unpremultiplied. Filtering in
// premultiplied space keeps transparent edges free of dark halos.
func Downsample(img *image.RGBA, targetSize int) *image.NRGBA {
	src := img
	b := img.Bounds()
	if b.Dx() != targetSize || b.Dy() != targetSize {
		src = image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
		draw.CatmullRom.Scale(src, src.Bounds(), img, b, draw.Src, nil)
	}

	result := image.NewNRGBA(src.Bounds())
	for y := 0; y < targetSize; y++ {
		for x := 0; x < targetSize; x++ {
			si := src.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(src.Pix[si+3])
			if a > 0 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(src.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(src.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(src.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = src.Pix[si+3]
		}
	}
	return result
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
