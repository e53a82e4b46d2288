// Package export writes rendered charts to disk: single images in several
// formats and the intro animation as a numbered frame sequence.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"radialplot/internal/raster"
	"radialplot/internal/scene"
)

// Format is an output file format.
type Format string

const (
	SVG  Format = "svg"
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
)

// ParseFormat accepts a format name or a file extension, with or without the
// leading dot.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")); f {
	case SVG, PNG, WebP, TGA:
		return f, nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Raster reports whether the format needs a rasterised image.
func (f Format) Raster() bool {
	return f != SVG
}

// Encode writes img to w. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("export: %s is not a raster format", f)
	}
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", f, err)
	}
	return nil
}

// WriteScene writes doc to w as SVG or as a raster image painted with opts.
func WriteScene(w io.Writer, doc *scene.Document, f Format, opts raster.Options) error {
	if f == SVG {
		if err := doc.WriteSVG(w); err != nil {
			return fmt.Errorf("export: write svg: %w", err)
		}
		return nil
	}
	return Encode(w, raster.RenderScene(doc, opts), f)
}

// SaveScene writes doc to path, creating parent directories.
func SaveScene(path string, doc *scene.Document, f Format, opts raster.Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", filepath.Dir(path), err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := WriteScene(out, doc, f, opts); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
