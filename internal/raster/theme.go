package raster

import (
	"image/color"
	"strings"
)

// Style is how one node class is painted. Widths and text size are in view
// box units and scale with the output.
type Style struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
	TextSize    float64
}

// Theme maps node classes to styles. A class missing from the map is not
// painted.
type Theme struct {
	Background color.NRGBA
	Styles     map[string]Style
}

// DefaultTheme returns the stock chart palette on a transparent background.
func DefaultTheme() Theme {
	grid := color.NRGBA{0xb0, 0xb8, 0xc4, 0xff}
	ink := color.NRGBA{0x33, 0x3a, 0x44, 0xff}
	bad := color.NRGBA{0xd6, 0x45, 0x45, 0xff}
	good := color.NRGBA{0x2f, 0x7e, 0xd8, 0xff}

	return Theme{
		Styles: map[string]Style{
			"increment-a-outer": {Fill: color.NRGBA{0xf4, 0xf6, 0xf9, 0xff}, Stroke: grid, StrokeWidth: 0.2},
			"increment-a":       {Fill: color.NRGBA{0xf4, 0xf6, 0xf9, 0xff}},
			"increment-b":       {Fill: color.NRGBA{0xe6, 0xea, 0xf0, 0xff}},
			"increment-label":   {Fill: color.NRGBA{0x8a, 0x93, 0xa0, 0xff}, TextSize: 2.4},
			"axis":              {Stroke: grid, StrokeWidth: 0.2},
			"compare-area":      {Stroke: color.NRGBA{0x55, 0x55, 0x55, 0xc0}, StrokeWidth: 0.35},
			"area":              {Fill: color.NRGBA{0x2f, 0x7e, 0xd8, 0x66}, Stroke: good, StrokeWidth: 0.4},
			"area-invalid":      {Fill: color.NRGBA{0xd6, 0x45, 0x45, 0x55}, Stroke: bad, StrokeWidth: 0.4},
			"centre":            {Fill: color.NRGBA{0xff, 0xff, 0xff, 0xff}, Stroke: grid, StrokeWidth: 0.2},
			"point":             {Fill: good},
			"point-invalid":     {Fill: bad},
			"label":             {Fill: ink, TextSize: 3},
			"tooltip-text":      {Fill: ink, TextSize: 3},
		},
	}
}

// Lookup returns the style of the first class in a space-separated list that
// the theme knows.
func (t Theme) Lookup(class string) (Style, bool) {
	for _, c := range strings.Fields(class) {
		if s, ok := t.Styles[c]; ok {
			return s, true
		}
	}
	return Style{}, false
}
