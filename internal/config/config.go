package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"
)

// Config holds chart options, render settings and logging paths.
type Config struct {
	Chart  Chart  `json:"chart"`
	Render Render `json:"render"`

	LogFile  string `json:"log_file"`
	LogLevel string `json:"log_level"`
}

// Chart holds the options recognised by the radial chart.
type Chart struct {
	PlotRadius       float64 `json:"plot_radius"`
	InnerRadius      float64 `json:"inner_radius"`
	PointRadius      float64 `json:"point_radius"`
	HoverPointRadius float64 `json:"hover_point_radius"`
	Padding          float64 `json:"padding"`

	Interpolation string  `json:"interpolation"` // linear-closed | cardinal-closed
	Tension       float64 `json:"tension"`
	Scale         string  `json:"scale"` // linear | log

	Editable bool `json:"editable"`
	Labelled bool `json:"labelled"`
	Tooltips bool `json:"tooltips"`
	FreeDraw bool `json:"free_draw"`

	Animated          bool   `json:"animated"`
	AnimateDurationMs int    `json:"animate_duration_ms"`
	DelayDurationMs   int    `json:"delay_duration_ms"`
	Easing            string `json:"easing"`
}

// Render holds output settings for the raster and frame exporters.
type Render struct {
	Size        int    `json:"size"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"` // png | webp | tga | svg
	FPS         int    `json:"fps"`
	Workers     int    `json:"workers"`
	OutputDir   string `json:"output_dir"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Chart:  DefaultChart(),
		Render: DefaultRender(),

		LogFile:  "logs/radialplot.log",
		LogLevel: "info",
	}
}

// DefaultChart returns the chart defaults.
func DefaultChart() Chart {
	return Chart{
		PlotRadius:        43,
		InnerRadius:       3,
		PointRadius:       1,
		HoverPointRadius:  2,
		Padding:           7,
		Interpolation:     "linear-closed",
		Tension:           0.7,
		Scale:             "linear",
		Labelled:          true,
		Tooltips:          true,
		Animated:          true,
		AnimateDurationMs: 400,
		DelayDurationMs:   600,
		Easing:            "linear",
	}
}

// DefaultRender returns the render defaults.
func DefaultRender() Render {
	return Render{
		Size:        512,
		Supersample: 2,
		Format:      "png",
		FPS:         30,
		Workers:     runtime.NumCPU(),
		OutputDir:   "out",
	}
}

// AnimateDuration is the per-segment tween duration.
func (c Chart) AnimateDuration() time.Duration {
	return time.Duration(c.AnimateDurationMs) * time.Millisecond
}

// DelayDuration is the gap between successive tween segments.
func (c Chart) DelayDuration() time.Duration {
	return time.Duration(c.DelayDurationMs) * time.Millisecond
}

// Load reads a JSON config file over the defaults.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not set".
type Flags struct {
	OutputDir     string
	Format        string
	Size          int
	FPS           int
	Workers       int
	Scale         string
	Interpolation string
	Easing        string
	Editable      bool
	FreeDraw      bool
	NoAnimate     bool
	LogLevel      string
}

// Resolve applies CLI overrides and resets out-of-range values to defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.Render.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Render.Format = flags.Format
	}
	if flags.Size > 0 {
		c.Render.Size = flags.Size
	}
	if flags.FPS > 0 {
		c.Render.FPS = flags.FPS
	}
	if flags.Workers > 0 {
		c.Render.Workers = flags.Workers
	}
	if flags.Scale != "" {
		c.Chart.Scale = flags.Scale
	}
	if flags.Interpolation != "" {
		c.Chart.Interpolation = flags.Interpolation
	}
	if flags.Easing != "" {
		c.Chart.Easing = flags.Easing
	}
	if flags.Editable {
		c.Chart.Editable = true
	}
	if flags.FreeDraw {
		c.Chart.FreeDraw = true
	}
	if flags.NoAnimate {
		c.Chart.Animated = false
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	c.Chart.Sanitize()
	c.Render.Sanitize()
}

// Sanitize resets values that cannot produce a drawable chart.
func (c *Chart) Sanitize() {
	def := DefaultChart()
	if c.PlotRadius <= 0 {
		c.PlotRadius = def.PlotRadius
	}
	if c.InnerRadius < 0 {
		c.InnerRadius = def.InnerRadius
	}
	if c.PointRadius < 0 {
		c.PointRadius = def.PointRadius
	}
	if c.HoverPointRadius < 0 {
		c.HoverPointRadius = def.HoverPointRadius
	}
	if c.Padding < 0 {
		c.Padding = def.Padding
	}
	if c.Tension < 0 || c.Tension > 1 {
		c.Tension = def.Tension
	}
	if c.AnimateDurationMs < 0 {
		c.AnimateDurationMs = def.AnimateDurationMs
	}
	if c.DelayDurationMs < 0 {
		c.DelayDurationMs = def.DelayDurationMs
	}

	c.Interpolation = strings.ToLower(strings.TrimSpace(c.Interpolation))
	if c.Interpolation == "" {
		c.Interpolation = def.Interpolation
	}
	c.Scale = strings.ToLower(strings.TrimSpace(c.Scale))
	if c.Scale == "" {
		c.Scale = def.Scale
	}
	c.Easing = strings.ToLower(strings.TrimSpace(c.Easing))
	if c.Easing == "" {
		c.Easing = def.Easing
	}
}

// Sanitize fills render settings left empty or out of range.
func (r *Render) Sanitize() {
	def := DefaultRender()
	if r.Size <= 0 {
		r.Size = def.Size
	}
	if r.Supersample <= 0 {
		r.Supersample = def.Supersample
	}
	if r.FPS <= 0 {
		r.FPS = def.FPS
	}
	if r.Workers <= 0 {
		r.Workers = def.Workers
	}
	if r.OutputDir == "" {
		r.OutputDir = def.OutputDir
	}
	r.Format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(r.Format), "."))
	if r.Format == "" {
		r.Format = def.Format
	}
}
