// Package chart renders a radial chart into a scene surface and handles
// pointer editing and the intro animation.
//
// A Chart is single-threaded: the host calls OnDatasetChanged, the pointer
// methods and Advance from one event loop.
package chart

import (
	"log/slog"

	"radialplot/internal/animate"
	"radialplot/internal/config"
	"radialplot/internal/dataset"
	"radialplot/internal/geometry"
	"radialplot/internal/logging"
	"radialplot/internal/mathutil"
	"radialplot/internal/scale"
	"radialplot/internal/scene"
	"radialplot/internal/validity"
)

// Surface is the drawing capability the chart paints into.
// *scene.Document implements it.
type Surface interface {
	Clear()
	Append(parent, n *scene.Node) *scene.Node
	Remove(n *scene.Node)
}

// RenderState is recomputed on each full redraw and updated by drags.
type RenderState struct {
	Sum             float64
	Validity        validity.Class
	InDrag          bool
	HasAnimatedOnce bool
	Hovered         int // -1 when no point is hovered
}

// Chart holds configuration, the scale model and the nodes it drew.
type Chart struct {
	opts    config.Chart
	surface Surface
	logger  *slog.Logger

	scaleType scale.Type
	interp    geometry.Interpolation
	ease      animate.Ease

	model  *scale.Model
	gen    *geometry.Generator
	state  RenderState
	data   dataset.Dataset
	values []float64

	plot    *scene.Node
	area    *scene.Node
	points  []*scene.Node
	tooltip *scene.Node

	player        *animate.Player
	playerStarted bool
	drag          dragController
}

// New returns a chart drawing into surface. Unknown option names are logged
// and replaced by their defaults.
func New(opts config.Chart, surface Surface, logger *slog.Logger) *Chart {
	logger = logging.OrDefault(logger)
	opts.Sanitize()

	c := &Chart{
		opts:    opts,
		surface: surface,
		logger:  logger,
		state:   RenderState{Hovered: -1},
	}

	var err error
	if c.scaleType, err = scale.ParseType(opts.Scale); err != nil {
		logger.Warn("falling back to linear scale", "error", err)
	}
	if c.interp, err = geometry.ParseInterpolation(opts.Interpolation); err != nil {
		logger.Warn("falling back to linear-closed interpolation", "error", err)
	}
	if c.ease, err = animate.LookupEase(opts.Easing); err != nil {
		logger.Warn("falling back to linear easing", "error", err)
	}
	return c
}

// Options returns the sanitised chart options.
func (c *Chart) Options() config.Chart {
	return c.opts
}

// State returns a copy of the render state.
func (c *Chart) State() RenderState {
	return c.state
}

// Dataset returns the normalised dataset of the last full redraw.
func (c *Chart) Dataset() dataset.Dataset {
	return c.data
}

// Values returns the current magnitudes.
func (c *Chart) Values() []float64 {
	return append([]float64(nil), c.values...)
}

// Model returns the scale model, nil before the first redraw.
func (c *Chart) Model() *scale.Model {
	return c.model
}

// PlotScale is the factor that fits radius+padding into half the view box.
func (c *Chart) PlotScale() float64 {
	extent := c.opts.PlotRadius + c.opts.Padding
	if extent <= 0 {
		return 1
	}
	return scene.ViewBoxSize / 2 / extent
}

func (c *Chart) plotTransform() scene.Transform {
	return scene.Transform{
		Translate: mathutil.Vec2{scene.ViewBoxSize / 2, scene.ViewBoxSize / 2},
		Scale:     c.PlotScale(),
	}
}

// ToPlot converts a view-box position to plot coordinates, relative to the
// chart centre.
func (c *Chart) ToPlot(v mathutil.Vec2) mathutil.Vec2 {
	return c.plotTransform().Matrix().Inverse().MulPoint(v)
}

// FromPlot converts plot coordinates to the view box.
func (c *Chart) FromPlot(p mathutil.Vec2) mathutil.Vec2 {
	return c.plotTransform().Matrix().MulPoint(p)
}

// HitTest returns the index of the visible point nearest to the view-box
// position v, or -1 when none is within its radius plus slack (plot units).
func (c *Chart) HitTest(v mathutil.Vec2, slack float64) int {
	p := c.ToPlot(v)
	best, bestDist := -1, 0.0
	for i, pt := range c.points {
		if pt.R <= 0 {
			continue
		}
		reach := pt.R
		if c.opts.HoverPointRadius > reach {
			reach = c.opts.HoverPointRadius
		}
		d := p.Dist(pt.Center)
		if d <= reach+slack && (best < 0 || d < bestDist) {
			best, bestDist = i, d
		}
	}
	return best
}

func (c *Chart) classify() {
	c.state.Sum = dataset.Sum(c.values)
	c.state.Validity = validity.Classify(c.state.Sum, c.opts.FreeDraw)
}

func (c *Chart) applyValidityClasses() {
	ext := c.state.Validity.Suffix()
	if c.area != nil {
		c.area.Class = "area" + ext
	}
	for _, pt := range c.points {
		pt.Class = "point" + ext
	}
}
