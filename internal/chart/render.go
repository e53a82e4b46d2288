package chart

import (
	"radialplot/internal/animate"
	"radialplot/internal/dataset"
	"radialplot/internal/geometry"
	"radialplot/internal/mathutil"
	"radialplot/internal/scale"
	"radialplot/internal/scene"
)

// OnDatasetChanged redraws the whole chart. The host calls it whenever its
// dataset reference changes. A nil source, an empty dataset or an active drag
// makes it a no-op.
//
// compare is drawn as a reference outline; scenes are keyframes for the
// intro animation, which runs only on the first redraw after New.
func (c *Chart) OnDatasetChanged(src, compare dataset.Source, scenes []dataset.Scene) {
	if src == nil {
		return
	}
	if c.state.InDrag {
		c.logger.Debug("redraw dropped during drag")
		return
	}
	ds := dataset.Normalize(src, c.logger)
	if len(ds) == 0 {
		return
	}

	c.data = ds
	c.values = ds.Values(c.logger)
	c.model = scale.New(c.scaleType, c.opts.InnerRadius, c.opts.PlotRadius, len(ds))
	c.gen = geometry.NewGenerator(c.model, c.interp, c.opts.Tension)
	c.classify()
	c.state.Hovered = -1
	c.tooltip = nil
	c.player = nil

	c.surface.Clear()
	c.plot = c.surface.Append(nil, scene.NewGroup("plot", c.plotTransform()))
	c.drawGuides()

	if cmp := dataset.Normalize(compare, c.logger); cmp != nil {
		c.surface.Append(c.plot, scene.NewPath("compare-area", c.gen.Area(cmp.Values(c.logger))))
	}

	areaGroup := c.surface.Append(c.plot, scene.NewGroup("area-g", scene.Transform{}))
	c.area = c.surface.Append(areaGroup, scene.NewPath("area", nil))

	centre := c.opts.InnerRadius - 1
	if centre < 0 {
		centre = 0
	}
	c.surface.Append(c.plot, scene.NewCircle("centre", mathutil.Vec2{}, centre))

	c.points = make([]*scene.Node, len(ds))
	for i, v := range c.values {
		c.points[i] = c.surface.Append(c.plot, scene.NewCircle("point", c.gen.Vertex(v, i), 0))
	}

	if c.opts.Labelled {
		for i, e := range ds {
			m := c.gen.Label(i, e.Name)
			n := scene.NewText("label", mathutil.Vec2{}, m.Text)
			n.Transform = scene.Transform{Translate: m.Pos, Rotate: m.Rotate}
			c.surface.Append(c.plot, n)
		}
	}

	c.applyValidityClasses()

	first := !c.state.HasAnimatedOnce
	c.state.HasAnimatedOnce = true
	if first && c.opts.Animated {
		c.scheduleIntro(scenes)
	} else {
		c.snap()
	}

	c.logger.Debug("chart redraw",
		"entries", len(ds), "sum", c.state.Sum, "validity", c.state.Validity.String(),
		"animated", c.player != nil)
}

// drawGuides paints the outer ring, increment bands and labels, and axes.
func (c *Chart) drawGuides() {
	c.surface.Append(c.plot, scene.NewCircle("increment-a-outer", mathutil.Vec2{}, c.model.Outer()))

	for _, r := range c.gen.Rings() {
		c.surface.Append(c.plot, scene.NewPath(r.Class, r.Path))
	}

	for _, m := range c.gen.IncrementLabels() {
		c.surface.Append(c.plot, scene.NewText("increment-label", m.Pos, m.Text))
	}

	for i := range c.data {
		from, to := c.gen.Axis(i)
		c.surface.Append(c.plot, scene.NewLine("axis", from, to))
	}
}

// snap shows the final geometry with no tween.
func (c *Chart) snap() {
	c.area.D = c.gen.Area(c.values)
	for _, pt := range c.points {
		pt.R = c.opts.PointRadius
	}
}

func (c *Chart) scheduleIntro(scenes []dataset.Scene) {
	keyframes := make([][]float64, len(scenes))
	for i, s := range scenes {
		keyframes[i] = s.Values(c.logger)
	}
	origin := dataset.Origin(len(c.values))
	final := append([]float64(nil), c.values...)

	tl := animate.Plan(keyframes, origin, final,
		c.opts.AnimateDuration(), c.opts.DelayDuration(), c.ease)
	c.player = animate.NewPlayer(tl, c.onFrame)
	c.playerStarted = false
	c.area.D = c.gen.Area(origin)
}
