package chart

import (
	"time"

	"radialplot/internal/animate"
)

// Animating reports whether the intro animation has pending segments.
func (c *Chart) Animating() bool {
	return c.player != nil && c.player.Running()
}

// Timeline returns the scheduled intro, or an empty timeline.
func (c *Chart) Timeline() animate.Timeline {
	if c.player == nil {
		return animate.Timeline{}
	}
	return c.player.Timeline()
}

// Advance moves the intro animation to now, a monotonic clock reading. The
// first call anchors the timeline. Returns whether more frames are needed.
func (c *Chart) Advance(now time.Duration) bool {
	if c.player == nil {
		return false
	}
	if !c.playerStarted {
		c.player.Start(now)
		c.playerStarted = true
	}
	return c.player.Advance(now)
}

// FinishAnimation jumps the intro animation to its end state.
func (c *Chart) FinishAnimation() {
	if c.player != nil {
		c.player.Finish()
	}
}

func (c *Chart) onFrame(seg animate.Segment, t float64) {
	switch seg.Kind {
	case animate.AreaTween:
		c.area.D = c.gen.Area(animate.Tween(seg.From, seg.To, t))
	case animate.PointGrow:
		for i, pt := range c.points {
			if i == c.state.Hovered {
				continue
			}
			pt.R = c.opts.PointRadius * t
		}
	}
}
