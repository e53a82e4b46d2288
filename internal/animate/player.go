package animate

import "time"

// FrameFunc receives a segment and its eased progress.
type FrameFunc func(seg Segment, t float64)

// Player drives a Timeline from a monotonic clock supplied by the host.
// It never sleeps or spawns goroutines: the host calls Advance once per frame
// from its event loop.
type Player struct {
	tl      Timeline
	onFrame FrameFunc
	start   time.Duration
	started bool
	done    []bool
}

// NewPlayer returns a stopped player.
func NewPlayer(tl Timeline, onFrame FrameFunc) *Player {
	return &Player{tl: tl, onFrame: onFrame, done: make([]bool, len(tl.Segments))}
}

// Timeline returns the scheduled segments.
func (p *Player) Timeline() Timeline {
	return p.tl
}

// Start anchors the timeline at now.
func (p *Player) Start(now time.Duration) {
	p.start = now
	p.started = true
}

// Running reports whether any segment has not completed.
func (p *Player) Running() bool {
	for _, d := range p.done {
		if !d {
			return true
		}
	}
	return false
}

// Advance renders every segment active at now, in schedule order. A segment
// whose end has passed gets exactly one final call with t = 1, even when
// frames skipped over it. Returns whether anything is still pending.
func (p *Player) Advance(now time.Duration) bool {
	if !p.started {
		return p.Running()
	}
	elapsed := now - p.start

	for i, seg := range p.tl.Segments {
		if p.done[i] || elapsed < seg.Start {
			continue
		}
		if elapsed >= seg.End() {
			p.done[i] = true
			p.emit(seg, 1)
			continue
		}
		t := float64(elapsed-seg.Start) / float64(seg.Duration)
		if seg.Ease != nil {
			t = seg.Ease(t)
		}
		p.emit(seg, t)
	}
	return p.Running()
}

// Finish completes all pending segments in order.
func (p *Player) Finish() {
	for i, seg := range p.tl.Segments {
		if !p.done[i] {
			p.done[i] = true
			p.emit(seg, 1)
		}
	}
}

func (p *Player) emit(seg Segment, t float64) {
	if p.onFrame != nil {
		p.onFrame(seg, t)
	}
}
