// Package animate sequences the intro animation of a radial chart: one area
// tween per keyframe scene, a tween to the live dataset, then the points
// growing in.
package animate

import "time"

// PointGrowDuration is the length of the final point-radius tween.
const PointGrowDuration = 50 * time.Millisecond

// Kind distinguishes what a segment animates.
type Kind int

const (
	AreaTween Kind = iota
	PointGrow
)

func (k Kind) String() string {
	if k == PointGrow {
		return "point-grow"
	}
	return "area"
}

// Segment is one scheduled tween. Offsets are relative to the timeline start.
type Segment struct {
	Kind     Kind
	Start    time.Duration
	Duration time.Duration
	Ease     Ease

	// From and To are area magnitudes; unused for PointGrow.
	From []float64
	To   []float64
}

// End is the offset at which the segment completes.
func (s Segment) End() time.Duration {
	return s.Start + s.Duration
}

// Timeline is an ordered list of segments with strictly increasing starts.
type Timeline struct {
	Segments []Segment
}

// End is the offset of the last segment's completion.
func (tl Timeline) End() time.Duration {
	var end time.Duration
	for _, s := range tl.Segments {
		if e := s.End(); e > end {
			end = e
		}
	}
	return end
}

// Plan lays out the intro animation. Each scene tweens from the previous
// magnitudes (origin first) over d, and the delay advances by d + gap after
// each one. The final tween to the live magnitudes starts at the accumulated
// delay, and the point grow starts as soon as it completes.
func Plan(scenes [][]float64, origin, final []float64, d, gap time.Duration, ease Ease) Timeline {
	if ease == nil {
		ease, _ = LookupEase("linear")
	}

	var (
		tl       Timeline
		delay    time.Duration
		previous = origin
	)
	for _, scene := range scenes {
		tl.Segments = append(tl.Segments, Segment{
			Kind: AreaTween, Start: delay, Duration: d, Ease: ease,
			From: previous, To: scene,
		})
		previous = scene
		delay += d + gap
	}

	tl.Segments = append(tl.Segments, Segment{
		Kind: AreaTween, Start: delay, Duration: d, Ease: ease,
		From: previous, To: final,
	})

	linear, _ := LookupEase("linear")
	tl.Segments = append(tl.Segments, Segment{
		Kind: PointGrow, Start: delay + d, Duration: PointGrowDuration, Ease: linear,
	})
	return tl
}
