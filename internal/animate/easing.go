package animate

import (
	"fmt"
	"math"
	"strings"
)

// Ease maps normalised time t ∈ [0, 1] to progress.
type Ease func(t float64) float64

var easeBase = map[string]Ease{
	"linear": func(t float64) float64 { return t },
	"quad":   func(t float64) float64 { return t * t },
	"cubic":  func(t float64) float64 { return t * t * t },
	"sin":    func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) },
	"exp": func(t float64) float64 {
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*(t-1))
	},
	"circle": func(t float64) float64 { return 1 - math.Sqrt(1-t*t) },
	"back": func(t float64) float64 {
		const s = 1.70158
		return t * t * ((s+1)*t - s)
	},
	// elastic and bounce follow the d3 v3 base shapes, which overshoot and
	// bounce at the end; "-out" mirrors them.
	"elastic": func(t float64) float64 {
		const p = 0.45
		return 1 + math.Pow(2, -10*t)*math.Sin((t-p/4)*2*math.Pi/p)
	},
	"bounce": bounceOut,
}

func bounceOut(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + .75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + .9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + .984375
	}
}

func out(f Ease) Ease {
	return func(t float64) float64 { return 1 - f(1-t) }
}

func inOut(f Ease) Ease {
	return func(t float64) float64 {
		if t < 0.5 {
			return f(2*t) / 2
		}
		return 1 - f(2-2*t)/2
	}
}

// clamp keeps t in [0, 1] on the way in and pins the end points on the way
// out, so every segment finishes exactly on its target.
func clamp(f Ease) Ease {
	return func(t float64) float64 {
		switch {
		case t <= 0 || math.IsNaN(t):
			return 0
		case t >= 1:
			return 1
		}
		return f(t)
	}
}

// LookupEase resolves names like "cubic", "cubic-out" or "sin-in-out".
// Supported families: linear, quad, cubic, sin, exp, circle, back, elastic,
// bounce; modes: in (default), out, in-out, out-in.
func LookupEase(name string) (Ease, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "linear"
	}

	family, mode := name, "in"
	for _, m := range []string{"-in-out", "-out-in", "-in", "-out"} {
		if strings.HasSuffix(name, m) {
			family, mode = strings.TrimSuffix(name, m), m[1:]
			break
		}
	}

	base, ok := easeBase[family]
	if !ok {
		return clamp(easeBase["linear"]), fmt.Errorf("animate: unknown easing %q", name)
	}

	switch mode {
	case "out":
		base = out(base)
	case "in-out":
		base = inOut(base)
	case "out-in":
		base = inOut(out(base))
	}
	return clamp(base), nil
}
