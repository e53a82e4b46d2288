package mathutil

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// Epsilon is the near-zero floor used in place of 0 for chart values so a
// logarithmic scale never sees a non-positive input.
const Epsilon = 0.0001

// Clamp limits v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b; t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
