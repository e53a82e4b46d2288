package animate

// Tween interpolates each magnitude linearly from `from` to `to`. The result
// has len(to); indices past the end of from take their target value.
func Tween(from, to []float64, t float64) []float64 {
	out := make([]float64, len(to))
	for i := range to {
		if i < len(from) {
			out[i] = from[i] + (to[i]-from[i])*t
		} else {
			out[i] = to[i]
		}
	}
	return out
}
