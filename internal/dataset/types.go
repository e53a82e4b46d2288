package dataset

import (
	"log/slog"
	"math"

	"radialplot/internal/logging"
)

// Entry is one named value placed at one angular slot.
//
// Entries are owned by the caller. Drag editing writes Value in place, which is
// how edits propagate back out of the chart.
type Entry struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Dataset is an ordered sequence of entries with ds[i].ID == i.
type Dataset []*Entry

// Keyed is the map input form: arbitrary keys, slot given by each entry's ID.
type Keyed map[string]*Entry

// Scene is an animation keyframe. It has the same shape as a Dataset but is
// never validated or normalised.
type Scene []*Entry

// Values returns the magnitudes of ds in slot order, coercing missing and
// non-finite values to 0.
func (ds Dataset) Values(logger *slog.Logger) []float64 {
	return values(ds, logger)
}

// Values returns the scene magnitudes, coerced like Dataset.Values.
func (s Scene) Values(logger *slog.Logger) []float64 {
	return values(s, logger)
}

func values(entries []*Entry, logger *slog.Logger) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		switch {
		case e == nil:
			logging.OrDefault(logger).Warn("missing entry coerced to 0", "slot", i)
		case math.IsNaN(e.Value) || math.IsInf(e.Value, 0):
			logging.OrDefault(logger).Warn("non-numeric value coerced to 0", "slot", i, "name", e.Name)
		default:
			out[i] = e.Value
		}
	}
	return out
}

// Sum adds up vs.
func Sum(vs []float64) float64 {
	var s float64
	for _, v := range vs {
		s += v
	}
	return s
}

// Origin returns the all-zero magnitude sequence an intro animation starts from.
func Origin(n int) []float64 {
	return make([]float64, n)
}
