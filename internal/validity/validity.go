// Package validity classifies a dataset against the sum-to-100 rule.
package validity

// Required is the total a constrained dataset must reach.
const Required = 100

// Class is the validity classification of a dataset.
type Class int

const (
	Valid Class = iota
	Invalid
)

func (c Class) String() string {
	if c == Invalid {
		return "invalid"
	}
	return "valid"
}

// Suffix is appended to visual classes ("area", "point") for invalid data.
func (c Class) Suffix() string {
	if c == Invalid {
		return "-invalid"
	}
	return ""
}

// Classify reports Valid when freeDraw is set, otherwise Valid iff sum is
// exactly 100. There is no tolerance: callers with fractional values round
// before summing.
func Classify(sum float64, freeDraw bool) Class {
	if freeDraw || sum == Required {
		return Valid
	}
	return Invalid
}
