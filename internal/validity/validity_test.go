package validity_test

import (
	"math"
	"testing"

	"radialplot/internal/validity"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		sum      float64
		freeDraw bool
		want     validity.Class
	}{
		{"exact", 100, false, validity.Valid},
		{"short", 99, false, validity.Invalid},
		{"over", 101, false, validity.Invalid},
		{"no tolerance", 100.0001, false, validity.Invalid},
		{"zero", 0, false, validity.Invalid},
		{"free zero", 0, true, validity.Valid},
		{"free negative", -40, true, validity.Valid},
		{"free huge", 1e9, true, validity.Valid},
		{"free nan", math.NaN(), true, validity.Valid},
		{"nan", math.NaN(), false, validity.Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validity.Classify(tt.sum, tt.freeDraw))
		})
	}
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "", validity.Valid.Suffix())
	assert.Equal(t, "-invalid", validity.Invalid.Suffix())
	assert.Equal(t, "invalid", validity.Invalid.String())
}
