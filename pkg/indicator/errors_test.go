package indicator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrors_mismatchedHighLow(t *testing.T) {
	high := []float64{10, 11, 12, 13, 14, 15, 16, 17}
	low := []float64{9, 10, 11, 12, 13, 14, 15}
	cloze := []float64{9.5, 10.5, 11.5, 12.5, 13.5, 14.5, 15.5, 16.5}

	calls := map[string]func() (interface{}, error){
		"TrueRange": func() (interface{}, error) { return TrueRange(high, low, cloze) },
		"ATR":       func() (interface{}, error) { return ATR(high, low, cloze, 3) },
		"NATR":      func() (interface{}, error) { return NATR(high, low, cloze, 3) },
		"PlusDM":    func() (interface{}, error) { return PlusDM(high, low) },
		"MinusDM":   func() (interface{}, error) { return MinusDM(high, low) },
		"PlusDI":    func() (interface{}, error) { return PlusDI(high, low, cloze, 3) },
		"MinusDI":   func() (interface{}, error) { return MinusDI(high, low, cloze, 3) },
		"DX":        func() (interface{}, error) { return DX(high, low, cloze, 3) },
		"ADX":       func() (interface{}, error) { return ADX(high, low, cloze, 3) },
		"ADXR":      func() (interface{}, error) { return ADXR(high, low, cloze, 3) },
		"DMI":       func() (interface{}, error) { return DMI(high, low, cloze, 3) },
		"SAR":       func() (interface{}, error) { return SAR(high, low, 0.02, 0.2) },
		"SAREXT": func() (interface{}, error) {
			return SAREXT(high, low, 0, 0, 0.02, 0.02, 0.2, 0.02, 0.02, 0.2)
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			out, err := call()
			assert.ErrorIs(t, err, ErrMismatchedLengths)
			assert.Nil(t, out)
		})
	}
}

func TestErrors_kindsAreDistinct(t *testing.T) {
	kinds := []error{ErrEmptyInput, ErrMismatchedLengths, ErrInvalidParameter, ErrInsufficientData}
	for i, a := range kinds {
		for j, b := range kinds {
			assert.Equal(t, i == j, errors.Is(a, b))
		}
	}

	err := checkLength(5, 3)
	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.Contains(t, err.Error(), "need at least 5 data points, got 3")
}

func TestAlmostZero(t *testing.T) {
	assert.True(t, almostZero(0))
	assert.True(t, almostZero(1e-15))
	assert.True(t, almostZero(-1e-15))
	assert.False(t, almostZero(1e-13))
	assert.False(t, almostZero(-1))
}
