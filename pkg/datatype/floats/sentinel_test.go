package floats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaNs(t *testing.T) {
	s := NaNs(3)
	assert.Len(t, s, 3)
	for _, v := range s {
		assert.True(t, IsSentinel(v))
	}
}

func TestLeadingSentinels(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, 2, LeadingSentinels([]float64{nan, nan, 1, nan}))
	assert.Equal(t, 0, LeadingSentinels([]float64{1, 2}))
	assert.Equal(t, 2, LeadingSentinels([]float64{nan, nan}))
	assert.Equal(t, 0, LeadingSentinels(nil))

	defined := Defined([]float64{nan, 1, 2})
	assert.Equal(t, Slice{1, 2}, defined)

	assert.Len(t, Defined([]float64{nan, 1, nan, 2}), 3)
	assert.Equal(t, Slice{1, 2}, DropSentinels([]float64{nan, 1, nan, 2, nan}))
	assert.Empty(t, DropSentinels([]float64{nan}))
}
