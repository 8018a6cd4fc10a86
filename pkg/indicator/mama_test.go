package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/ta/pkg/datatype/floats"
)

func sineWave(n int) []float64 {
	var values []float64
	for i := 0; i < n; i++ {
		values = append(values, 20.0+math.Sin(float64(i)*0.1))
	}
	return values
}

func Test_MAMA(t *testing.T) {
	var Delta = 1e-9
	values := sineWave(50)

	r, err := MAMA(values, 0.5, 0.05)
	require.NoError(t, err)

	for _, s := range []floats.Slice{r.MAMA, r.FAMA, r.Period, r.SmoothPeriod} {
		assert.Len(t, s, len(values))
		assert.Equal(t, MAMALookback(), floats.LeadingSentinels(s))
	}

	tests := []struct {
		index                            int
		mama, fama, period, smoothPeriod float64
	}{
		{6, 20.28232123669752, 20.07058030917438, 6.0, 0.3960000000000001},
		{7, 20.463269461967606, 20.168752597372688, 6.0, 0.9781200000000001},
		{10, 20.76414541391921, 20.474020310250598, 6.0, 2.842345681560001},
		{20, 20.936655943568926, 20.930776195553456, 14.267658524518097, 8.822412860956465},
		{49, 19.01372805590885, 19.08269087800061, 50.0, 47.48327313634238},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.mama, r.MAMA[tt.index], Delta, "mama[%d]", tt.index)
		assert.InDelta(t, tt.fama, r.FAMA[tt.index], Delta, "fama[%d]", tt.index)
		assert.InDelta(t, tt.period, r.Period[tt.index], 1e-6, "period[%d]", tt.index)
		assert.InDelta(t, tt.smoothPeriod, r.SmoothPeriod[tt.index], 1e-6, "smoothPeriod[%d]", tt.index)
	}

	def, err := MAMADefault(values)
	require.NoError(t, err)
	assert.Equal(t, r.MAMA[6:], def.MAMA[6:])
	assert.Equal(t, r.FAMA[6:], def.FAMA[6:])
}

func Test_MAMA_constant(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = 100
	}

	r, err := MAMADefault(values)
	require.NoError(t, err)

	for i := MAMALookback(); i < len(values); i++ {
		assert.GreaterOrEqual(t, r.Period[i], minCyclePeriod)
		assert.LessOrEqual(t, r.Period[i], maxCyclePeriod)
		if i >= 16 {
			assert.InDelta(t, 100, r.MAMA[i], 1.0)
			assert.InDelta(t, 100, r.FAMA[i], 1.0)
		}
	}
}

func Test_MAMA_periodClamp(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{name: "sine", values: sineWave(200)},
		{name: "trend", values: func() (v []float64) {
			for i := 0; i < 100; i++ {
				v = append(v, 10+0.5*float64(i))
			}
			return v
		}()},
		{name: "cycle with noise", values: func() (v []float64) {
			for i := 0; i < 120; i++ {
				v = append(v, 100+10*math.Sin(2*math.Pi*float64(i)/15)+float64(i%3))
			}
			return v
		}()},
	}

	for seed := int64(1); seed <= 3; seed++ {
		_, _, cloze := randomWalk(seed, 300)
		tests = append(tests, struct {
			name   string
			values []float64
		}{name: "random walk", values: cloze})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := MAMA(tt.values, 0.5, 0.05)
			require.NoError(t, err)

			for _, p := range floats.Defined(r.Period) {
				assert.GreaterOrEqual(t, p, minCyclePeriod)
				assert.LessOrEqual(t, p, maxCyclePeriod)
			}

			lo, hi := floats.Slice(tt.values).Min(), floats.Slice(tt.values).Max()
			for _, v := range floats.Defined(r.MAMA) {
				assert.GreaterOrEqual(t, v, lo-1e-9)
				assert.LessOrEqual(t, v, hi+1e-9)
			}
		})
	}
}

func Test_MAMA_errors(t *testing.T) {
	values := sineWave(50)

	tests := []struct {
		name       string
		values     []float64
		fast, slow float64
		err        error
	}{
		{name: "empty", values: nil, fast: 0.5, slow: 0.05, err: ErrEmptyInput},
		{name: "short", values: values[:31], fast: 0.5, slow: 0.05, err: ErrInsufficientData},
		{name: "zero fast", values: values, fast: 0, slow: 0.05, err: ErrInvalidParameter},
		{name: "zero slow", values: values, fast: 0.5, slow: 0, err: ErrInvalidParameter},
		{name: "fast below slow", values: values, fast: 0.05, slow: 0.5, err: ErrInvalidParameter},
		{name: "fast equals slow", values: values, fast: 0.5, slow: 0.5, err: ErrInvalidParameter},
		{name: "fast above one", values: values, fast: 1.5, slow: 0.05, err: ErrInvalidParameter},
		{name: "slow above one", values: values, fast: 0.5, slow: 1.5, err: ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := MAMA(tt.values, tt.fast, tt.slow)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, r)
		})
	}

	_, err := MAMA(values[:32], 0.5, 0.05)
	assert.NoError(t, err)
}
