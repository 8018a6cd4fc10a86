package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/ta/pkg/datatype/floats"
)

/*
python:

up, dn = h[i] - h[i-1], l[i-1] - l[i]
pdm = up if up > dn and up > 0 else 0
mdm = dn if dn > up and dn > 0 else 0

+DM, -DM and the true range are seeded with their mean over bars 1..5 and
smoothed with alpha = 1/5, DX is smoothed the same way starting from bar 5.
*/
func Test_DMI(t *testing.T) {
	var Delta = 1e-9
	high, low, cloze := decodeHLC(t, btcusdt1h)

	nan := math.NaN()

	type output struct {
		pdm, mdm []float64
		dip, dim []float64
		dx       []float64
		adx      []float64
		adxr     []float64
	}

	tests := []struct {
		name   string
		window int
		want   output
	}{
		{
			name:   "test_binance_btcusdt_1h",
			window: 5,
			want: output{
				pdm: []float64{nan, 41.36000000000058, 10.029999999998836, 148.20999999999913, 0, 27.75999999999476, 190.76000000000204, 235.0, 0, 0, 0, 0, 0, 0, 0, 0, 152.20999999999913, 176.84999999999854, 362.0199999999968, 0},
				mdm: []float64{nan, 0, 0, 0, 92.22000000000116, 0, 0, 0, 41.49000000000524, 354.98999999999796, 0, 36.229999999995925, 0, 308.0199999999968, 370.6100000000006, 6.760000000002037, 0, 0, 0, 0},
				dip: []float64{nan, nan, nan, nan, nan, 17.14992607790432, 26.250655125192058, 32.54331878386061, 23.91959810719084, 16.540919090928913, 13.244019754589614, 10.385468806727031, 8.871709459069312, 6.988407038231075, 5.426947760621577, 4.491374508738855, 11.969946703177751, 19.06063759799241, 32.9345920955533, 29.512353312989706},
				dim: []float64{nan, nan, nan, nan, nan, 6.9562200162931145, 5.197044751390618, 3.6028257686819933, 4.97503738906641, 20.64999876242155, 16.534086772224416, 14.68851860600548, 12.547557734919641, 25.286521123329504, 37.626114990972134, 31.47905353385853, 26.827368006632717, 21.48932537578316, 16.345543351748905, 14.647075302770636},
				dx:  []float64{nan, nan, nan, nan, nan, 42.2867513611598, 66.94801354765814, 80.06522790587047, 65.56428344831806, 11.048610544368314, 11.048610544368309, 17.16141006393491, 17.161410063934916, 56.69451530148244, 74.78949271537859, 75.02740582669732, 38.29497328509195, 5.9893711354593036, 33.66274989553128, 33.66274989553127},
				adx: []float64{nan, nan, nan, nan, nan, nan, nan, nan, nan, 53.182577361474955, 44.75578399805363, 39.23690921122989, 34.8218093817709, 39.1963505657132, 46.314978995646285, 52.05746436185649, 49.30496614650358, 40.64184714429473, 39.246027694542036, 38.12937213473988},
				adxr: []float64{nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, 49.74877817856062, 48.40662417995506, 44.27093767886674, 37.73182826303281, 39.22118913012762, 42.22217556519308},
			},
		},
	}

	assertSeries := func(t *testing.T, name string, want, got []float64) {
		if !assert.Len(t, got, len(want), name) {
			return
		}
		for i := range want {
			if math.IsNaN(want[i]) {
				assert.True(t, math.IsNaN(got[i]), "%s[%d] should be the sentinel, got %f", name, i, got[i])
				continue
			}
			assert.InDelta(t, want[i], got[i], Delta, "%s[%d]", name, i)
		}
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := DMI(high, low, cloze, tt.window)
			require.NoError(t, err)

			assertSeries(t, "+DM", tt.want.pdm, r.PlusDM)
			assertSeries(t, "-DM", tt.want.mdm, r.MinusDM)
			assertSeries(t, "+DI", tt.want.dip, r.PlusDI)
			assertSeries(t, "-DI", tt.want.dim, r.MinusDI)
			assertSeries(t, "DX", tt.want.dx, r.DX)
			assertSeries(t, "ADX", tt.want.adx, r.ADX)
			assertSeries(t, "ADXR", tt.want.adxr, r.ADXR)

			pdm, err := PlusDM(high, low)
			require.NoError(t, err)
			assertSeries(t, "PlusDM", tt.want.pdm, pdm)

			mdm, err := MinusDM(high, low)
			require.NoError(t, err)
			assertSeries(t, "MinusDM", tt.want.mdm, mdm)

			pdi, err := PlusDI(high, low, cloze, tt.window)
			require.NoError(t, err)
			assertSeries(t, "PlusDI", tt.want.dip, pdi)

			mdi, err := MinusDI(high, low, cloze, tt.window)
			require.NoError(t, err)
			assertSeries(t, "MinusDI", tt.want.dim, mdi)

			dx, err := DX(high, low, cloze, tt.window)
			require.NoError(t, err)
			assertSeries(t, "DX()", tt.want.dx, dx)

			adx, err := ADX(high, low, cloze, tt.window)
			require.NoError(t, err)
			assertSeries(t, "ADX()", tt.want.adx, adx)

			adxr, err := ADXR(high, low, cloze, tt.window)
			require.NoError(t, err)
			assertSeries(t, "ADXR()", tt.want.adxr, adxr)
		})
	}
}

func Test_DMI_properties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		high, low, cloze := randomWalk(seed, 250)
		for _, period := range []int{1, 3, 14, 30} {
			r, err := DMI(high, low, cloze, period)
			require.NoError(t, err)

			assert.Equal(t, PlusDMLookback(), floats.LeadingSentinels(r.PlusDM))
			assert.Equal(t, DILookback(period), floats.LeadingSentinels(r.PlusDI))
			assert.Equal(t, DILookback(period), floats.LeadingSentinels(r.MinusDI))
			assert.Equal(t, DXLookback(period), floats.LeadingSentinels(r.DX))
			assert.Equal(t, ADXLookback(period), floats.LeadingSentinels(r.ADX))
			assert.Equal(t, ADXRLookback(period), floats.LeadingSentinels(r.ADXR))

			for _, s := range []floats.Slice{r.PlusDI, r.MinusDI, r.DX, r.ADX} {
				for _, v := range floats.Defined(s) {
					assert.GreaterOrEqual(t, v, 0.0)
					assert.LessOrEqual(t, v, 100.0)
				}
			}

			for i := period; i < len(r.ADXR); i++ {
				if math.IsNaN(r.ADX[i]) || math.IsNaN(r.ADX[i-period]) {
					assert.True(t, math.IsNaN(r.ADXR[i]))
					continue
				}
				assert.Equal(t, (r.ADX[i]+r.ADX[i-period])/2, r.ADXR[i])
			}
		}
	}
}

func Test_DMI_flat(t *testing.T) {
	flat := []float64{10, 10, 10, 10, 10, 10, 10, 10}

	r, err := DMI(flat, flat, flat, 2)
	require.NoError(t, err)

	// zero range gives zero DI and zero DX instead of a division blow-up
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, []float64(r.PlusDI[2:]))
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, []float64(r.MinusDI[2:]))
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, []float64(r.DX[2:]))
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, []float64(r.ADX[3:]))
}

func Test_DMI_errors(t *testing.T) {
	high, low, cloze := decodeHLC(t, btcusdt1h)

	_, err := DMI(high, low[:5], cloze, 5)
	assert.ErrorIs(t, err, ErrMismatchedLengths)

	_, err = PlusDM(high, low[:5])
	assert.ErrorIs(t, err, ErrMismatchedLengths)

	_, err = MinusDM(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ADX(high, low, cloze, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	tests := []struct {
		name    string
		fn      func(high, low, cloze []float64, period int) ([]float64, error)
		minimum int
	}{
		{name: "PlusDI", fn: PlusDI, minimum: 6},
		{name: "MinusDI", fn: MinusDI, minimum: 6},
		{name: "DX", fn: DX, minimum: 6},
		{name: "ADX", fn: ADX, minimum: 10},
		{name: "ADXR", fn: ADXR, minimum: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.minimum
			_, err := tt.fn(high[:n-1], low[:n-1], cloze[:n-1], 5)
			assert.ErrorIs(t, err, ErrInsufficientData)

			out, err := tt.fn(high[:n], low[:n], cloze[:n], 5)
			require.NoError(t, err)
			assert.Len(t, out, n)
		})
	}
}
