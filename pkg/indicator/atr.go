package indicator

import (
	"github.com/c9s/ta/pkg/datatype/floats"
)

// ATR is the Wilder-smoothed true range, the first value is defined at period-1.
func ATR(high, low, cloze []float64, period int) ([]float64, error) {
	return ATRWithAlpha(high, low, cloze, period, wilderAlpha(period))
}

// ATRWithAlpha smooths the true range with an explicit coefficient instead of
// Wilder's 1/period. The seed is still the mean of the first period true ranges.
func ATRWithAlpha(high, low, cloze []float64, period int, alpha float64) ([]float64, error) {
	if err := checkHLC(high, low, cloze); err != nil {
		return nil, err
	}
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	if err := checkLength(period, len(high)); err != nil {
		return nil, err
	}

	return smoothFrom(trueRange(high, low, cloze), 0, period, alpha), nil
}

// NATR is the ATR normalized by the close price, in percent.
// Undefined ATR or a zero close gives the sentinel.
func NATR(high, low, cloze []float64, period int) ([]float64, error) {
	atr, err := ATR(high, low, cloze, period)
	if err != nil {
		return nil, err
	}

	out := floats.NaNs(len(atr))
	for i, v := range atr {
		if floats.IsSentinel(v) || cloze[i] == 0 {
			continue
		}
		out[i] = 100 * v / cloze[i]
	}

	return out, nil
}

type NATRBandsResult struct {
	Upper floats.Slice
	Lower floats.Slice
}

// NATRBands places a band of close*NATR*multiplier/100 on each side of the close.
func NATRBands(high, low, cloze []float64, period int, multiplier float64) (*NATRBandsResult, error) {
	natr, err := NATR(high, low, cloze, period)
	if err != nil {
		return nil, err
	}

	r := &NATRBandsResult{
		Upper: floats.NaNs(len(natr)),
		Lower: floats.NaNs(len(natr)),
	}
	for i, v := range natr {
		if floats.IsSentinel(v) {
			continue
		}
		width := cloze[i] * v * multiplier / 100
		r.Upper[i] = cloze[i] + width
		r.Lower[i] = cloze[i] - width
	}

	return r, nil
}
