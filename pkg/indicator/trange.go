package indicator

import "math"

// TrueRange measures the per bar volatility including the gap against the previous close:
//
//	tr[0] = high[0] - low[0]
//	tr[i] = max(high[i]-low[i], |high[i]-close[i-1]|, |low[i]-close[i-1]|)
func TrueRange(high, low, cloze []float64) ([]float64, error) {
	if err := checkHLC(high, low, cloze); err != nil {
		return nil, err
	}

	return trueRange(high, low, cloze), nil
}

func trueRange(high, low, cloze []float64) []float64 {
	out := make([]float64, len(high))
	out[0] = high[0] - low[0]
	for i := 1; i < len(high); i++ {
		trueRange := high[i] - low[i]
		hc := math.Abs(high[i] - cloze[i-1])
		lc := math.Abs(low[i] - cloze[i-1])
		if trueRange < hc {
			trueRange = hc
		}

		if trueRange < lc {
			trueRange = lc
		}

		out[i] = trueRange
	}
	return out
}
