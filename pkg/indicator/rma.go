package indicator

// Running Moving Average, a.k.a. Wilder's smoothing
// Refer: https://github.com/twopirllc/pandas-ta/blob/main/pandas_ta/overlap/rma.py#L5
//
// Wilder's smoothing is the exponential recursion with a coefficient of 1/period. It
// reacts slower than the EMA of the same period and is the smoothing used by RSI,
// ATR and the directional movement system.

// WilderSmooth smooths values with alpha = 1 / period, seeded with the mean of the
// first period values.
func WilderSmooth(values []float64, period int) ([]float64, error) {
	return Smooth(values, period, wilderAlpha(period))
}

func wilderAlpha(period int) float64 {
	return 1.0 / float64(period)
}
