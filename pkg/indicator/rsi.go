package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/datatype/floats"
)

/*
rsi implements Relative Strength Index (RSI)

https://www.investopedia.com/terms/r/rsi.asp

The first differences are split into a gain and a loss stream. Both are seeded with
their mean over the first period differences and then smoothed independently with
Wilder's recursion. The oscillator is 100 when the smoothed loss is zero.
*/
func RSI(values []float64, period int) ([]float64, error) {
	return RSIWithAlpha(values, period, wilderAlpha(period))
}

// RSIWithAlpha is RSI with an explicit smoothing coefficient.
func RSIWithAlpha(values []float64, period int, alpha float64) ([]float64, error) {
	if err := checkNotEmpty("values", values); err != nil {
		return nil, err
	}
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	if err := checkLength(period+1, len(values)); err != nil {
		return nil, err
	}

	differences := floats.Slice(values).Diff()
	gains := differences.PositiveValuesOrZero()
	losses := differences.NegativeValuesOrZero().Abs()

	// index 0 of the differences is not a real change, the seed covers 1..period
	avgGain := smoothFrom(gains, 1, period, alpha)
	avgLoss := smoothFrom(losses, 1, period, alpha)

	out := floats.NaNs(len(values))
	for i := period; i < len(values); i++ {
		out[i] = rsi(avgGain[i], avgLoss[i])
	}

	return out, nil
}

func rsi(avgGain, avgLoss float64) float64 {
	if almostZero(avgLoss) {
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// RSISignals pairs the oscillator with a signal series: 1 is bullish, -1 is
// bearish and 0 is neutral. The signal is the sentinel while it is undefined.
type RSISignals struct {
	RSI    floats.Slice
	Signal floats.Slice
}

// RSILevels flags the bars where RSI reaches the overbought level (-1) or
// falls to the oversold level (1).
func RSILevels(values []float64, period int, overbought, oversold float64) (*RSISignals, error) {
	if err := checkNotEmpty("values", values); err != nil {
		return nil, err
	}
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	if overbought <= oversold {
		return nil, errors.Wrapf(ErrInvalidParameter, "overbought level %f must be greater than oversold level %f", overbought, oversold)
	}
	if overbought > 100 || oversold < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "rsi levels must be between 0 and 100, got %f and %f", overbought, oversold)
	}

	rsiValues, err := RSI(values, period)
	if err != nil {
		return nil, err
	}

	signal := floats.NaNs(len(rsiValues))
	for i, v := range rsiValues {
		switch {
		case floats.IsSentinel(v):
		case v >= overbought:
			signal[i] = -1
		case v <= oversold:
			signal[i] = 1
		default:
			signal[i] = 0
		}
	}

	return &RSISignals{RSI: rsiValues, Signal: signal}, nil
}

// RSIDivergence compares every bar with the previous lookback bars. A higher
// price with a lower RSI is a bearish divergence (-1), a lower price with a
// higher RSI is a bullish one (1). Bearish wins when both are found.
func RSIDivergence(values []float64, period, lookback int) (*RSISignals, error) {
	if err := checkNotEmpty("values", values); err != nil {
		return nil, err
	}
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	if lookback <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "lookback must be greater than 0, got %d", lookback)
	}
	if err := checkLength(period+lookback+1, len(values)); err != nil {
		return nil, err
	}

	rsiValues, err := RSI(values, period)
	if err != nil {
		return nil, err
	}

	signal := floats.NaNs(len(values))
	for i := period + lookback; i < len(values); i++ {
		signal[i] = divergence(values, rsiValues, i, lookback)
	}

	return &RSISignals{RSI: rsiValues, Signal: signal}, nil
}

func divergence(values, rsiValues []float64, i, lookback int) float64 {
	price, current := values[i], rsiValues[i]
	if floats.IsSentinel(current) {
		return 0
	}

	for j := i - lookback; j < i; j++ {
		if !floats.IsSentinel(rsiValues[j]) && values[j] < price && rsiValues[j] > current {
			return -1
		}
	}

	for j := i - lookback; j < i; j++ {
		if !floats.IsSentinel(rsiValues[j]) && values[j] > price && rsiValues[j] < current {
			return 1
		}
	}

	return 0
}
