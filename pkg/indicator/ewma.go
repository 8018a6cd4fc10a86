package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/datatype/floats"
)

// expRecursion carries the single scalar state of the exponential recursion.
// It is created per call and never escapes the function that folds it.
type expRecursion struct {
	alpha float64
	value float64
}

func (r *expRecursion) seed(values []float64) float64 {
	r.value = floats.Slice(values).Mean()
	return r.value
}

func (r *expRecursion) next(x float64) float64 {
	r.value = r.alpha*x + (1-r.alpha)*r.value
	return r.value
}

// smoothFrom seeds the recursion with the mean of values[start:start+period] at
// index start+period-1 and folds the rest of the series into it. Entries before
// the seed index are the sentinel. Callers make sure enough data is available.
func smoothFrom(values []float64, start, period int, alpha float64) floats.Slice {
	out := floats.NaNs(len(values))
	seedIndex := start + period - 1
	if seedIndex >= len(values) {
		return out
	}

	r := expRecursion{alpha: alpha}
	out[seedIndex] = r.seed(values[start : seedIndex+1])
	for i := seedIndex + 1; i < len(values); i++ {
		out[i] = r.next(values[i])
	}

	return out
}

// Smooth applies the exponential recursion y[i] = alpha*x[i] + (1-alpha)*y[i-1]
// seeded with the arithmetic mean of the first period values at index period-1.
func Smooth(values []float64, period int, alpha float64) ([]float64, error) {
	if err := checkNotEmpty("values", values); err != nil {
		return nil, err
	}
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	if err := checkLength(period, len(values)); err != nil {
		return nil, err
	}

	return smoothFrom(values, 0, period, alpha), nil
}

// EMA is the exponential moving average, alpha = 2 / (period + 1)
// see https://www.investopedia.com/ask/answers/122314/what-exponential-moving-average-ema-formula-and-how-ema-calculated.asp
func EMA(values []float64, period int) ([]float64, error) {
	return Smooth(values, period, emaAlpha(period))
}

// EMAFromFirst seeds the EMA with the first value instead of a mean, so every
// output is defined.
func EMAFromFirst(values []float64, period int) ([]float64, error) {
	if err := checkNotEmpty("values", values); err != nil {
		return nil, err
	}
	if err := checkPeriod(period); err != nil {
		return nil, err
	}

	return foldFromFirst(values, emaAlpha(period)), nil
}

// EMAWithAlpha is EMAFromFirst with an explicit smoothing factor in (0, 1).
func EMAWithAlpha(values []float64, alpha float64) ([]float64, error) {
	if err := checkNotEmpty("values", values); err != nil {
		return nil, err
	}
	if !(alpha > 0 && alpha < 1) {
		return nil, errors.Wrapf(ErrInvalidParameter, "smoothing factor must be in (0, 1), got %f", alpha)
	}

	return foldFromFirst(values, alpha), nil
}

func foldFromFirst(values []float64, alpha float64) floats.Slice {
	out := make(floats.Slice, len(values))
	r := expRecursion{alpha: alpha, value: values[0]}
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = r.next(values[i])
	}
	return out
}

func emaAlpha(period int) float64 {
	return 2.0 / float64(period+1)
}
