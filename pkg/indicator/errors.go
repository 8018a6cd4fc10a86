package indicator

import (
	"github.com/pkg/errors"
)

// Error kinds returned by the indicator functions. Every returned error wraps
// exactly one of them, test with errors.Is.
var (
	ErrEmptyInput        = errors.New("empty input")
	ErrMismatchedLengths = errors.New("mismatched input lengths")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrInsufficientData  = errors.New("insufficient data")
)

// almostZero is the guard used for every division by a smoothed denominator
func almostZero(v float64) bool {
	return v > -0.00000000000001 && v < 0.00000000000001
}

func checkNotEmpty(name string, values []float64) error {
	if len(values) == 0 {
		return errors.Wrapf(ErrEmptyInput, "%s is empty", name)
	}
	return nil
}

func checkPeriod(period int) error {
	if period <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "period must be greater than 0, got %d", period)
	}
	return nil
}

func checkAlpha(alpha float64) error {
	if !(alpha > 0 && alpha <= 1) {
		return errors.Wrapf(ErrInvalidParameter, "alpha must be in (0, 1], got %f", alpha)
	}
	return nil
}

func checkLength(required, provided int) error {
	if provided < required {
		return errors.Wrapf(ErrInsufficientData, "need at least %d data points, got %d", required, provided)
	}
	return nil
}

// checkHL validates the parallel high/low arrays shared by the range based indicators
func checkHL(high, low []float64) error {
	if err := checkNotEmpty("high", high); err != nil {
		return err
	}
	if err := checkNotEmpty("low", low); err != nil {
		return err
	}
	if len(high) != len(low) {
		return errors.Wrapf(ErrMismatchedLengths, "high length (%d) != low length (%d)", len(high), len(low))
	}
	return nil
}

func checkHLC(high, low, cloze []float64) error {
	if err := checkHL(high, low); err != nil {
		return err
	}
	if err := checkNotEmpty("close", cloze); err != nil {
		return err
	}
	if len(cloze) != len(high) {
		return errors.Wrapf(ErrMismatchedLengths, "close length (%d) != high length (%d)", len(cloze), len(high))
	}
	return nil
}
