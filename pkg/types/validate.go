package types

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var ErrEmptyWindow = errors.New("kline window is empty")

// Validate checks the whole window before it is handed to the indicators. Every
// bad bar is reported, the errors are combined with multierr.
func (k KLineWindow) Validate() error {
	if len(k) == 0 {
		return ErrEmptyWindow
	}

	var err error
	for i := range k {
		if e := k[i].Validate(); e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "kline #%d at %s", i, k[i].StartTime.Time().UTC().Format("2006-01-02 15:04")))
		}
	}

	for i := 1; i < len(k); i++ {
		// windows built without timestamps are not ordered by time
		if k[i].StartTime.IsZero() && k[i-1].StartTime.IsZero() {
			continue
		}
		if !k[i].StartTime.After(k[i-1].StartTime.Time()) {
			err = multierr.Append(err, errors.Errorf("kline #%d start time %s is not after the previous kline", i, k[i].StartTime.Time().UTC().Format("2006-01-02 15:04")))
		}
	}

	return err
}
