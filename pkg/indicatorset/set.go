package indicatorset

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/ta/pkg/config"
	"github.com/c9s/ta/pkg/datatype/floats"
	"github.com/c9s/ta/pkg/metrics"
	"github.com/c9s/ta/pkg/types"
)

var log = logrus.WithField("component", "indicatorset")

type Column struct {
	Name   string
	Values floats.Slice
}

// Last returns the last defined value of the column.
func (c Column) Last() (float64, bool) {
	for i := len(c.Values) - 1; i >= 0; i-- {
		if !floats.IsSentinel(c.Values[i]) {
			return c.Values[i], true
		}
	}
	return 0, false
}

type Result struct {
	Indicator config.IndicatorConfig
	Columns   []Column

	// Lookback is the warm-up of the slowest column
	Lookback int
	Duration time.Duration
}

// Overlays returns the columns drawn on the price scale.
func (r Result) Overlays() (names []string) {
	n := registry[r.Indicator.Type].overlays
	for i := 0; i < n && i < len(r.Columns); i++ {
		names = append(names, r.Columns[i].Name)
	}
	return names
}

// Compute runs one indicator over the window.
func Compute(ic config.IndicatorConfig, window types.KLineWindow) (*Result, error) {
	ic, err := Normalize(ic)
	if err != nil {
		return nil, err
	}

	def := registry[ic.Type]

	startTime := time.Now()
	series, err := def.compute(ic, window)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", ic.Name)
	}

	names := ColumnNames(ic)
	columns := make([]Column, len(series))
	for i, values := range series {
		columns[i] = Column{Name: names[i], Values: values}
	}

	return &Result{
		Indicator: ic,
		Columns:   columns,
		Lookback:  def.lookback(ic),
		Duration:  time.Since(startTime),
	}, nil
}

type Set struct {
	Symbol     string
	Interval   types.Interval
	Indicators []config.IndicatorConfig

	// Concurrency limits the indicators computed at the same time, 0 means no limit
	Concurrency int
}

func New(symbol string, interval types.Interval, indicators ...config.IndicatorConfig) *Set {
	return &Set{
		Symbol:     symbol,
		Interval:   interval,
		Indicators: indicators,
	}
}

// Validate checks the indicator types and the uniqueness of the output columns.
func (s *Set) Validate() (err error) {
	columns := map[string]string{}
	for _, ic := range s.Indicators {
		normalized, err2 := Normalize(ic)
		if err2 != nil {
			err = multierr.Append(err, err2)
			continue
		}

		for _, name := range ColumnNames(normalized) {
			if owner, ok := columns[name]; ok {
				err = multierr.Append(err, errors.Errorf("column %q of %s is already produced by %s", name, normalized.Type, owner))
				continue
			}
			columns[name] = normalized.Type
		}
	}

	return err
}

// Run validates the window and computes every indicator of the set concurrently.
// The results keep the order of the indicators.
func (s *Set) Run(ctx context.Context, window types.KLineWindow) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if err := window.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid kline window")
	}

	results := make([]Result, len(s.Indicators))

	g, ctx := errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		g.SetLimit(s.Concurrency)
	}

	for i, ic := range s.Indicators {
		// the metrics of failed and successful runs share the column name
		ic, err := Normalize(ic)
		if err != nil {
			return nil, err
		}

		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := Compute(ic, window)
			if err != nil {
				metrics.ObserveRun(ic.Name, s.Symbol, s.Interval.String(), window.Len(), 0, err)
				log.WithError(err).Errorf("unable to compute %s", ic.Name)
				return err
			}

			metrics.ObserveRun(result.Indicator.Name, s.Symbol, s.Interval.String(), window.Len(), result.Duration, nil)
			for _, column := range result.Columns {
				if v, ok := column.Last(); ok {
					metrics.UpdateLastValue(column.Name, s.Symbol, s.Interval.String(), v)
				}
			}

			log.Debugf("computed %s over %d klines in %s", result.Indicator.Name, window.Len(), result.Duration)
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
