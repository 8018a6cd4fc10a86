package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var IndicatorRunsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ta_indicator_runs_total",
		Help: "number of indicator computations",
	}, []string{"indicator", "symbol", "interval"})

var IndicatorErrorsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ta_indicator_errors_total",
		Help: "number of failed indicator computations",
	}, []string{"indicator", "symbol", "interval"})

var IndicatorDurationMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "ta_indicator_duration_seconds",
		Help:    "indicator computation latency",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"indicator", "symbol", "interval"})

var IndicatorBarsMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "ta_indicator_bars",
		Help: "number of bars of the last computation",
	}, []string{"indicator", "symbol", "interval"})

var IndicatorLastValueMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "ta_indicator_last_value",
		Help: "the last value of each output column",
	}, []string{"column", "symbol", "interval"})

func labels(indicator, symbol, interval string) prometheus.Labels {
	return prometheus.Labels{
		"indicator": indicator,
		"symbol":    symbol,
		"interval":  interval,
	}
}

// ObserveRun records one computation of an indicator over bars bars.
func ObserveRun(indicator, symbol, interval string, bars int, duration time.Duration, err error) {
	l := labels(indicator, symbol, interval)
	IndicatorRunsMetrics.With(l).Inc()
	IndicatorDurationMetrics.With(l).Observe(duration.Seconds())
	if err != nil {
		IndicatorErrorsMetrics.With(l).Inc()
		return
	}
	IndicatorBarsMetrics.With(l).Set(float64(bars))
}

func UpdateLastValue(column, symbol, interval string, value float64) {
	IndicatorLastValueMetrics.With(prometheus.Labels{
		"column":   column,
		"symbol":   symbol,
		"interval": interval,
	}).Set(value)
}

// WriteToTextfile dumps the registered metrics for the node exporter textfile collector.
func WriteToTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer); err != nil {
		return errors.Wrapf(err, "unable to write metrics to %s", filename)
	}
	return nil
}

func init() {
	prometheus.MustRegister(
		IndicatorRunsMetrics,
		IndicatorErrorsMetrics,
		IndicatorDurationMetrics,
		IndicatorBarsMetrics,
		IndicatorLastValueMetrics,
	)
}
