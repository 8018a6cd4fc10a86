package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/ta/pkg/datatype/floats"
	"github.com/c9s/ta/pkg/types"
)

// NewChart plots the close price with the overlay columns on the primary axis and
// the other selected columns on the secondary axis.
func NewChart(f *Frame, columns ...string) (*chart.Chart, error) {
	if len(f.Rows) < 2 {
		return nil, errors.Errorf("need at least 2 rows to draw a chart, got %d", len(f.Rows))
	}

	c := &chart.Chart{
		Title: fmt.Sprintf("%s %s", f.Symbol, f.Interval),
		XAxis: chart.XAxis{
			ValueFormatter: timeValueFormatter(f.Interval),
		},
		YAxis: chart.YAxis{
			ValueFormatter: floatValueFormatter,
		},
	}
	c.Elements = []chart.Renderable{
		chart.LegendLeft(c),
	}

	closes := make(floats.Slice, len(f.Rows))
	for i, r := range f.Rows {
		closes[i] = r.Close
	}
	c.Series = append(c.Series, timeSeries("close", f.Rows, closes, chart.YAxisPrimary))

	if len(columns) == 0 {
		columns = f.Columns
	}

	secondary := false
	for _, name := range columns {
		values, ok := f.Column(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownColumn, "%q", name)
		}

		axis := chart.YAxisPrimary
		if !f.Overlays[name] {
			axis = chart.YAxisSecondary
			secondary = true
		}

		series := timeSeries(name, f.Rows, values, axis)
		if len(series.XValues) < 2 {
			continue
		}
		c.Series = append(c.Series, series)
	}

	if secondary {
		c.YAxisSecondary = chart.YAxis{
			ValueFormatter: floatValueFormatter,
		}
	}

	return c, nil
}

// timeSeries skips the undefined values.
func timeSeries(name string, rows []Row, values floats.Slice, axis chart.YAxisType) chart.TimeSeries {
	s := chart.TimeSeries{
		Name:  name,
		YAxis: axis,
	}
	for i, v := range values {
		if floats.IsSentinel(v) {
			continue
		}
		s.XValues = append(s.XValues, rows[i].Time.Time())
		s.YValues = append(s.YValues, v)
	}
	return s
}

func timeValueFormatter(interval types.Interval) chart.ValueFormatter {
	switch d := interval.Duration(); {
	case d >= 24*time.Hour:
		return chart.TimeDateValueFormatter
	case d >= time.Hour:
		return chart.TimeHourValueFormatter
	}
	return chart.TimeMinuteValueFormatter
}

func floatValueFormatter(v interface{}) string {
	if vf, isFloat := v.(float64); isFloat {
		return fmt.Sprintf("%.2f", vf)
	}
	return ""
}

func RenderChart(w io.Writer, f *Frame, columns ...string) error {
	c, err := NewChart(f, columns...)
	if err != nil {
		return err
	}

	if err := c.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "unable to render chart")
	}
	return nil
}

func RenderChartFile(filename string, f *Frame, columns ...string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", filename)
	}
	defer file.Close()

	return RenderChart(file, f, columns...)
}
