package report

import (
	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/datatype/floats"
	"github.com/c9s/ta/pkg/indicatorset"
	"github.com/c9s/ta/pkg/types"
)

var ErrUnknownColumn = errors.New("unknown column")

type Row struct {
	Time   types.Time
	Close  float64
	Change float64
	Values []float64
}

// Frame is the rectangular view of the indicator results, one row per kline.
type Frame struct {
	Symbol   string
	Interval types.Interval
	Columns  []string
	Rows     []Row

	// Overlays are the columns on the price scale
	Overlays map[string]bool
}

// NewFrame lines up the result columns with the klines. A non-empty selection keeps
// only those columns in the given order, tail > 0 keeps the last tail rows.
func NewFrame(window types.KLineWindow, results []indicatorset.Result, selection []string, tail int) (*Frame, error) {
	all := map[string]floats.Slice{}
	overlays := map[string]bool{}
	var names []string
	for _, result := range results {
		for _, column := range result.Columns {
			if len(column.Values) != window.Len() {
				return nil, errors.Errorf("column %s has %d values, expected %d", column.Name, len(column.Values), window.Len())
			}
			all[column.Name] = column.Values
			names = append(names, column.Name)
		}
		for _, name := range result.Overlays() {
			overlays[name] = true
		}
	}

	if len(selection) > 0 {
		for _, name := range selection {
			if _, ok := all[name]; !ok {
				return nil, errors.Wrapf(ErrUnknownColumn, "%q", name)
			}
		}
		names = selection
	}

	f := &Frame{
		Columns:  names,
		Overlays: map[string]bool{},
	}
	for _, name := range names {
		if overlays[name] {
			f.Overlays[name] = true
		}
	}

	if window.Len() > 0 {
		f.Symbol = window.First().Symbol
		f.Interval = window.First().Interval
	}

	start := 0
	if tail > 0 && tail < window.Len() {
		start = window.Len() - tail
	}

	for i := start; i < window.Len(); i++ {
		k := window[i]
		row := Row{
			Time:   k.StartTime,
			Close:  k.Close,
			Change: k.GetChange(),
			Values: make([]float64, len(names)),
		}
		for j, name := range names {
			row.Values[j] = all[name][i]
		}
		f.Rows = append(f.Rows, row)
	}

	return f, nil
}

// Column returns the values of one column over the frame rows.
func (f *Frame) Column(name string) (floats.Slice, bool) {
	for j, c := range f.Columns {
		if c != name {
			continue
		}

		values := make(floats.Slice, len(f.Rows))
		for i, row := range f.Rows {
			values[i] = row.Values[j]
		}
		return values, true
	}
	return nil, false
}

// Record is the serializable row, undefined values are null.
type Record struct {
	Time   types.Time          `json:"time" yaml:"time"`
	Close  float64             `json:"close" yaml:"close"`
	Values map[string]*float64 `json:"values" yaml:"values"`
}

func (f *Frame) Records() []Record {
	records := make([]Record, len(f.Rows))
	for i, row := range f.Rows {
		values := make(map[string]*float64, len(f.Columns))
		for j, name := range f.Columns {
			if floats.IsSentinel(row.Values[j]) {
				values[name] = nil
				continue
			}
			v := row.Values[j]
			values[name] = &v
		}
		records[i] = Record{Time: row.Time, Close: row.Close, Values: values}
	}
	return records
}
