package report

import (
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	gonumfloats "gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/c9s/ta/pkg/datatype/floats"
	"github.com/c9s/ta/pkg/style"
)

// ColumnSummary describes the defined values of one column.
type ColumnSummary struct {
	Name   string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Last   float64
}

// Summarize computes the statistics of every column of the frame, every sentinel
// is left out. A column without any defined value has NaN statistics.
func Summarize(f *Frame) []ColumnSummary {
	summaries := make([]ColumnSummary, len(f.Columns))
	for i, name := range f.Columns {
		values, _ := f.Column(name)
		defined := floats.DropSentinels(values)

		s := ColumnSummary{
			Name:   name,
			Count:  len(defined),
			Mean:   math.NaN(),
			StdDev: math.NaN(),
			Min:    math.NaN(),
			Max:    math.NaN(),
			Last:   math.NaN(),
		}

		if len(defined) > 0 {
			s.Mean = stat.Mean(defined, nil)
			s.Min = gonumfloats.Min(defined)
			s.Max = gonumfloats.Max(defined)
			s.Last = defined[len(defined)-1]
		}
		if len(defined) > 1 {
			s.StdDev = stat.StdDev(defined, nil)
		}

		summaries[i] = s
	}
	return summaries
}

func WriteSummary(w io.Writer, summaries []ColumnSummary, withColor bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if withColor {
		t.SetStyle(*style.NewDefaultTableStyle())
		color.New(color.FgHiYellow).Fprintln(w, "---- summary ----")
	} else {
		t.SetStyle(*style.NewPlainTableStyle())
		_, _ = io.WriteString(w, "---- summary ----\n")
	}

	t.AppendHeader(table.Row{"column", "count", "mean", "stddev", "min", "max", "last"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.Name, s.Count,
			formatValue(s.Mean), formatValue(s.StdDev),
			formatValue(s.Min), formatValue(s.Max),
			formatValue(s.Last),
		})
	}
	t.Render()
}
