package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/c9s/ta/pkg/datatype/floats"
	"github.com/c9s/ta/pkg/style"
)

const timeLayout = "2006-01-02 15:04"

var ErrUnsupportedFormat = errors.New("unsupported output format")

// Write renders the frame in one of the formats: table, csv, json or yaml.
func Write(w io.Writer, format string, f *Frame) error {
	switch strings.ToLower(format) {
	case "", "table":
		return WriteTable(w, f, !color.NoColor)
	case "csv":
		return WriteCSV(w, f)
	case "json":
		return WriteJSON(w, f)
	case "yaml":
		return WriteYAML(w, f)
	}

	return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
}

func formatValue(v float64) string {
	if floats.IsSentinel(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func WriteTable(w io.Writer, f *Frame, withColor bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	if withColor {
		t.SetStyle(*style.NewDefaultTableStyle())
		color.New(color.FgHiCyan, color.Bold).Fprintf(w, "%s %s\n", f.Symbol, f.Interval)
	} else {
		t.SetStyle(*style.NewPlainTableStyle())
		if _, err := io.WriteString(w, f.Symbol+" "+f.Interval.String()+"\n"); err != nil {
			return err
		}
	}

	header := table.Row{"time", "close", "change"}
	configs := []table.ColumnConfig{{Number: 3, Align: text.AlignRight}}
	for i, name := range f.Columns {
		header = append(header, name)
		configs = append(configs, table.ColumnConfig{Number: i + 4, Align: text.AlignRight})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for _, r := range f.Rows {
		change := style.SignString(r.Change, 2)
		if withColor {
			change = style.ChangeColors(r.Change).Sprint(change)
		}

		row := table.Row{r.Time.Time().UTC().Format(timeLayout), formatValue(r.Close), change}
		for _, v := range r.Values {
			if floats.IsSentinel(v) {
				row = append(row, "-")
				continue
			}
			row = append(row, formatValue(v))
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

// WriteCSV writes one row per kline, undefined values are empty cells.
func WriteCSV(w io.Writer, f *Frame) error {
	cw := csv.NewWriter(w)

	header := append([]string{"time", "close"}, f.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range f.Rows {
		record := []string{
			strconv.FormatInt(r.Time.Time().UnixMilli(), 10),
			strconv.FormatFloat(r.Close, 'f', -1, 64),
		}
		for _, v := range r.Values {
			if floats.IsSentinel(v) {
				record = append(record, "")
				continue
			}
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type document struct {
	Symbol   string   `json:"symbol" yaml:"symbol"`
	Interval string   `json:"interval" yaml:"interval"`
	Columns  []string `json:"columns" yaml:"columns"`
	Records  []Record `json:"records" yaml:"records"`
}

func newDocument(f *Frame) document {
	return document{
		Symbol:   f.Symbol,
		Interval: f.Interval.String(),
		Columns:  f.Columns,
		Records:  f.Records(),
	}
}

func WriteJSON(w io.Writer, f *Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(newDocument(f)), "unable to encode json report")
}

func WriteYAML(w io.Writer, f *Frame) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(f)); err != nil {
		return errors.Wrap(err, "unable to encode yaml report")
	}
	return enc.Close()
}
