package csvsource

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/c9s/ta/pkg/types"
)

var _ KLineReader = (*CSVKLineReader)(nil)

// CSVKLineReader is a KLineReader that reads from a CSV file.
type CSVKLineReader struct {
	csv     *csv.Reader
	decoder CSVKLineDecoder
	started bool
}

// MakeCSVKLineReader is a factory method type that creates a new CSVKLineReader.
type MakeCSVKLineReader func(csv *csv.Reader) *CSVKLineReader

// NewCSVKLineReader creates a new CSVKLineReader with the default Binance decoder.
func NewCSVKLineReader(csv *csv.Reader) *CSVKLineReader {
	return &CSVKLineReader{
		csv:     csv,
		decoder: BinanceCSVKLineDecoder,
	}
}

// NewCSVKLineReaderWithDecoder creates a new CSVKLineReader with the given decoder.
func NewCSVKLineReaderWithDecoder(csv *csv.Reader, decoder CSVKLineDecoder) *CSVKLineReader {
	return &CSVKLineReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read reads the next KLine from the underlying CSV data.
// A leading header row (binance dumps start with "open_time") is skipped.
func (r *CSVKLineReader) Read(interval time.Duration) (types.KLine, error) {
	var k types.KLine

	rec, err := r.csv.Read()
	if err != nil {
		return k, err
	}

	if !r.started {
		r.started = true
		if isHeader(rec) {
			return r.Read(interval)
		}
	}

	return r.decoder(rec, interval)
}

// ReadAll reads all the KLines from the underlying CSV data.
func (r *CSVKLineReader) ReadAll(interval time.Duration) ([]types.KLine, error) {
	var ks []types.KLine
	for {
		k, err := r.Read(interval)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ks = append(ks, k)
	}

	return ks, nil
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(rec[0])) {
	case "open_time", "timestamp", "time", "date":
		return true
	}
	return false
}
