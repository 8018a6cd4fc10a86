package csvsource

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/ta/pkg/types"
)

var log = logrus.WithField("component", "csvsource")

// KLineReader is an interface for reading candlesticks.
type KLineReader interface {
	Read(interval time.Duration) (types.KLine, error)
	ReadAll(interval time.Duration) ([]types.KLine, error)
}

// Decoders maps the --format names to the reader factories.
var Decoders = map[string]MakeCSVKLineReader{
	"binance":    NewBinanceCSVKLineReader,
	"bybit":      NewBinanceCSVKLineReader,
	"metatrader": NewMetaTraderCSVKLineReader,
}

// ReadKLinesFromCSV reads all the .csv files in a given directory or a single file into a slice of KLines.
// Wraps a default CSVKLineReader with Binance decoder for convenience.
// For finer grained memory management use the base kline reader.
func ReadKLinesFromCSV(path string, interval time.Duration) ([]types.KLine, error) {
	return ReadKLinesFromCSVWithDecoder(path, interval, MakeCSVKLineReader(NewBinanceCSVKLineReader))
}

// ReadKLinesFromCSVWithDecoder permits using a custom CSVKLineReader.
func ReadKLinesFromCSVWithDecoder(path string, interval time.Duration, maker MakeCSVKLineReader) ([]types.KLine, error) {
	var klines []types.KLine

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()
		reader := maker(csv.NewReader(file))
		newKlines, err := reader.ReadAll(interval)
		if err != nil {
			return errors.Wrapf(err, "unable to read %s", path)
		}

		log.Debugf("loaded %d klines from %s", len(newKlines), path)
		klines = append(klines, newKlines...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return klines, nil
}

// ReadKLineWindow reads the klines and tags them with the symbol and the interval.
func ReadKLineWindow(path, symbol string, interval types.Interval, maker MakeCSVKLineReader) (types.KLineWindow, error) {
	if maker == nil {
		maker = NewBinanceCSVKLineReader
	}

	klines, err := ReadKLinesFromCSVWithDecoder(path, interval.Duration(), maker)
	if err != nil {
		return nil, err
	}

	for i := range klines {
		klines[i].Symbol = symbol
		klines[i].Interval = interval
	}

	return klines, nil
}
