package csvsource

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/types"
)

// KLineFileName follows the binance data dump naming: SYMBOL-INTERVAL-FROM[-TO].csv
func KLineFileName(klines []types.KLine) string {
	first := klines[0]
	from := first.StartTime.Time().UTC()
	end := klines[len(klines)-1].StartTime.Time().UTC()

	to := ""
	if end.Format("2006-01-02") != from.Format("2006-01-02") {
		to = "-" + end.Format("2006-01-02")
	}

	return fmt.Sprintf("%s-%s-%s%s.csv", first.Symbol, first.Interval, from.Format("2006-01-02"), to)
}

// WriteKLines writes the klines in the binance csv format into the directory and
// returns the written file name.
func WriteKLines(dir string, klines []types.KLine) (fileName string, err error) {
	if len(klines) == 0 {
		return "", errors.New("no klines to write")
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", errors.Wrapf(err, "mkdir %s", dir)
	}

	fileName = filepath.Join(dir, KLineFileName(klines))
	file, err := os.Create(fileName)
	if err != nil {
		return "", errors.Wrap(err, "failed to open file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(file)
	for _, kline := range klines {
		row := []string{
			strconv.FormatInt(kline.StartTime.Time().UnixMilli(), 10),
			formatFloat(kline.Open),
			formatFloat(kline.High),
			formatFloat(kline.Low),
			formatFloat(kline.Close),
			formatFloat(kline.Volume),
		}
		if err := w.Write(row); err != nil {
			return "", errors.Wrap(err, "writing record to file")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "flushing records")
	}

	log.Debugf("wrote %d klines to %s", len(klines), fileName)
	return fileName, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
