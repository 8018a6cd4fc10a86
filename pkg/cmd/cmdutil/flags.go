package cmdutil

import "github.com/spf13/pflag"

// DataFlags defines the flags that select the klines and the indicators
func DataFlags(flags *pflag.FlagSet) {
	flags.String("csv", "", "kline csv file or a directory of csv files")
	flags.String("source-format", "", "csv format: binance, bybit or metatrader")
	flags.String("symbol", "", "the symbol of the klines, e.g. BTCUSDT")
	flags.String("interval", "", "the interval of the klines, e.g. 1h")
	flags.StringArray("indicator", nil, "indicator shorthand, e.g. rsi:14, ema:9:high, sar:0.02:0.2, mama:0.5:0.05")
	flags.StringSlice("columns", nil, "the output columns to keep")
	flags.Int("tail", 0, "only keep the last n rows")
}

// OutputFlags defines the flags of the report
func OutputFlags(flags *pflag.FlagSet) {
	flags.String("format", "", "output format: table, csv, json or yaml")
	flags.String("output", "", "write the report into a file")
	flags.String("chart", "", "render a png chart into the file")
	flags.String("metrics-textfile", "", "write the prometheus metrics into the file")
	flags.Bool("summary", false, "print the column statistics after the report")
	flags.Int("concurrency", 0, "the number of indicators computed at the same time, 0 for no limit")
}
