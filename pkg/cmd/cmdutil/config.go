package cmdutil

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/c9s/ta/pkg/config"
	"github.com/c9s/ta/pkg/datasource/csvsource"
	"github.com/c9s/ta/pkg/types"
)

// LoadConfig reads the config file when it's given and applies the overrides from
// the flags and the TA_* environment variables.
func LoadConfig(v *viper.Viper, indicatorFlags []string) (*config.Config, error) {
	conf := config.Default()
	if configFile := v.GetString("config"); configFile != "" {
		var err error
		conf, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	}

	if err := ApplyOverrides(conf, v, indicatorFlags); err != nil {
		return nil, err
	}

	if conf.Source.Path == "" {
		return nil, errors.New("--csv or source.path in the config file is required")
	}

	if len(conf.Indicators) == 0 {
		return nil, errors.New("no indicator is given, use --indicator or the indicators section of the config file")
	}

	return conf, conf.Validate()
}

func ApplyOverrides(conf *config.Config, v *viper.Viper, indicatorFlags []string) error {
	if v.IsSet("csv") {
		conf.Source.Path = v.GetString("csv")
	}
	if v.IsSet("source-format") {
		conf.Source.Format = v.GetString("source-format")
	}
	if v.IsSet("symbol") {
		conf.Symbol = strings.ToUpper(v.GetString("symbol"))
	}
	if v.IsSet("interval") {
		conf.Interval = types.Interval(v.GetString("interval"))
	}
	if v.IsSet("columns") {
		conf.Output.Columns = v.GetStringSlice("columns")
	}
	if v.IsSet("tail") {
		conf.Output.Tail = v.GetInt("tail")
	}
	if v.IsSet("format") {
		conf.Output.Format = v.GetString("format")
	}
	if v.IsSet("output") {
		conf.Output.File = v.GetString("output")
	}
	if v.IsSet("chart") {
		conf.Output.Chart = v.GetString("chart")
	}
	if v.IsSet("metrics-textfile") {
		conf.Metrics.Textfile = v.GetString("metrics-textfile")
	}

	// the indicators given on the command line replace the configured ones
	if len(indicatorFlags) > 0 {
		conf.Indicators = nil
		for _, s := range indicatorFlags {
			ic, err := config.ParseIndicatorFlag(s)
			if err != nil {
				return err
			}
			conf.Indicators = append(conf.Indicators, ic)
		}
	}

	return nil
}

// LoadWindow reads the klines the config points to.
func LoadWindow(conf *config.Config) (types.KLineWindow, error) {
	format := strings.ToLower(conf.Source.Format)
	if format == "" {
		format = "binance"
	}

	maker, ok := csvsource.Decoders[format]
	if !ok {
		return nil, errors.Errorf("unsupported source format %q", conf.Source.Format)
	}

	return csvsource.ReadKLineWindow(conf.Source.Path, conf.Symbol, conf.Interval, maker)
}
