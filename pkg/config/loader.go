package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/ta/pkg/indicator"
	"github.com/c9s/ta/pkg/types"
)

type SourceConfig struct {
	// Path is a csv file or a directory of csv files
	Path string `json:"path" yaml:"path"`

	// Format selects the csv decoder: binance, bybit or metatrader
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

type IndicatorConfig struct {
	Type string `json:"type" yaml:"type"`

	// Name prefixes the output columns, defaults to the type and its parameters
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Period int     `json:"period,omitempty" yaml:"period,omitempty"`
	Alpha  float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`

	// Source is the price column the single series indicators read, close by default
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// sar
	Acceleration    float64              `json:"acceleration,omitempty" yaml:"acceleration,omitempty"`
	MaxAcceleration float64              `json:"maxAcceleration,omitempty" yaml:"maxAcceleration,omitempty"`
	SAR             *indicator.SARParams `json:"sar,omitempty" yaml:"sar,omitempty"`

	// mama
	FastLimit float64 `json:"fastLimit,omitempty" yaml:"fastLimit,omitempty"`
	SlowLimit float64 `json:"slowLimit,omitempty" yaml:"slowLimit,omitempty"`

	// rsi_levels
	Overbought float64 `json:"overbought,omitempty" yaml:"overbought,omitempty"`
	Oversold   float64 `json:"oversold,omitempty" yaml:"oversold,omitempty"`

	// rsi_divergence compares each bar with the previous Lookback bars
	Lookback int `json:"lookback,omitempty" yaml:"lookback,omitempty"`

	// natr_bands
	Multiplier float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
}

type OutputConfig struct {
	// Format is one of table, csv, json or yaml
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// File writes the report into a file instead of stdout
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Tail limits the report to the last n rows
	Tail int `json:"tail,omitempty" yaml:"tail,omitempty"`

	// Columns selects the indicator columns to report
	Columns StringSlice `json:"columns,omitempty" yaml:"columns,omitempty"`

	// Chart renders the close price and the overlay columns into a png file
	Chart string `json:"chart,omitempty" yaml:"chart,omitempty"`
}

type MetricsConfig struct {
	// Textfile writes the prometheus metrics in the node exporter textfile format
	Textfile string `json:"textfile,omitempty" yaml:"textfile,omitempty"`
}

type Config struct {
	Symbol   string         `json:"symbol" yaml:"symbol"`
	Interval types.Interval `json:"interval" yaml:"interval"`

	Source     SourceConfig      `json:"source" yaml:"source"`
	Indicators []IndicatorConfig `json:"indicators" yaml:"indicators"`
	Output     OutputConfig      `json:"output" yaml:"output"`
	Metrics    MetricsConfig     `json:"metrics" yaml:"metrics"`
}

func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every invalid section at once.
func (c *Config) Validate() (err error) {
	if c.Interval != "" && types.ParseInterval(c.Interval) == 0 {
		err = multierr.Append(err, errors.Errorf("invalid interval %q", c.Interval))
	}

	switch strings.ToLower(c.Output.Format) {
	case "", "table", "csv", "json", "yaml":
	default:
		err = multierr.Append(err, errors.Errorf("unsupported output format %q", c.Output.Format))
	}

	if c.Output.Tail < 0 {
		err = multierr.Append(err, errors.Errorf("output tail can not be negative, got %d", c.Output.Tail))
	}

	names := map[string]struct{}{}
	for i, ic := range c.Indicators {
		if ic.Type == "" {
			err = multierr.Append(err, errors.Errorf("indicators[%d]: type is required", i))
			continue
		}

		if ic.Name == "" {
			continue
		}
		if _, ok := names[ic.Name]; ok {
			err = multierr.Append(err, errors.Errorf("indicators[%d]: duplicated name %q", i, ic.Name))
		}
		names[ic.Name] = struct{}{}
	}

	return err
}

// Load reads the yaml config file, missing sections take the defaults.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
	}

	return LoadFromBytes(content)
}

func LoadFromBytes(content []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, errors.Wrap(err, "unable to parse yaml config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func Default() *Config {
	return &Config{
		Interval: types.Interval1h,
		Source: SourceConfig{
			Format: "binance",
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}
