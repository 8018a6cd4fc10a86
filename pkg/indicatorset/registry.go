package indicatorset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/config"
	"github.com/c9s/ta/pkg/indicator"
	"github.com/c9s/ta/pkg/types"
)

const (
	DefaultPeriod = 14

	DefaultAcceleration    = 0.02
	DefaultMaxAcceleration = 0.2

	DefaultFastLimit = 0.5
	DefaultSlowLimit = 0.05

	DefaultOverbought = 70.0
	DefaultOversold   = 30.0

	DefaultDivergenceLookback = 5

	DefaultBandMultiplier = 2.0
)

var ErrUnknownIndicator = errors.New("unknown indicator")
var ErrUnknownSource = errors.New("unknown source column")

// computeFunc returns one series per suffix of the definition.
type computeFunc func(ic config.IndicatorConfig, w types.KLineWindow) ([][]float64, error)

type definition struct {
	// periodic indicators take a period and carry it in the column name
	periodic bool

	// suffixes name the output columns, the empty suffix is the prefix itself
	suffixes []string

	// overlays is the number of leading columns on the price scale
	overlays int

	lookback func(ic config.IndicatorConfig) int
	compute  computeFunc
}

var dmiSuffixes = []string{"plus_dm", "minus_dm", "plus_di", "minus_di", "dx", "adx", "adxr"}

var registry = map[string]definition{
	"ema": {
		overlays: 1,
		periodic: true,
		lookback: func(ic config.IndicatorConfig) int { return indicator.EMALookback(ic.Period) },
		compute: single(func(ic config.IndicatorConfig, w types.KLineWindow) ([]float64, error) {
			values, err := Source(w, ic.Source)
			if err != nil {
				return nil, err
			}
			if ic.Alpha > 0 {
				return indicator.Smooth(values, ic.Period, ic.Alpha)
			}
			return indicator.EMA(values, ic.Period)
		}),
	},
	"wilder": {
		overlays: 1,
		periodic: true,
		lookback: func(ic config.IndicatorConfig) int { return indicator.WilderLookback(ic.Period) },
		compute: single(func(ic config.IndicatorConfig, w types.KLineWindow) ([]float64, error) {
			values, err := Source(w, ic.Source)
			if err != nil {
				return nil, err
			}
			if ic.Alpha > 0 {
				return indicator.Smooth(values, ic.Period, ic.Alpha)
			}
			return indicator.WilderSmooth(values, ic.Period)
		}),
	},
	"rsi": {
		periodic: true,
		lookback: func(ic config.IndicatorConfig) int { return indicator.RSILookback(ic.Period) },
		compute: single(func(ic config.IndicatorConfig, w types.KLineWindow) ([]float64, error) {
			values, err := Source(w, ic.Source)
			if err != nil {
				return nil, err
			}
			if ic.Alpha > 0 {
				return indicator.RSIWithAlpha(values, ic.Period, ic.Alpha)
			}
			return indicator.RSI(values, ic.Period)
		}),
	},
	"rsi_levels": {
		periodic: true,
		suffixes: []string{"", "signal"},
		lookback: func(ic config.IndicatorConfig) int { return indicator.RSILookback(ic.Period) },
		compute: func(ic config.IndicatorConfig, w types.KLineWindow) ([][]float64, error) {
			values, err := Source(w, ic.Source)
			if err != nil {
				return nil, err
			}
			r, err := indicator.RSILevels(values, ic.Period, ic.Overbought, ic.Oversold)
			if err != nil {
				return nil, err
			}
			return [][]float64{r.RSI, r.Signal}, nil
		},
	},
	"rsi_divergence": {
		periodic: true,
		suffixes: []string{"", "signal"},
		lookback: func(ic config.IndicatorConfig) int {
			return indicator.RSIDivergenceLookback(ic.Period, ic.Lookback)
		},
		compute: func(ic config.IndicatorConfig, w types.KLineWindow) ([][]float64, error) {
			values, err := Source(w, ic.Source)
			if err != nil {
				return nil, err
			}
			r, err := indicator.RSIDivergence(values, ic.Period, ic.Lookback)
			if err != nil {
				return nil, err
			}
			return [][]float64{r.RSI, r.Signal}, nil
		},
	},
	"atr": {
		periodic: true,
		lookback: func(ic config.IndicatorConfig) int { return indicator.ATRLookback(ic.Period) },
		compute: single(func(ic config.IndicatorConfig, w types.KLineWindow) ([]float64, error) {
			if ic.Alpha > 0 {
				return indicator.ATRWithAlpha(w.High(), w.Low(), w.Close(), ic.Period, ic.Alpha)
			}
			return indicator.ATR(w.High(), w.Low(), w.Close(), ic.Period)
		}),
	},
	"natr": {
		periodic: true,
		lookback: func(ic config.IndicatorConfig) int { return indicator.ATRLookback(ic.Period) },
		compute:  hlcPeriod(indicator.NATR),
	},
	"natr_bands": {
		overlays: 2,
		periodic: true,
		suffixes: []string{"upper", "lower"},
		lookback: func(ic config.IndicatorConfig) int { return indicator.ATRLookback(ic.Period) },
		compute: func(ic config.IndicatorConfig, w types.KLineWindow) ([][]float64, error) {
			r, err := indicator.NATRBands(w.High(), w.Low(), w.Close(), ic.Period, ic.Multiplier)
			if err != nil {
				return nil, err
			}
			return [][]float64{r.Upper, r.Lower}, nil
		},
	},
	"trange": {
		lookback: func(config.IndicatorConfig) int { return 0 },
		compute: single(func(ic config.IndicatorConfig, w types.KLineWindow) ([]float64, error) {
			return indicator.TrueRange(w.High(), w.Low(), w.Close())
		}),
	},
	"plus_dm": {
		lookback: func(config.IndicatorConfig) int { return indicator.PlusDMLookback() },
		compute:  hl(indicator.PlusDM),
	},
	"minus_dm": {
		lookback: func(config.IndicatorConfig) int { return indicator.PlusDMLookback() },
		compute:  hl(indicator.MinusDM),
	},
	"plus_di": {
		periodic: true,
		lookback: func(ic config.IndicatorConfig) int { return indicator.DILookback(ic.Period) },
		compute:  hlcPeriod(indicator.PlusDI),
	},
	"minus_di": {
		periodic: true,
		lookback: func(ic config.IndicatorConfig) int { return indicator.DILookback(ic.Period) },
		compute:  hlcPeriod(indicator.MinusDI),
	},
	"dx": {
		periodic: true,
		lookback: func(ic config.IndicatorConfig) int { return indicator.DXLookback(ic.Period) },
		compute:  hlcPeriod(indicator.DX),
	},
	"adx": {
		periodic: true,
		lookback: func(ic config.IndicatorConfig) int { return indicator.ADXLookback(ic.Period) },
		compute:  hlcPeriod(indicator.ADX),
	},
	"adxr": {
		periodic: true,
		lookback: func(ic config.IndicatorConfig) int { return indicator.ADXRLookback(ic.Period) },
		compute:  hlcPeriod(indicator.ADXR),
	},
	"dmi": {
		periodic: true,
		suffixes: dmiSuffixes,
		lookback: func(ic config.IndicatorConfig) int { return indicator.ADXRLookback(ic.Period) },
		compute: func(ic config.IndicatorConfig, w types.KLineWindow) ([][]float64, error) {
			r, err := indicator.DMI(w.High(), w.Low(), w.Close(), ic.Period)
			if err != nil {
				return nil, err
			}
			return [][]float64{r.PlusDM, r.MinusDM, r.PlusDI, r.MinusDI, r.DX, r.ADX, r.ADXR}, nil
		},
	},
	"sar": {
		overlays: 1,
		suffixes: []string{"", "trend"},
		lookback: func(config.IndicatorConfig) int { return indicator.SARLookback() },
		compute: func(ic config.IndicatorConfig, w types.KLineWindow) ([][]float64, error) {
			sar, err := indicator.SAR(w.High(), w.Low(), ic.Acceleration, ic.MaxAcceleration)
			if err != nil {
				return nil, err
			}
			return withTrend(w, sar)
		},
	},
	"sarext": {
		overlays: 1,
		suffixes: []string{"", "trend"},
		lookback: func(config.IndicatorConfig) int { return indicator.SARLookback() },
		compute: func(ic config.IndicatorConfig, w types.KLineWindow) ([][]float64, error) {
			r, err := indicator.ParabolicSAR(w.High(), w.Low(), *ic.SAR)
			if err != nil {
				return nil, err
			}
			return withTrend(w, r.SAR)
		},
	},
	"mama": {
		overlays: 2,
		suffixes: []string{"", "fama", "period", "smooth_period"},
		lookback: func(config.IndicatorConfig) int { return indicator.MAMALookback() },
		compute: func(ic config.IndicatorConfig, w types.KLineWindow) ([][]float64, error) {
			values, err := Source(w, ic.Source)
			if err != nil {
				return nil, err
			}
			r, err := indicator.MAMA(values, ic.FastLimit, ic.SlowLimit)
			if err != nil {
				return nil, err
			}
			return [][]float64{r.MAMA, r.FAMA, r.Period, r.SmoothPeriod}, nil
		},
	},
}

func single(f func(ic config.IndicatorConfig, w types.KLineWindow) ([]float64, error)) computeFunc {
	return func(ic config.IndicatorConfig, w types.KLineWindow) ([][]float64, error) {
		out, err := f(ic, w)
		if err != nil {
			return nil, err
		}
		return [][]float64{out}, nil
	}
}

func hl(f func(high, low []float64) ([]float64, error)) computeFunc {
	return single(func(ic config.IndicatorConfig, w types.KLineWindow) ([]float64, error) {
		return f(w.High(), w.Low())
	})
}

func hlcPeriod(f func(high, low, cloze []float64, period int) ([]float64, error)) computeFunc {
	return single(func(ic config.IndicatorConfig, w types.KLineWindow) ([]float64, error) {
		return f(w.High(), w.Low(), w.Close(), ic.Period)
	})
}

func withTrend(w types.KLineWindow, sar []float64) ([][]float64, error) {
	trend, err := indicator.SARTrend(w.High(), w.Low(), sar)
	if err != nil {
		return nil, err
	}
	return [][]float64{sar, trend}, nil
}

// Types lists the registered indicator types in alphabetical order.
func Types() []string {
	var names []string
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source picks the price column a single series indicator reads.
func Source(w types.KLineWindow, source string) ([]float64, error) {
	switch strings.ToLower(source) {
	case "", "close":
		return w.Close(), nil
	case "open":
		return w.Open(), nil
	case "high":
		return w.High(), nil
	case "low":
		return w.Low(), nil
	case "volume":
		return w.Volume(), nil
	case "mid", "hl2":
		out := make([]float64, len(w))
		for i := range w {
			out[i] = w[i].Mid()
		}
		return out, nil
	}

	return nil, errors.Wrapf(ErrUnknownSource, "%q", source)
}

// Normalize fills the defaults of the indicator type into the config.
func Normalize(ic config.IndicatorConfig) (config.IndicatorConfig, error) {
	ic.Type = strings.ToLower(strings.TrimSpace(ic.Type))
	def, ok := registry[ic.Type]
	if !ok {
		return ic, errors.Wrapf(ErrUnknownIndicator, "%q", ic.Type)
	}

	if def.periodic && ic.Period == 0 {
		ic.Period = DefaultPeriod
	}

	switch ic.Type {
	case "sar":
		if ic.Acceleration == 0 {
			ic.Acceleration = DefaultAcceleration
		}
		if ic.MaxAcceleration == 0 {
			ic.MaxAcceleration = DefaultMaxAcceleration
		}

	case "sarext":
		if ic.SAR == nil {
			params := indicator.DefaultSARParams()
			params.SeedTwoBars = false
			ic.SAR = &params
		}

	case "rsi_levels":
		if ic.Overbought == 0 {
			ic.Overbought = DefaultOverbought
		}
		if ic.Oversold == 0 {
			ic.Oversold = DefaultOversold
		}

	case "rsi_divergence":
		if ic.Lookback == 0 {
			ic.Lookback = DefaultDivergenceLookback
		}

	case "natr_bands":
		if ic.Multiplier == 0 {
			ic.Multiplier = DefaultBandMultiplier
		}

	case "mama":
		if ic.FastLimit == 0 {
			ic.FastLimit = DefaultFastLimit
		}
		if ic.SlowLimit == 0 {
			ic.SlowLimit = DefaultSlowLimit
		}
	}

	if ic.Name == "" {
		ic.Name = defaultName(ic, def)
	}

	return ic, nil
}

func defaultName(ic config.IndicatorConfig, def definition) string {
	name := ic.Type
	if def.periodic {
		name = fmt.Sprintf("%s_%d", name, ic.Period)
	}

	if src := strings.ToLower(ic.Source); src != "" && src != "close" {
		name += "_" + src
	}
	return name
}

// ColumnNames returns the output column names of a normalized indicator config.
func ColumnNames(ic config.IndicatorConfig) []string {
	def := registry[ic.Type]
	if len(def.suffixes) == 0 {
		return []string{ic.Name}
	}

	names := make([]string, len(def.suffixes))
	for i, suffix := range def.suffixes {
		if suffix == "" {
			names[i] = ic.Name
		} else {
			names[i] = ic.Name + "_" + suffix
		}
	}
	return names
}
