package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseIndicatorFlag parses the --indicator shorthand:
//
//	rsi:14          period based indicators
//	ema:9:high      with the source column
//	sar:0.02:0.2    acceleration and max acceleration
//	mama:0.5:0.05   fast and slow limits
//	sarext          defaults
func ParseIndicatorFlag(s string) (IndicatorConfig, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	ic := IndicatorConfig{Type: strings.ToLower(parts[0])}
	if ic.Type == "" {
		return ic, errors.Errorf("empty indicator in %q", s)
	}

	args := parts[1:]
	switch ic.Type {
	case "sar":
		vals, err := parseFloats(s, args, 2)
		if err != nil {
			return ic, err
		}
		if len(vals) > 0 {
			ic.Acceleration = vals[0]
		}
		if len(vals) > 1 {
			ic.MaxAcceleration = vals[1]
		}

	case "mama":
		vals, err := parseFloats(s, args, 2)
		if err != nil {
			return ic, err
		}
		if len(vals) > 0 {
			ic.FastLimit = vals[0]
		}
		if len(vals) > 1 {
			ic.SlowLimit = vals[1]
		}

	case "sarext", "plus_dm", "minus_dm", "trange":
		if len(args) > 0 {
			return ic, errors.Errorf("%s does not take arguments: %q", ic.Type, s)
		}

	default:
		if len(args) > 2 {
			return ic, errors.Errorf("too many arguments in %q", s)
		}
		if len(args) > 0 {
			period, err := strconv.Atoi(args[0])
			if err != nil {
				return ic, errors.Wrapf(err, "invalid period in %q", s)
			}
			ic.Period = period
		}
		if len(args) > 1 {
			ic.Source = args[1]
		}
	}

	return ic, nil
}

func parseFloats(s string, args []string, max int) ([]float64, error) {
	if len(args) > max {
		return nil, errors.Errorf("too many arguments in %q", s)
	}

	var vals []float64
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number in %q", s)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
