package indicator

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/datatype/floats"
)

// Parabolic SAR(Stop and Reverse) / SAR
// Refer: https://www.investopedia.com/terms/p/parabolicindicator.asp
// The parabolic SAR indicator, developed by J. Wells Wilder, is used by traders to determine
// trend direction and potential reversals in price. The indicator uses a trailing stop and
// reverse method called "SAR," or stop and reverse, to identify suitable exit and entry points.
// Traders also refer to the indicator as to the parabolic stop and reverse, parabolic SAR, or PSAR.
//
// The parabolic SAR indicator appears on a chart as a series of dots, either above or below an asset's
// price, depending on the direction the price is moving. A dot is placed below the price when it is
// trending upward, and above the price when it is trending downward.

// Direction is the side the stop trails.
type Direction int

const (
	Long Direction = iota + 1
	Short
)

func (d Direction) String() string {
	switch d {
	case Long:
		return "long"
	case Short:
		return "short"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Float64 maps Long to 1 and Short to -1
func (d Direction) Float64() float64 {
	switch d {
	case Long:
		return 1.0
	case Short:
		return -1.0
	}
	return 0.0
}

// AccelerationParams controls how fast the stop converges on the extreme point
// for one side of the trade.
type AccelerationParams struct {
	Init float64 `json:"init" yaml:"init"`
	Step float64 `json:"step" yaml:"step"`
	Max  float64 `json:"max" yaml:"max"`
}

func (p AccelerationParams) validate(side Direction) error {
	if p.Init <= 0 || p.Step <= 0 || p.Max <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "%s acceleration factors must be greater than 0, got %+v", side, p)
	}
	if p.Init > p.Max {
		return errors.Wrapf(ErrInvalidParameter, "%s initial acceleration factor %f is greater than max %f", side, p.Init, p.Max)
	}
	return nil
}

// SARParams configures the stop and reverse automaton.
//
// StartValue 0 picks the initial side from the first two bars and starts
// stepping at the third bar when SeedTwoBars is set, or at the second bar
// otherwise. Any other StartValue is used as the first stop as given, starting
// Long when it is below the midpoint of the first bar and Short otherwise.
type SARParams struct {
	StartValue      float64            `json:"startValue" yaml:"startValue"`
	OffsetOnReverse float64            `json:"offsetOnReverse" yaml:"offsetOnReverse"`
	Long            AccelerationParams `json:"long" yaml:"long"`
	Short           AccelerationParams `json:"short" yaml:"short"`
	SeedTwoBars     bool               `json:"seedTwoBars" yaml:"seedTwoBars"`
}

// DefaultSARParams is the classic Wilder setup, 0.02 step capped at 0.20.
func DefaultSARParams() SARParams {
	return SARParams{
		Long:        AccelerationParams{Init: 0.02, Step: 0.02, Max: 0.20},
		Short:       AccelerationParams{Init: 0.02, Step: 0.02, Max: 0.20},
		SeedTwoBars: true,
	}
}

func (p SARParams) side(d Direction) AccelerationParams {
	switch d {
	case Long:
		return p.Long
	case Short:
		return p.Short
	}
	panic(fmt.Sprintf("unexpected sar direction %d", int(d)))
}

func (p SARParams) Validate() error {
	if err := p.Long.validate(Long); err != nil {
		return err
	}
	return p.Short.validate(Short)
}

// SARResult is the full trajectory of the automaton, one entry per bar.
type SARResult struct {
	SAR                floats.Slice
	Direction          []Direction
	AccelerationFactor floats.Slice
	ExtremePoint       floats.Slice
}

// trendState is the automaton state threaded through the scan.
type trendState struct {
	direction Direction
	sar       float64
	ep        float64
	af        float64
}

func seedFromBars(high, low []float64, params SARParams) trendState {
	if high[1] > high[0] {
		return trendState{direction: Long, sar: low[0], ep: high[1], af: params.Long.Init}
	}
	return trendState{direction: Short, sar: high[0], ep: low[1], af: params.Short.Init}
}

// seedFromValue starts Long when the stop sits below the midpoint of the first bar.
func seedFromValue(high, low []float64, params SARParams) trendState {
	if params.StartValue < (high[0]+low[0])/2 {
		return trendState{direction: Long, sar: params.StartValue, ep: high[0], af: params.Long.Init}
	}
	return trendState{direction: Short, sar: params.StartValue, ep: low[0], af: params.Short.Init}
}

// step advances the automaton over bar i.
func (s *trendState) step(high, low []float64, i int, params SARParams) {
	sar := s.sar + s.af*(s.ep-s.sar)

	switch s.direction {
	case Long:
		sar = math.Min(sar, math.Min(low[i], low[i-1]))
		if low[i] <= sar {
			s.direction = Short
			s.sar = s.ep + params.OffsetOnReverse
			s.ep = low[i]
			s.af = params.Short.Init
			return
		}

		s.sar = sar
		if high[i] > s.ep {
			s.ep = high[i]
			s.af = math.Min(s.af+params.Long.Step, params.Long.Max)
		}

	case Short:
		sar = math.Max(sar, math.Max(high[i], high[i-1]))
		if high[i] >= sar {
			s.direction = Long
			s.sar = s.ep - params.OffsetOnReverse
			s.ep = high[i]
			s.af = params.Long.Init
			return
		}

		s.sar = sar
		if low[i] < s.ep {
			s.ep = low[i]
			s.af = math.Min(s.af+params.Short.Step, params.Short.Max)
		}

	default:
		panic(fmt.Sprintf("unexpected sar direction %d", int(s.direction)))
	}
}

// ParabolicSAR runs the stop and reverse automaton and returns every state it went through.
func ParabolicSAR(high, low []float64, params SARParams) (*SARResult, error) {
	if err := checkHL(high, low); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := checkLength(2, len(high)); err != nil {
		return nil, err
	}

	length := len(high)
	r := &SARResult{
		SAR:                make(floats.Slice, length),
		Direction:          make([]Direction, length),
		AccelerationFactor: make(floats.Slice, length),
		ExtremePoint:       make(floats.Slice, length),
	}

	record := func(i int, s trendState) {
		r.SAR[i] = s.sar
		r.Direction[i] = s.direction
		r.AccelerationFactor[i] = s.af
		r.ExtremePoint[i] = s.ep
	}

	var state trendState
	start := 1
	if params.StartValue == 0 {
		state = seedFromBars(high, low, params)
		if params.SeedTwoBars {
			record(0, state)
			start = 2
		}
	} else {
		state = seedFromValue(high, low, params)
	}

	record(start-1, state)
	for i := start; i < length; i++ {
		state.step(high, low, i, params)
		record(i, state)
	}

	return r, nil
}

// SAR is the parabolic stop and reverse with the same acceleration for both sides.
func SAR(high, low []float64, acceleration, maxAcceleration float64) ([]float64, error) {
	accel := AccelerationParams{Init: acceleration, Step: acceleration, Max: maxAcceleration}
	r, err := ParabolicSAR(high, low, SARParams{
		Long:        accel,
		Short:       accel,
		SeedTwoBars: true,
	})
	if err != nil {
		return nil, err
	}
	return r.SAR, nil
}

// SAREXT is the extended parabolic SAR with an explicit start value, a reversal offset
// and separate acceleration factors for each side.
func SAREXT(high, low []float64, startValue, offsetOnReverse,
	afInitLong, afLong, afMaxLong,
	afInitShort, afShort, afMaxShort float64) ([]float64, error) {
	r, err := ParabolicSAR(high, low, SARParams{
		StartValue:      startValue,
		OffsetOnReverse: offsetOnReverse,
		Long:            AccelerationParams{Init: afInitLong, Step: afLong, Max: afMaxLong},
		Short:           AccelerationParams{Init: afInitShort, Step: afShort, Max: afMaxShort},
	})
	if err != nil {
		return nil, err
	}
	return r.SAR, nil
}

// SAREXTStandard is SAREXT with the classic 0.02 step capped at 0.20 on both sides.
func SAREXTStandard(high, low []float64) ([]float64, error) {
	return SAREXT(high, low, 0, 0, 0.02, 0.02, 0.20, 0.02, 0.02, 0.20)
}

// SAREXTAsymmetric seeds from the data and uses each side's step as its initial factor.
func SAREXTAsymmetric(high, low []float64, afLong, afMaxLong, afShort, afMaxShort float64) ([]float64, error) {
	return SAREXT(high, low, 0, 0, afLong, afLong, afMaxLong, afShort, afShort, afMaxShort)
}

// SARTrend classifies each bar against the stop: 1 when the stop is below the low,
// -1 when it is above the high and 0 when it sits inside the bar.
func SARTrend(high, low, sar []float64) ([]float64, error) {
	if err := checkHL(high, low); err != nil {
		return nil, err
	}
	if len(sar) != len(high) {
		return nil, errors.Wrapf(ErrMismatchedLengths, "sar length (%d) != high length (%d)", len(sar), len(high))
	}

	out := make([]float64, len(sar))
	for i, v := range sar {
		switch {
		case floats.IsSentinel(v):
			out[i] = math.NaN()
		case v < low[i]:
			out[i] = 1.0
		case v > high[i]:
			out[i] = -1.0
		default:
			out[i] = 0.0
		}
	}
	return out, nil
}
