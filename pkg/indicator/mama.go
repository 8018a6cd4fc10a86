package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/datatype/floats"
)

// MESA Adaptive Moving Average
// Refer: John Ehlers, "MESA Adaptive Moving Averages", Stocks & Commodities V.19:10
//
// The Hilbert transform estimates the dominant cycle of the price and the phase rate of
// change drives the smoothing coefficient of MAMA between slowLimit and fastLimit.
// FAMA follows MAMA with half of its coefficient.

const (
	mamaLookback  = 6
	mamaMinLength = 32
	mamaDepth     = 7

	minCyclePeriod = 6.0
	maxCyclePeriod = 50.0
)

type MAMAResult struct {
	MAMA floats.Slice
	FAMA floats.Slice

	// Period is the instantaneous dominant cycle after clamping, always in [6, 50]
	Period       floats.Slice
	SmoothPeriod floats.Slice
}

// cycleState holds the lookbacks of the Hilbert transform. The ring buffers keep the
// last 7 values, which is all the 4-tap kernel at lags 0, 2, 4 and 6 needs.
type cycleState struct {
	smooth, detrender, i1, q1 *floats.Ring

	i2, q2       float64
	re, im       float64
	period       float64
	smoothPeriod float64

	mama, fama float64
}

func newCycleState(seed float64) *cycleState {
	return &cycleState{
		smooth:    floats.NewRing(mamaDepth),
		detrender: floats.NewRing(mamaDepth),
		i1:        floats.NewRing(mamaDepth),
		q1:        floats.NewRing(mamaDepth),
		mama:      seed,
		fama:      seed,
	}
}

func hilbertKernel(r *floats.Ring, gain float64) float64 {
	return (0.0962*r.Index(0) + 0.5769*r.Index(2) - 0.5769*r.Index(4) - 0.0962*r.Index(6)) * gain
}

// step folds bar i into the state and returns the clamped instantaneous period.
func (s *cycleState) step(cloze []float64, i int, fastLimit, slowLimit float64) float64 {
	s.smooth.Push((4*cloze[i] + 3*cloze[i-1] + 2*cloze[i-2] + cloze[i-3]) / 10)

	gain := 0.075*s.period + 0.54
	s.detrender.Push(hilbertKernel(s.smooth, gain))

	// in-phase is the detrended value three bars ago
	s.q1.Push(hilbertKernel(s.detrender, gain))
	s.i1.Push(s.detrender.Index(3))

	i1, q1 := s.i1.Last(), s.q1.Last()

	// advance the phase by 90 degrees
	jI := hilbertKernel(s.i1, gain)
	jQ := hilbertKernel(s.q1, gain)

	prevI2, prevQ2 := s.i2, s.q2
	s.i2 = 0.2*(i1-jQ) + 0.8*prevI2
	s.q2 = 0.2*(q1+jI) + 0.8*prevQ2

	// homodyne discriminator
	re := s.i2*prevI2 + s.q2*prevQ2
	im := s.i2*prevQ2 - s.q2*prevI2
	s.re = 0.2*re + 0.8*s.re
	s.im = 0.2*im + 0.8*s.im

	prevPeriod := s.period
	period := prevPeriod
	if s.im != 0 && s.re != 0 {
		period = 2 * math.Pi / math.Atan2(s.im, s.re)
	}

	period = math.Min(period, 1.5*prevPeriod)
	period = math.Max(period, 0.67*prevPeriod)
	period = math.Max(period, minCyclePeriod)
	period = math.Min(period, maxCyclePeriod)

	s.period = 0.2*period + 0.8*prevPeriod
	s.smoothPeriod = 0.33*s.period + 0.67*s.smoothPeriod

	phase := 0.0
	if i1 != 0 {
		phase = math.Atan2(q1, i1)
	}

	deltaPhase := math.Max(phase-prevPeriod, 1.0)

	alpha := fastLimit / deltaPhase
	alpha = math.Max(alpha, slowLimit)
	alpha = math.Min(alpha, fastLimit)

	s.mama = alpha*cloze[i] + (1-alpha)*s.mama
	s.fama = 0.5*alpha*s.mama + (1-0.5*alpha)*s.fama

	return period
}

// MAMA computes the MESA adaptive moving average and its following average.
// The first 6 bars are the warm-up sentinel.
func MAMA(cloze []float64, fastLimit, slowLimit float64) (*MAMAResult, error) {
	if err := checkNotEmpty("close", cloze); err != nil {
		return nil, err
	}
	if fastLimit <= 0 || slowLimit <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "limits must be greater than 0, got fast %f slow %f", fastLimit, slowLimit)
	}
	if fastLimit <= slowLimit {
		return nil, errors.Wrapf(ErrInvalidParameter, "fast limit %f must be greater than slow limit %f", fastLimit, slowLimit)
	}
	if fastLimit > 1 || slowLimit > 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "limits must not exceed 1, got fast %f slow %f", fastLimit, slowLimit)
	}
	if err := checkLength(mamaMinLength, len(cloze)); err != nil {
		return nil, err
	}

	length := len(cloze)
	r := &MAMAResult{
		MAMA:         floats.NaNs(length),
		FAMA:         floats.NaNs(length),
		Period:       floats.NaNs(length),
		SmoothPeriod: floats.NaNs(length),
	}

	state := newCycleState(cloze[0])
	for i := mamaLookback; i < length; i++ {
		r.Period[i] = state.step(cloze, i, fastLimit, slowLimit)
		r.MAMA[i] = state.mama
		r.FAMA[i] = state.fama
		r.SmoothPeriod[i] = state.smoothPeriod
	}

	return r, nil
}

// MAMADefault uses the common limits 0.5 and 0.05.
func MAMADefault(cloze []float64) (*MAMAResult, error) {
	return MAMA(cloze, 0.5, 0.05)
}
