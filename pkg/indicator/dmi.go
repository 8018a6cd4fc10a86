package indicator

import (
	"math"

	"github.com/c9s/ta/pkg/datatype/floats"
)

// Refer: https://www.investopedia.com/terms/d/dmi.asp
// Refer: https://github.com/twopirllc/pandas-ta/blob/main/pandas_ta/trend/adx.py
//
// Directional Movement Index
//
// The Directional Movement Index (DMI) is used to identify the direction and strength of a trend.
// It was developed by J. Welles Wilder and is based on the +DI and -DI lines, which measure the
// strength of upward and downward price movements. +DM/-DM and the true range are smoothed with
// Wilder's recursion starting from the second bar, so the DI lines and DX are defined from index
// period. ADX smooths DX again (defined from 2*period-1) and ADXR averages ADX with its value
// period bars ago (defined from 3*period-1).

// DMIResult holds every series of the directional movement pipeline.
type DMIResult struct {
	PlusDM  floats.Slice
	MinusDM floats.Slice
	PlusDI  floats.Slice
	MinusDI floats.Slice
	DX      floats.Slice
	ADX     floats.Slice
	ADXR    floats.Slice
}

// DMI computes the whole directional movement pipeline in one pass. Series that
// need more history than available are left as sentinels.
func DMI(high, low, cloze []float64, period int) (*DMIResult, error) {
	if err := checkHLC(high, low, cloze); err != nil {
		return nil, err
	}
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	if err := checkLength(period+1, len(high)); err != nil {
		return nil, err
	}

	return dmi(high, low, cloze, period), nil
}

func dmi(high, low, cloze []float64, period int) *DMIResult {
	length := len(high)
	alpha := wilderAlpha(period)

	plusDM, minusDM := directionalMovement(high, low)

	// +DM/-DM start at index 1, align the true range with them
	tr := smoothFrom(trueRange(high, low, cloze), 1, period, alpha)
	sPlusDM := smoothFrom(plusDM, 1, period, alpha)
	sMinusDM := smoothFrom(minusDM, 1, period, alpha)

	r := &DMIResult{
		PlusDM:  plusDM,
		MinusDM: minusDM,
		PlusDI:  floats.NaNs(length),
		MinusDI: floats.NaNs(length),
		DX:      floats.NaNs(length),
	}

	for i := period; i < length; i++ {
		var pdi, mdi float64
		if !almostZero(tr[i]) {
			pdi = 100 * sPlusDM[i] / tr[i]
			mdi = 100 * sMinusDM[i] / tr[i]
		}

		r.PlusDI[i] = pdi
		r.MinusDI[i] = mdi

		dx := 0.0
		if sumDI := pdi + mdi; !almostZero(sumDI) {
			dx = 100 * math.Abs(pdi-mdi) / sumDI
		}
		r.DX[i] = dx
	}

	r.ADX = smoothFrom(r.DX, period, period, alpha)

	r.ADXR = floats.NaNs(length)
	for i := period; i < length; i++ {
		// sentinels propagate through the sum
		r.ADXR[i] = (r.ADX[i] + r.ADX[i-period]) / 2
	}

	return r
}

func directionalMovement(high, low []float64) (plusDM, minusDM floats.Slice) {
	plusDM = floats.NaNs(len(high))
	minusDM = floats.NaNs(len(high))
	for i := 1; i < len(high); i++ {
		up := high[i] - high[i-1]
		dn := low[i-1] - low[i]

		pos := 0.0
		if up > dn && up > 0. {
			pos = up
		}

		neg := 0.0
		if dn > up && dn > 0. {
			neg = dn
		}

		plusDM[i] = pos
		minusDM[i] = neg
	}
	return plusDM, minusDM
}

// PlusDM is the positive directional movement, index 0 is the sentinel.
func PlusDM(high, low []float64) ([]float64, error) {
	if err := checkHL(high, low); err != nil {
		return nil, err
	}

	plusDM, _ := directionalMovement(high, low)
	return plusDM, nil
}

// MinusDM is the negative directional movement, index 0 is the sentinel.
func MinusDM(high, low []float64) ([]float64, error) {
	if err := checkHL(high, low); err != nil {
		return nil, err
	}

	_, minusDM := directionalMovement(high, low)
	return minusDM, nil
}

func PlusDI(high, low, cloze []float64, period int) ([]float64, error) {
	r, err := DMI(high, low, cloze, period)
	if err != nil {
		return nil, err
	}
	return r.PlusDI, nil
}

func MinusDI(high, low, cloze []float64, period int) ([]float64, error) {
	r, err := DMI(high, low, cloze, period)
	if err != nil {
		return nil, err
	}
	return r.MinusDI, nil
}

func DX(high, low, cloze []float64, period int) ([]float64, error) {
	r, err := DMI(high, low, cloze, period)
	if err != nil {
		return nil, err
	}
	return r.DX, nil
}

// ADX is the Wilder-smoothed DX.
func ADX(high, low, cloze []float64, period int) ([]float64, error) {
	r, err := dmiWithMinimum(high, low, cloze, period, 2*period)
	if err != nil {
		return nil, err
	}
	return r.ADX, nil
}

// ADXR is the average of ADX and ADX period bars ago.
func ADXR(high, low, cloze []float64, period int) ([]float64, error) {
	r, err := dmiWithMinimum(high, low, cloze, period, 3*period)
	if err != nil {
		return nil, err
	}
	return r.ADXR, nil
}

func dmiWithMinimum(high, low, cloze []float64, period, minimum int) (*DMIResult, error) {
	if err := checkHLC(high, low, cloze); err != nil {
		return nil, err
	}
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	if err := checkLength(minimum, len(high)); err != nil {
		return nil, err
	}

	return dmi(high, low, cloze, period), nil
}
