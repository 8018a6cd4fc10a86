package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func newTestWindow() KLineWindow {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	var win KLineWindow
	for i, c := range []float64{10, 11, 12, 11.5, 13} {
		win.Add(KLine{
			Symbol:    "BTCUSDT",
			Interval:  Interval1h,
			StartTime: Time(start.Add(time.Duration(i) * time.Hour)),
			EndTime:   Time(start.Add(time.Duration(i+1) * time.Hour)),
			Open:      c - 0.5,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    100,
		})
	}
	return win
}

func TestKLineWindow_Columns(t *testing.T) {
	win := newTestWindow()

	assert.Equal(t, 5, win.Len())
	assert.Equal(t, Interval1h, win.GetInterval())
	assert.Equal(t, []float64{10, 11, 12, 11.5, 13}, win.Close())
	assert.Equal(t, []float64{11, 12, 13, 12.5, 14}, win.High())
	assert.Equal(t, []float64{9, 10, 11, 10.5, 12}, win.Low())
	assert.Equal(t, []float64{9.5, 10.5, 11.5, 11, 12.5}, win.Open())
	assert.Equal(t, []float64{100, 100, 100, 100, 100}, win.Volume())
	assert.Equal(t, 10.0, win.First().Close)
	assert.Equal(t, 13.0, win.Last().Close)
}

func TestKLineWindow_TailTruncate(t *testing.T) {
	win := newTestWindow()

	tail := win.Tail(2)
	assert.Equal(t, []float64{11.5, 13}, tail.Close())
	assert.Len(t, win.Tail(10), 5)

	win.Truncate(3)
	assert.Equal(t, []float64{12, 11.5, 13}, win.Close())
	win.Truncate(10)
	assert.Len(t, win, 3)
}

func TestKLine(t *testing.T) {
	k := KLine{Open: 10, High: 12, Low: 9, Close: 11}
	assert.Equal(t, Direction(DirectionUp), k.Direction())
	assert.Equal(t, 1.0, k.GetChange())
	assert.Equal(t, 3.0, k.GetMaxChange())
	assert.Equal(t, 10.5, k.Mid())

	k.Close = 9.5
	assert.Equal(t, Direction(DirectionDown), k.Direction())
	k.Close = 10
	assert.Equal(t, Direction(DirectionNone), k.Direction())
}

func TestKLineWindow_Validate(t *testing.T) {
	assert.NoError(t, newTestWindow().Validate())
	assert.ErrorIs(t, KLineWindow{}.Validate(), ErrEmptyWindow)

	win := newTestWindow()
	win[1].Close = math.NaN()
	win[2].Low = 20
	win[3].Open = 100
	win[4].StartTime = win[3].StartTime

	err := win.Validate()
	assert.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "kline #1")
	assert.Contains(t, errs[0].Error(), "close is not finite")
	assert.Contains(t, errs[1].Error(), "low 20.000000 is greater than high 13.000000")
	assert.Contains(t, errs[2].Error(), "open 100.000000 is outside of the range")
	assert.Contains(t, errs[3].Error(), "kline #4 start time")
}

func TestKLineWindow_ValidateWithoutTime(t *testing.T) {
	win := KLineWindow{
		{Open: 1, High: 2, Low: 0.5, Close: 1.5},
		{Open: 1.5, High: 2, Low: 1, Close: 1},
	}
	assert.NoError(t, win.Validate())
}
