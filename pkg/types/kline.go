package types

import (
	"fmt"
	"math"
)

type Direction int

const DirectionUp = 1
const DirectionNone = 0
const DirectionDown = -1

// KLine uses binance's kline as the standard structure
type KLine struct {
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`

	StartTime Time `json:"startTime" yaml:"startTime"`
	EndTime   Time `json:"endTime" yaml:"endTime"`

	Interval Interval `json:"interval,omitempty" yaml:"interval,omitempty"`

	Open   float64 `json:"open" yaml:"open"`
	Close  float64 `json:"close" yaml:"close"`
	High   float64 `json:"high" yaml:"high"`
	Low    float64 `json:"low" yaml:"low"`
	Volume float64 `json:"volume" yaml:"volume"`
}

func (k *KLine) GetInterval() Interval {
	return k.Interval
}

func (k *KLine) Mid() float64 {
	return (k.High + k.Low) / 2
}

func (k *KLine) Direction() Direction {
	o := k.Open
	c := k.Close

	if c > o {
		return DirectionUp
	} else if c < o {
		return DirectionDown
	}
	return DirectionNone
}

// GetChange returns Close price - Open price.
func (k *KLine) GetChange() float64 {
	return k.Close - k.Open
}

// GetMaxChange returns High price - Low price
func (k *KLine) GetMaxChange() float64 {
	return k.High - k.Low
}

func (k *KLine) String() string {
	return fmt.Sprintf("%s %s %s Open: %.8f Close: %.8f High: %.8f Low: %.8f Volume: %.8f Change: %.4f Max Change: %.4f",
		k.StartTime.Time().Format("2006-01-02 15:04"),
		k.Symbol, k.Interval, k.Open, k.Close, k.High, k.Low, k.Volume, k.GetChange(), k.GetMaxChange())
}

// Validate checks a single bar: every price must be finite and the bar must be
// consistent, low <= open, close <= high.
func (k *KLine) Validate() error {
	values := map[string]float64{
		"open":   k.Open,
		"high":   k.High,
		"low":    k.Low,
		"close":  k.Close,
		"volume": k.Volume,
	}
	for _, name := range []string{"open", "high", "low", "close", "volume"} {
		v := values[name]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is not finite: %v", name, v)
		}
	}

	if k.Low > k.High {
		return fmt.Errorf("low %f is greater than high %f", k.Low, k.High)
	}
	if k.Open < k.Low || k.Open > k.High {
		return fmt.Errorf("open %f is outside of the range [%f, %f]", k.Open, k.Low, k.High)
	}
	if k.Close < k.Low || k.Close > k.High {
		return fmt.Errorf("close %f is outside of the range [%f, %f]", k.Close, k.Low, k.High)
	}
	return nil
}

type KLineWindow []KLine

func (k KLineWindow) Len() int {
	return len(k)
}

func (k KLineWindow) First() KLine {
	return k[0]
}

func (k KLineWindow) Last() KLine {
	return k[len(k)-1]
}

func (k KLineWindow) GetInterval() Interval {
	return k.First().Interval
}

func (k KLineWindow) column(get func(k *KLine) float64) []float64 {
	values := make([]float64, len(k))
	for i := range k {
		values[i] = get(&k[i])
	}
	return values
}

func (k KLineWindow) Open() []float64 {
	return k.column(func(k *KLine) float64 { return k.Open })
}

func (k KLineWindow) High() []float64 {
	return k.column(func(k *KLine) float64 { return k.High })
}

func (k KLineWindow) Low() []float64 {
	return k.column(func(k *KLine) float64 { return k.Low })
}

func (k KLineWindow) Close() []float64 {
	return k.column(func(k *KLine) float64 { return k.Close })
}

func (k KLineWindow) Volume() []float64 {
	return k.column(func(k *KLine) float64 { return k.Volume })
}

// Tail returns the last size klines, or the whole window when it is shorter.
func (k KLineWindow) Tail(size int) KLineWindow {
	length := len(k)
	if length <= size {
		win := make(KLineWindow, length)
		copy(win, k)
		return win
	}

	win := make(KLineWindow, size)
	copy(win, k[length-size:])
	return win
}

// Truncate removes the old klines from the window
func (k *KLineWindow) Truncate(size int) {
	if len(*k) <= size {
		return
	}

	end := len(*k)
	start := end - size
	if start < 0 {
		start = 0
	}
	kn := (*k)[start:]
	*k = kn
}

func (k *KLineWindow) Add(line KLine) {
	*k = append(*k, line)
}
