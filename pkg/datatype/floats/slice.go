package floats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Max() float64 {
	m := -math.MaxFloat64
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.MaxFloat64
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

func (s Slice) Sum() float64 {
	return floats.Sum(s)
}

func (s Slice) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s))
}

func (s Slice) Add(b Slice) (c Slice) {
	for i := 0; i < len(s) && i < len(b); i++ {
		c = append(c, s[i]+b[i])
	}
	return c
}

func (s Slice) Sub(b Slice) (c Slice) {
	for i := 0; i < len(s) && i < len(b); i++ {
		c = append(c, s[i]-b[i])
	}
	return c
}

// Diff returns the first differences, the first element is always 0
func (s Slice) Diff() Slice {
	values := make(Slice, len(s))
	for i := 1; i < len(s); i++ {
		values[i] = s[i] - s[i-1]
	}
	return values
}

func (s Slice) PositiveValuesOrZero() Slice {
	values := make(Slice, len(s))
	for i, v := range s {
		values[i] = math.Max(v, 0)
	}
	return values
}

func (s Slice) NegativeValuesOrZero() Slice {
	values := make(Slice, len(s))
	for i, v := range s {
		values[i] = math.Min(v, 0)
	}
	return values
}

func (s Slice) Abs() Slice {
	values := make(Slice, len(s))
	for i, v := range s {
		values[i] = math.Abs(v)
	}
	return values
}

func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

// Truncate keeps the last size elements
func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}

	return s[len(s)-size:]
}

func (s Slice) Length() int {
	return len(s)
}

// Last returns the i-th value counted from the end, 0 when out of range
func (s Slice) Last(i int) float64 {
	length := len(s)
	if i < 0 || length-1-i < 0 {
		return 0.0
	}
	return s[length-1-i]
}

func (s Slice) Index(i int) float64 {
	return s.Last(i)
}
