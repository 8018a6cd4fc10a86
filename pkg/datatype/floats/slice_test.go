package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSub(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	b := New(1, 2, 3, 4, 5)
	c := a.Sub(b)
	assert.Equal(t, Slice{.0, .0, .0, .0, .0}, c)
	assert.Equal(t, 5, len(c))
	assert.Equal(t, 5, c.Length())
}

func TestTruncate(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	for i := 5; i > 0; i-- {
		a = a.Truncate(i)
		assert.Equal(t, i, a.Length())
	}
}

func TestAdd(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	b := New(1, 2, 3, 4, 5)
	c := a.Add(b)
	assert.Equal(t, Slice{2.0, 4.0, 6.0, 8.0, 10.0}, c)
	assert.Equal(t, 5, len(c))
	assert.Equal(t, 5, c.Length())
}

func TestSlice_Stats(t *testing.T) {
	a := New(3, 1, 4, 1, 5)
	assert.Equal(t, 14.0, a.Sum())
	assert.InDelta(t, 2.8, a.Mean(), 1e-12)
	assert.Equal(t, 5.0, a.Max())
	assert.Equal(t, 1.0, a.Min())
	assert.Equal(t, 5.0, a.Last(0))
	assert.Equal(t, 1.0, a.Last(1))
	assert.Equal(t, 0.0, a.Last(5))
	assert.Equal(t, 0.0, Slice{}.Mean())
}

func TestSlice_Diff(t *testing.T) {
	a := New(10, 11, 9, 9, 12)
	d := a.Diff()
	assert.Equal(t, Slice{0, 1, -2, 0, 3}, d)
	assert.Equal(t, Slice{0, 1, 0, 0, 3}, d.PositiveValuesOrZero())
	assert.Equal(t, Slice{0, 2, 0, 0, 0}, d.NegativeValuesOrZero().Abs())
}

func TestSlice_Tail(t *testing.T) {
	a := New(1, 2, 3, 4, 5)
	assert.Equal(t, Slice{4, 5}, a.Tail(2))
	assert.Equal(t, Slice{1, 2, 3, 4, 5}, a.Tail(10))

	// tail is a copy
	tail := a.Tail(2)
	tail[0] = 100
	assert.Equal(t, 4.0, a[3])
}
