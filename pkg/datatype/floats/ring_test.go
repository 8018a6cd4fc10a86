package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing(t *testing.T) {
	r := NewRing(3)
	assert.Equal(t, 3, r.Depth())

	// unwritten slots read as zero
	assert.Equal(t, 0.0, r.Index(0))
	assert.Equal(t, 0.0, r.Index(2))

	r.Push(1)
	r.Push(2)
	assert.Equal(t, 2.0, r.Last())
	assert.Equal(t, 1.0, r.Index(1))
	assert.Equal(t, 0.0, r.Index(2))

	r.Push(3)
	r.Push(4)
	assert.Equal(t, 4.0, r.Index(0))
	assert.Equal(t, 3.0, r.Index(1))
	assert.Equal(t, 2.0, r.Index(2))
}

func TestRing_OutOfRange(t *testing.T) {
	r := NewRing(7)
	assert.Panics(t, func() { r.Index(7) })
	assert.Panics(t, func() { r.Index(-1) })
	assert.Panics(t, func() { NewRing(0) })
}
