package floats

// Ring is a fixed-depth circular buffer of the most recent values.
// Index(0) is the latest pushed value, Index(depth-1) the oldest one.
// Slots that were never written read as zero.
type Ring struct {
	buf  []float64
	head int
}

func NewRing(depth int) *Ring {
	if depth <= 0 {
		panic("ring depth must be greater than 0")
	}

	return &Ring{
		buf:  make([]float64, depth),
		head: depth - 1,
	}
}

func (r *Ring) Push(v float64) {
	r.head = (r.head + 1) % len(r.buf)
	r.buf[r.head] = v
}

// Index returns the value pushed lag updates ago.
func (r *Ring) Index(lag int) float64 {
	if lag < 0 || lag >= len(r.buf) {
		panic("ring lag out of range")
	}

	return r.buf[(r.head-lag+len(r.buf))%len(r.buf)]
}

func (r *Ring) Last() float64 {
	return r.buf[r.head]
}

func (r *Ring) Depth() int {
	return len(r.buf)
}
