package floats

import "math"

// NaNs allocates a series of length n filled with the warm-up sentinel.
func NaNs(n int) Slice {
	s := make(Slice, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

func IsSentinel(v float64) bool {
	return math.IsNaN(v)
}

// LeadingSentinels counts the warm-up prefix of a series.
func LeadingSentinels(s []float64) int {
	for i, v := range s {
		if !math.IsNaN(v) {
			return i
		}
	}
	return len(s)
}

// Defined returns the values after the warm-up prefix, sentinels in the tail are kept.
func Defined(s []float64) Slice {
	return Slice(s[LeadingSentinels(s):])
}

// DropSentinels returns a copy of the series without any sentinel.
func DropSentinels(s []float64) Slice {
	out := make(Slice, 0, len(s))
	for _, v := range s {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
