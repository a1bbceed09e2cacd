package curve

import (
	"iter"

	"gonum.org/v1/gonum/integrate"
)

// Samples is a sampled curve: Y[i] is the curve value at X[i]. X is
// non-decreasing and both slices have the same length.
type Samples struct {
	X []float64
	Y []float64
}

// Len returns the number of points.
func (s *Samples) Len() int {
	return len(s.X)
}

// Integral returns the trapezoidal integral of the curve, or 0 for fewer than
// two points.
func (s *Samples) Integral() float64 {
	if len(s.X) < 2 {
		return 0
	}

	return integrate.Trapezoidal(s.X, s.Y)
}

// Points yields every (x, y) pair in order.
func (s *Samples) Points() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i, x := range s.X {
			if !yield(x, s.Y[i]) {
				return
			}
		}
	}
}
