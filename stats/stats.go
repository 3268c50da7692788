package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean and variance over pushed samples, kept with
// Welford's algorithm so that long matches do not lose precision.
type Statistic struct {
	n int

	mean float64
	m2   float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

// PushBool pushes 1 for true and 0 for false; the mean is then a rate.
func (s *Statistic) PushBool(b bool) {
	if b {
		s.Push(1)
		return
	}
	s.Push(0)
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// StandardError returns the standard error of the mean.
func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

func (s *Statistic) Iterations() int {
	return s.n
}

// Interval returns the two-sided confidence interval around the mean at the
// given confidence, in percent.
func (s *Statistic) Interval(confidence float64) (lo, hi float64) {
	half := ZVal(confidence) * s.StandardError()
	return s.mean - half, s.mean + half
}
