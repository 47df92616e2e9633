package functional

import (
	"math"

	"github.com/katalvlaran/linorder/numeric"
)

// RMS is the root-mean-square functional (p = 2): it penalizes long edges
// disproportionately, the opposite bias from Harmonic.
type RMS struct{}

func (RMS) Term(t WeightedValue) WeightedSum {
	return WeightedSum{Value: t.Weight * t.Value * t.Value, Weight: t.Weight}
}

func (RMS) Accumulate(s WeightedSum, t WeightedSum) WeightedSum {
	s.Value += t.Value
	s.Weight += t.Weight
	return s
}

func (RMS) Mean(s WeightedSum) numeric.F {
	if s.Weight > 0 {
		return math.Sqrt(s.Value / s.Weight)
	}
	return 0
}

// Bond ignores length and iteration number: RMS applies no iterative
// discount.
func (RMS) Bond(w, _ numeric.F, _ int) numeric.F {
	return w
}

func (RMS) Less(s, t WeightedSum) bool {
	return s.Value < t.Value
}

// Optimum is the ordinary weighted mean of v.
func (RMS) Optimum(v []WeightedValue) numeric.F {
	var s WeightedSum
	for _, p := range v {
		s.Value += p.Weight * p.Value
		s.Weight += p.Weight
	}
	return s.Value / s.Weight
}
