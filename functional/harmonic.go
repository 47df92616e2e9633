package functional

import (
	"math"

	"github.com/katalvlaran/linorder/numeric"
)

// Harmonic is the p = -1 mean: it weighs short edges far more heavily than
// long ones, aggressively rewarding local clustering at the cost of
// tolerating occasional long edges.
type Harmonic struct{}

func (Harmonic) Term(t WeightedValue) WeightedSum {
	return WeightedSum{Value: t.Weight / t.Value, Weight: t.Weight}
}

func (Harmonic) Accumulate(s WeightedSum, t WeightedSum) WeightedSum {
	s.Value += t.Value
	s.Weight += t.Weight
	return s
}

func (Harmonic) Mean(s WeightedSum) numeric.F {
	if s.Weight > 0 {
		return s.Weight / s.Value
	}
	return 0
}

func (Harmonic) Bond(w, l numeric.F, k int) numeric.F {
	kf := numeric.F(k)
	return w * math.Pow(l, -3*kf/(kf+1))
}

// Less is only a loose bound when s.Weight < t.Weight: the harmonic mean
// decreases as weight accumulates for a fixed value/weight ratio, so a
// plain pointwise value comparison would misorder sums of unequal weight.
func (Harmonic) Less(s, t WeightedSum) bool {
	return s.Value-s.Weight > t.Value-t.Weight
}

func (h Harmonic) Optimum(v []WeightedValue) numeric.F {
	return quasiconvexOptimum(h, v, 0.5)
}
