package functional

import (
	"math"

	"github.com/katalvlaran/linorder/numeric"
)

// Geometric is the p = 0 mean.
type Geometric struct{}

func (Geometric) Term(t WeightedValue) WeightedSum {
	return WeightedSum{Value: t.Weight * math.Log(t.Value), Weight: t.Weight}
}

func (Geometric) Accumulate(s WeightedSum, t WeightedSum) WeightedSum {
	s.Value += t.Value
	s.Weight += t.Weight
	return s
}

func (Geometric) Mean(s WeightedSum) numeric.F {
	if s.Weight > 0 {
		return math.Exp(s.Value / s.Weight)
	}
	return 0
}

func (Geometric) Bond(w, l numeric.F, k int) numeric.F {
	kf := numeric.F(k)
	return w * math.Pow(l, -2*kf/(kf+1))
}

func (Geometric) Less(s, t WeightedSum) bool {
	return s.Value < t.Value
}

func (g Geometric) Optimum(v []WeightedValue) numeric.F {
	return quasiconvexOptimum(g, v, 0.5)
}
