package functional

import (
	"math"

	"github.com/katalvlaran/linorder/numeric"
)

// SMR is the square-mean-root functional (p = 1/2).
type SMR struct{}

func (SMR) Term(t WeightedValue) WeightedSum {
	return WeightedSum{Value: t.Weight * math.Sqrt(t.Value), Weight: t.Weight}
}

func (SMR) Accumulate(s WeightedSum, t WeightedSum) WeightedSum {
	s.Value += t.Value
	s.Weight += t.Weight
	return s
}

func (SMR) Mean(s WeightedSum) numeric.F {
	if s.Weight > 0 {
		r := s.Value / s.Weight
		return r * r
	}
	return 0
}

func (SMR) Bond(w, l numeric.F, k int) numeric.F {
	kf := numeric.F(k)
	return w * math.Pow(l, -1.5*kf/(kf+1))
}

func (SMR) Less(s, t WeightedSum) bool {
	return s.Value < t.Value
}

func (f SMR) Optimum(v []WeightedValue) numeric.F {
	return quasiconvexOptimum(f, v, 0.0)
}
