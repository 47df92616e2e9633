package functional

import (
	"math"

	"github.com/katalvlaran/linorder/numeric"
)

// Arithmetic is the ordinary weighted mean (p = 1).
type Arithmetic struct{}

func (Arithmetic) Term(t WeightedValue) WeightedSum {
	return WeightedSum{Value: t.Weight * t.Value, Weight: t.Weight}
}

func (Arithmetic) Accumulate(s WeightedSum, t WeightedSum) WeightedSum {
	s.Value += t.Value
	s.Weight += t.Weight
	return s
}

func (Arithmetic) Mean(s WeightedSum) numeric.F {
	if s.Weight > 0 {
		return s.Value / s.Weight
	}
	return 0
}

func (Arithmetic) Bond(w, l numeric.F, k int) numeric.F {
	kf := numeric.F(k)
	return w * math.Pow(l, -kf/(kf+1))
}

func (Arithmetic) Less(s, t WeightedSum) bool {
	return s.Value < t.Value
}

// Optimum returns the weighted median of v. Because the median may not be
// unique, the largest interval [x, y] of candidate positions achieving the
// minimum imbalance is tracked and its midpoint returned, rather than an
// arbitrary tied candidate.
func (Arithmetic) Optimum(v []WeightedValue) numeric.F {
	var x, y numeric.F
	min := numeric.FMax
	for _, p := range v {
		var f numeric.F
		for _, q := range v {
			switch {
			case q.Value < p.Value:
				f += q.Weight
			case q.Value > p.Value:
				f -= q.Weight
			}
		}
		if f < 0 {
			f = -f
		}
		switch {
		case f < min:
			min = f
			x, y = p.Value, p.Value
		case f == min:
			x = math.Min(x, p.Value)
			y = math.Max(y, p.Value)
		}
	}
	return (x + y) / 2
}
