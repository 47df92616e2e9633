package functional

import "github.com/katalvlaran/linorder/numeric"

// Maximum is the p = ∞ functional: the cost of a node is the length of its
// single longest incident edge, ignoring all others.
type Maximum struct{}

func (Maximum) Term(t WeightedValue) WeightedSum {
	return WeightedSum{Value: t.Value, Weight: t.Weight}
}

// Accumulate keeps the largest Value seen; unlike every other functional
// in this package, weight plays no role in the reduction itself.
func (Maximum) Accumulate(s WeightedSum, t WeightedSum) WeightedSum {
	if t.Value > s.Value {
		s.Value = t.Value
	}
	return s
}

func (Maximum) Mean(s WeightedSum) numeric.F {
	return s.Value
}

// Bond is constant: Maximum applies no iterative discount and no weight
// scaling.
func (Maximum) Bond(_, _ numeric.F, _ int) numeric.F {
	return 1
}

func (Maximum) Less(s, t WeightedSum) bool {
	return s.Value < t.Value
}

// Optimum is the midrange: the midpoint between the smallest and largest
// value in v.
func (Maximum) Optimum(v []WeightedValue) numeric.F {
	min, max := v[0].Value, v[0].Value
	for _, p := range v[1:] {
		switch {
		case p.Value < min:
			min = p.Value
		case p.Value > max:
			max = p.Value
		}
	}
	return (min + max) / 2
}
