package functional

import "github.com/katalvlaran/linorder/numeric"

// quasiconvexOptimum is shared by the three p < 1 functionals (Harmonic,
// Geometric, SMR), none of which admit a weighted-median or weighted-mean
// shortcut for their optimum: it is only quasiconvex, not convex, so the
// minimizer is found by evaluating the functional's own mean at every
// candidate node position and keeping the best.
//
// lmin excludes terms whose length would fall at or below it from the
// scan — points coincident with (or arbitrarily close to) the candidate
// position would otherwise drive some functionals' mean to infinity.
func quasiconvexOptimum(f Functional, v []WeightedValue, lmin numeric.F) numeric.F {
	switch len(v) {
	case 0:
		return 0
	case 1:
		return v[0].Value
	case 2:
		// The functional is symmetric for two points; break the tie toward
		// the heavier one.
		if v[1].Weight > v[0].Weight {
			return v[1].Value
		}
		return v[0].Value
	}

	x := v[0].Value
	min := numeric.FMax
	for _, p := range v {
		var s WeightedSum
		for _, q := range v {
			l := p.Value - q.Value
			if l < 0 {
				l = -l
			}
			if l > lmin {
				s = f.Accumulate(s, f.Term(WeightedValue{Value: l, Weight: q.Weight}))
			}
		}
		if m := f.Mean(s); m < min {
			min = m
			x = p.Value
		}
	}
	return x
}
