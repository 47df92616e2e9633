package functional

import "github.com/katalvlaran/linorder/numeric"

// WeightedValue is a single (value, weight) term: typically an edge length
// and the weight of the edge carrying it.
type WeightedValue struct {
	Value  numeric.F
	Weight numeric.F
}

// WeightedSum accumulates a running reduction of WeightedValue terms. Its
// fields have functional-specific meaning (e.g. for Harmonic, Value holds
// an accumulated reciprocal, not a length) — only the owning Functional
// may interpret it directly; callers should treat it as opaque and pass it
// through Accumulate/Mean.
type WeightedSum struct {
	Value  numeric.F
	Weight numeric.F
}

// Functional is a p-mean cost functional: a rule for reducing a multiset
// of edge (length, weight) terms to a single scalar cost, and for placing
// a node at the position that minimizes that cost against its neighbors.
//
// Implementations are stateless and safe for concurrent use.
type Functional interface {
	// Term lifts a single WeightedValue into the accumulator representation.
	Term(t WeightedValue) WeightedSum

	// Accumulate folds t into the running sum s, returning the updated sum.
	Accumulate(s WeightedSum, t WeightedSum) WeightedSum

	// Mean collapses an accumulated sum to the scalar cost it represents.
	Mean(s WeightedSum) numeric.F

	// Bond computes the discounted contribution of an edge of weight w and
	// length l at the k'th refinement iteration (k is 1-based).
	Bond(w, l numeric.F, k int) numeric.F

	// Less reports whether sum s is potentially smaller than sum t under
	// this functional's ordering — used to short-circuit the engine's
	// candidate search without a full Mean call on every candidate.
	Less(s, t WeightedSum) bool

	// Optimum returns the position that minimizes this functional's cost
	// against the points in v; it need not coincide with any point of v.
	Optimum(v []WeightedValue) numeric.F
}

// Sum reduces a slice of terms to a single WeightedSum by folding each
// through Term and Accumulate. Most Functional implementations never need
// to call this directly — the engine uses it when assembling a node's
// local cost from its incident edges.
func Sum(f Functional, terms []WeightedValue) WeightedSum {
	var s WeightedSum
	for _, t := range terms {
		s = f.Accumulate(s, f.Term(t))
	}
	return s
}

// ByLetter dispatches on a single-letter functional code (h/g/s/a/r/m),
// returning nil for any other rune.
func ByLetter(letter rune) Functional {
	switch letter {
	case 'h':
		return Harmonic{}
	case 'g':
		return Geometric{}
	case 's':
		return SMR{}
	case 'a':
		return Arithmetic{}
	case 'r':
		return RMS{}
	case 'm':
		return Maximum{}
	default:
		return nil
	}
}
