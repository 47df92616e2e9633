package core

import "github.com/katalvlaran/linorder/functional"

// costOf folds the weighted contribution of the given arcs into a
// WeightedSum, as if their common source sat at pos rather than its
// current position. Used by the window optimizer's external-cost cache.
func (g *Graph) costOf(arcs []ArcIndex, pos float64) functional.WeightedSum {
	var s functional.WeightedSum
	for _, a := range arcs {
		j := g.adj[a]
		l := g.node[j].pos - pos
		if l < 0 {
			l = -l
		}
		s = g.fn.Accumulate(s, g.fn.Term(functional.WeightedValue{Value: l, Weight: g.weight[a]}))
	}
	return s
}

// Cost returns the functional's mean cost over the current layout. Empty
// graphs (no arcs) cost 0.
func (g *Graph) Cost() float64 {
	if g.Edges() == 0 {
		return 0
	}
	var s functional.WeightedSum
	i := NodeIndex(1)
	for a := ArcIndex(1); a < ArcIndex(len(g.adj)); a++ {
		for g.nodeEnd(i) <= a {
			i++
		}
		j := g.adj[a]
		l := g.length(i, j)
		s = g.fn.Accumulate(s, g.fn.Term(functional.WeightedValue{Value: l, Weight: g.weight[a]}))
	}
	return g.fn.Mean(s)
}
