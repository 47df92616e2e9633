package core

import (
	"github.com/katalvlaran/linorder/functional"
	"github.com/katalvlaran/linorder/numeric"
)

// Hierarchy builds the full chain of coarsening levels starting from a
// copy of g's current layout, without mutating g itself: levels[0] is a
// snapshot of g, levels[1] is its coarsening, levels[2] that graph's
// coarsening, and so on down to a single node or an edgeless graph. It is
// a debugging aid with no role in Order itself — viz uses it to render
// the coarsening tree.
//
// If g has not yet been given a functional (via Order), Hierarchy uses
// Arithmetic{} so that bonds, and therefore coarsening seeds, are still
// meaningful.
func (g *Graph) Hierarchy() []*Graph {
	fn := g.fn
	if fn == nil {
		fn = functional.Arithmetic{}
	}

	cur := g.clone()
	cur.fn = fn
	cur.progress = NoopProgress{}
	cur.Place(false)
	cur.reweight(1)

	levels := []*Graph{cur}
	for cur.Nodes() > 1 && cur.Edges() > 0 {
		next := cur.coarsen()
		next.progress = NoopProgress{}
		next.Place(false)
		next.reweight(1)
		levels = append(levels, next)
		cur = next
	}
	return levels
}

// clone makes an independent copy of g's adjacency, weights, and layout,
// so repeated coarsening (Hierarchy, or a caller re-running a V-cycle)
// never disturbs the graph it was called on.
func (g *Graph) clone() *Graph {
	return &Graph{
		node:     append([]node(nil), g.node...),
		perm:     append([]NodeIndex(nil), g.perm...),
		adj:      append([]NodeIndex(nil), g.adj...),
		weight:   append([]numeric.F(nil), g.weight...),
		bond:     append([]numeric.F(nil), g.bond...),
		lastNode: g.lastNode,
		level:    g.level,
		fn:       g.fn,
		rng:      g.rng,
	}
}
