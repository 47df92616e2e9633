package core

import "github.com/katalvlaran/linorder/functional"

// optimal returns the position that minimizes i's cost against its
// currently-placed neighbors, or -1 if none of i's neighbors are placed
// yet.
func (g *Graph) optimal(i NodeIndex) float64 {
	var v []functional.WeightedValue
	for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
		j := g.adj[a]
		if g.node[j].placed() {
			v = append(v, functional.WeightedValue{Value: g.node[j].pos, Weight: g.weight[a]})
		}
	}
	if len(v) == 0 {
		return -1
	}
	return g.fn.Optimum(v)
}
