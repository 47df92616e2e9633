package core

import "github.com/katalvlaran/linorder/pqueue"

// refine initializes this (fine) graph's layout from the already-placed
// coarse graph: persistent nodes inherit their aggregate's position, and
// every other node is placed in decreasing order of connectivity to the
// already-placed set, each at its locally optimal position.
func (g *Graph) refine(coarse *Graph) {
	g.progress.BeginPhase(g, "refine")

	connectivity := pqueue.New[NodeIndex](pqueue.MaxFirst)
	for i := NodeIndex(1); i <= NodeIndex(g.Nodes()); i++ {
		if g.node[i].persistent() {
			p := g.node[i].parent
			g.node[i].pos = coarse.node[p].pos
			continue
		}
		g.node[i].pos = -1
		var w float64
		for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
			j := g.adj[a]
			if g.node[j].persistent() {
				w += g.weight[a]
			}
		}
		connectivity.Insert(i, w)
	}

	for !connectivity.Empty() {
		i, _, _ := connectivity.Extract()
		g.node[i].pos = g.optimal(i)
		for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
			j := g.adj[a]
			if w, ok := connectivity.Find(j); ok {
				connectivity.Update(j, w+g.weight[a])
			}
		}
	}

	g.Place(true)
	g.progress.EndPhase(g, true)
}
