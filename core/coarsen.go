package core

import (
	"github.com/katalvlaran/linorder/numeric"
	"github.com/katalvlaran/linorder/pqueue"
)

// coarsen builds a new Graph with roughly half as many nodes, mirroring
// the fine layout closely enough that refine() can recover a good fine
// layout from it.
func (g *Graph) coarsen() *Graph {
	g.progress.BeginPhase(g, "coarse")

	coarse := &Graph{
		node:     make([]node, 1, g.Nodes()/2+1),
		adj:      []NodeIndex{NullNode},
		weight:   []numeric.F{0},
		bond:     []numeric.F{0},
		level:    g.level - 1,
		fn:       g.fn,
		progress: g.progress,
	}
	coarse.node[0] = node{pos: -1, arcEnd: 1}

	// Step 1: importance = sum of outgoing bonds; reset parent pointers.
	importance := pqueue.New[NodeIndex](pqueue.MaxFirst)
	for i := NodeIndex(1); i <= NodeIndex(g.Nodes()); i++ {
		g.node[i].parent = NullNode
		var w numeric.F
		for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
			w += g.bond[a]
		}
		importance.Insert(i, w)
	}

	// Step 2: repeatedly peel off the most important unmarked node as a
	// coarse seed, discounting its neighbors' importance so seeds don't
	// cluster adjacently.
	child := []NodeIndex{NullNode}
	for !importance.Empty() {
		i, w, _ := importance.Extract()
		if w < 0 {
			break
		}
		child = append(child, i)
		g.node[i].parent = coarse.InsertNode(2 * g.node[i].hlen)

		for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
			j := g.adj[a]
			if wj, ok := importance.Find(j); ok {
				importance.Update(j, wj-2*g.bond[a])
			}
		}
	}

	// Step 3: assign fractional parts of non-persistent nodes to their
	// persistent neighbors' aggregates.
	part := append([]numeric.F(nil), g.bond...)
	for i := NodeIndex(1); i <= NodeIndex(g.Nodes()); i++ {
		if g.node[i].persistent() {
			continue
		}
		var w, max numeric.F
		for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
			j := g.adj[a]
			if g.node[j].persistent() {
				w += part[a]
				if part[a] > max {
					max = part[a]
				}
			} else {
				part[a] = -1
			}
		}
		max /= numeric.PartFrac

		for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
			if part[a] > 0 && part[a] < max {
				w -= part[a]
				part[a] = -1
			}
		}

		for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
			if part[a] > 0 {
				part[a] /= w
				p := g.node[g.adj[a]].parent
				coarse.node[p].hlen += part[a] * g.node[i].hlen
			}
		}
	}

	// Step 4: transfer arcs from every persistent fine node's neighborhood
	// into the coarse graph.
	for p := NodeIndex(1); p <= NodeIndex(coarse.Nodes()); p++ {
		i := child[p]
		for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
			g.transfer(coarse, part, p, a, 1)
			j := g.adj[a]
			if g.node[j].persistent() {
				continue
			}
			b, ok := g.ArcIndexOf(j, i)
			if !ok || part[b] <= 0 {
				continue
			}
			for c := g.nodeBegin(j); c < g.nodeEnd(j); c++ {
				k := g.adj[c]
				if k != i {
					g.transfer(coarse, part, p, c, part[b])
				}
			}
		}
	}

	// Release bond: it is recomputed fresh at the start of the next
	// V-cycle from weight and the current layout.
	g.bond = make([]numeric.F, len(g.weight))

	g.progress.EndPhase(g, false)
	return coarse
}

// update adds the contribution (w, b) to arc (i, j) in this graph,
// creating it if absent.
func (g *Graph) update(i, j NodeIndex, w, b numeric.F) {
	if a, ok := g.ArcIndexOf(i, j); ok {
		g.weight[a] += w
		g.bond[a] += b
	} else {
		g.InsertArc(i, j, w, b)
	}
}

// transfer folds the contribution of fine arc a (scaled by f) into the
// coarse graph, crediting it to coarse node p and the aggregate(s) that
// own a's target.
func (g *Graph) transfer(coarse *Graph, part []numeric.F, p NodeIndex, a ArcIndex, f numeric.F) {
	w := f * g.weight[a]
	m := f * g.bond[a]
	j := g.adj[a]
	q := g.node[j].parent
	if q != NullNode {
		coarse.update(p, q, w, m)
		return
	}
	for b := g.nodeBegin(j); b < g.nodeEnd(j); b++ {
		if part[b] <= 0 {
			continue
		}
		q := g.node[g.adj[b]].parent
		if q != p {
			coarse.update(p, q, w*part[b], m*part[b])
		}
	}
}
