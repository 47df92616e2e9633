package core

import (
	"github.com/katalvlaran/linorder/functional"
	"github.com/katalvlaran/linorder/numeric"
)

// Graph is the multilevel ordering engine's core data structure: a set of
// nodes with parallel adjacency arrays (adj/weight/bond), a permutation
// over the nodes, and the bookkeeping (level, coarsening parent pointers)
// needed to run a V-cycle.
//
// A Graph is not safe for concurrent use; the engine is strictly
// single-threaded.
type Graph struct {
	node []node // sentinel at index 0, nodes at 1..N
	perm []NodeIndex

	adj    []NodeIndex // sentinel at index 0, arcs at 1..
	weight []numeric.F
	bond   []numeric.F

	lastNode NodeIndex // source of the most recently inserted arc

	level int // coarsening depth; 0 at the original graph
	fn    functional.Functional
	rng   numeric.RNG

	progress Progress
}

// NewGraph pre-allocates n nodes (indices 1..n), each with hlen=0.5.
func NewGraph(n int) *Graph {
	g := &Graph{
		node:   make([]node, 1, n+1),
		perm:   make([]NodeIndex, 0, n),
		adj:    []NodeIndex{NullNode},
		weight: []numeric.F{0},
		bond:   []numeric.F{0},
	}
	g.node[0] = node{pos: -1, hlen: 0, arcEnd: 1, parent: NullNode}
	for i := 0; i < n; i++ {
		g.InsertNode(1)
	}
	return g
}

// Nodes returns the number of real nodes (excluding the sentinel).
func (g *Graph) Nodes() int { return len(g.node) - 1 }

// Edges returns the number of undirected edges. Every edge is stored as
// two directed arcs, so this is half the arc count.
func (g *Graph) Edges() int { return (len(g.adj) - 1) / 2 }

// Level returns the graph's current coarsening depth.
func (g *Graph) Level() int { return g.level }

func (g *Graph) nodeBegin(i NodeIndex) ArcIndex { return g.node[i-1].arcEnd }
func (g *Graph) nodeEnd(i NodeIndex) ArcIndex   { return g.node[i].arcEnd }

// ArcTarget returns the target node j of arc a=(i,j).
func (g *Graph) ArcTarget(a ArcIndex) NodeIndex { return g.adj[a] }

// ArcWeight returns the weight of arc a.
func (g *Graph) ArcWeight(a ArcIndex) numeric.F { return g.weight[a] }

// Length returns the current layout distance between nodes i and j.
func (g *Graph) length(i, j NodeIndex) numeric.F {
	l := g.node[i].pos - g.node[j].pos
	if l < 0 {
		l = -l
	}
	return l
}

// lengthArc returns the current layout length of arc a, given its
// (already-known) source node i.
func (g *Graph) lengthArc(i NodeIndex, a ArcIndex) numeric.F {
	return g.length(i, g.adj[a])
}
