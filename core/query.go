package core

import "github.com/katalvlaran/linorder/numeric"

// Pos returns node i's current layout position, or a negative value if it
// has not yet been placed.
func (g *Graph) Pos(i NodeIndex) numeric.F { return g.node[i].pos }

// HalfLen returns half of node i's width along the line.
func (g *Graph) HalfLen(i NodeIndex) numeric.F { return g.node[i].hlen }

// Persistent reports whether node i is a coarsening seed (has a parent in
// the next coarser level).
func (g *Graph) Persistent(i NodeIndex) bool { return g.node[i].persistent() }

// Length returns the current layout distance between nodes i and j.
func (g *Graph) Length(i, j NodeIndex) numeric.F { return g.length(i, j) }

// Parent returns node i's aggregate in the next coarser level, or
// NullNode if i has none (equivalently, !Persistent(i)).
func (g *Graph) Parent(i NodeIndex) NodeIndex { return g.node[i].parent }

// ArcBegin and ArcEnd give the half-open arc range [ArcBegin(i),
// ArcEnd(i)) of node i's outgoing arcs, for callers that want to walk
// adjacency without allocating (unlike NodeNeighbors).
func (g *Graph) ArcBegin(i NodeIndex) ArcIndex { return g.nodeBegin(i) }
func (g *Graph) ArcEnd(i NodeIndex) ArcIndex   { return g.nodeEnd(i) }
