package core

import "github.com/katalvlaran/linorder/numeric"

// InsertNode appends a new node of the given length (its full width along
// the line; hlen is half of it) and returns its index. length must be
// positive; callers passing a non-positive length get a node that can
// never satisfy the placement invariant, so this is a programmer error,
// not a runtime one — unlike InsertArc, InsertNode never fails.
func (g *Graph) InsertNode(length numeric.F) NodeIndex {
	i := NodeIndex(len(g.node))
	g.perm = append(g.perm, i)
	g.node = append(g.node, node{pos: -1, hlen: length / 2, arcEnd: NullArc, parent: NullNode})
	return i
}

// InsertArc inserts the directed arc (i, j) with weight w and bond b,
// returning its index. Arcs must be inserted in non-decreasing order of
// source node; i and j must both be valid node indices with i != j.
// Violations return (NullArc, false) without mutating the graph.
func (g *Graph) InsertArc(i, j NodeIndex, w, b numeric.F) (ArcIndex, bool) {
	if i == NullNode || j == NullNode || i == j || i < g.lastNode || int(i) > g.Nodes() || int(j) > g.Nodes() {
		return NullArc, false
	}
	g.lastNode = i
	for k := i - 1; g.node[k].arcEnd == NullArc; k-- {
		g.node[k].arcEnd = ArcIndex(len(g.adj))
	}
	g.adj = append(g.adj, j)
	g.weight = append(g.weight, w)
	g.bond = append(g.bond, b)
	g.node[i].arcEnd = ArcIndex(len(g.adj))
	return ArcIndex(len(g.adj) - 1), true
}

// InsertEdge inserts both directions of the undirected edge {i, j} with
// weight w; i must not exceed j in insertion order across the whole
// construction sequence, matching InsertArc's ascending-source rule for
// each direction.
func (g *Graph) InsertEdge(i, j NodeIndex, w numeric.F) bool {
	_, ok1 := g.InsertArc(i, j, w, 1)
	_, ok2 := g.InsertArc(j, i, w, 1)
	return ok1 && ok2
}

// ArcIndexOf returns the index of arc (i, j), or (NullArc, false) if no
// such arc exists.
// Complexity: O(deg(i)).
func (g *Graph) ArcIndexOf(i, j NodeIndex) (ArcIndex, bool) {
	for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
		if g.adj[a] == j {
			return a, true
		}
	}
	return NullArc, false
}

// ArcSource recovers the source node i of arc a=(i,j) by scanning j's
// adjacency for the arc range that contains a. This trades an O(deg)
// lookup against storing an explicit source index per arc; the lookup is
// off the ordering loop's hot path.
func (g *Graph) ArcSource(a ArcIndex) (NodeIndex, error) {
	j := g.adj[a]
	for b := g.nodeBegin(j); b < g.nodeEnd(j); b++ {
		i := g.adj[b]
		if g.nodeBegin(i) <= a && a < g.nodeEnd(i) {
			return i, nil
		}
	}
	return NullNode, ErrCorrupt
}

// ReverseArc returns the index of arc (j,i), the reverse of a=(i,j), or
// (NullArc, ErrCorrupt) if no reverse arc exists.
func (g *Graph) ReverseArc(a ArcIndex) (ArcIndex, error) {
	j := g.adj[a]
	for b := g.nodeBegin(j); b < g.nodeEnd(j); b++ {
		i := g.adj[b]
		if g.nodeBegin(i) <= a && a < g.nodeEnd(i) {
			return b, nil
		}
	}
	return NullArc, ErrCorrupt
}

// Directed returns the first arc lacking a reverse counterpart, or
// (NullArc, false) if every arc is part of a symmetric pair — the test a
// client uses to confirm a graph it believes is undirected actually is.
func (g *Graph) Directed() (ArcIndex, bool) {
	for i := NodeIndex(1); i <= NodeIndex(g.Nodes()); i++ {
		for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
			j := g.adj[a]
			if _, ok := g.ArcIndexOf(j, i); !ok {
				return a, true
			}
		}
	}
	return NullArc, false
}

// NodeNeighbors returns the targets of i's outgoing arcs, in adjacency
// order.
func (g *Graph) NodeNeighbors(i NodeIndex) []NodeIndex {
	var out []NodeIndex
	for a := g.nodeBegin(i); a < g.nodeEnd(i); a++ {
		out = append(out, g.adj[a])
	}
	return out
}

// RemoveArc removes arc a, shifting the adjacency suffix left and
// decrementing downstream arc_end values. This is O(|adj|) and not used
// by the ordering loop itself, only by clients editing a graph between
// orderings.
func (g *Graph) RemoveArc(a ArcIndex) bool {
	if a == NullArc {
		return false
	}
	i, err := g.ArcSource(a)
	if err != nil {
		return false
	}
	g.adj = append(g.adj[:a], g.adj[a+1:]...)
	g.weight = append(g.weight[:a], g.weight[a+1:]...)
	g.bond = append(g.bond[:a], g.bond[a+1:]...)
	for k := int(i); k < len(g.node); k++ {
		g.node[k].arcEnd--
	}
	return true
}

// RemoveArcBetween removes the directed arc (i, j), if present.
func (g *Graph) RemoveArcBetween(i, j NodeIndex) bool {
	a, ok := g.ArcIndexOf(i, j)
	if !ok {
		return false
	}
	return g.RemoveArc(a)
}

// RemoveEdge removes both directions of the undirected edge {i, j}.
// Returns false, leaving both removals applied independently, unless both
// directions existed.
func (g *Graph) RemoveEdge(i, j NodeIndex) bool {
	// The source of each arc is known here, so each removal shifts the
	// adjacency directly instead of going through ArcSource, which cannot
	// find the second arc once its reverse is already gone.
	remove := func(i, j NodeIndex) bool {
		a, ok := g.ArcIndexOf(i, j)
		if !ok {
			return false
		}
		g.adj = append(g.adj[:a], g.adj[a+1:]...)
		g.weight = append(g.weight[:a], g.weight[a+1:]...)
		g.bond = append(g.bond[:a], g.bond[a+1:]...)
		for k := int(i); k < len(g.node); k++ {
			g.node[k].arcEnd--
		}
		return true
	}
	ok1 := remove(i, j)
	ok2 := remove(j, i)
	return ok1 && ok2
}
