// Package builder provides internal helper functions used by topology
// constructors to build common shapes against a graphSpec.
package builder

import (
	"github.com/katalvlaran/linorder/core"
	"github.com/katalvlaran/linorder/numeric"
)

// specEdge is an undirected edge between 1-based node indices, recorded
// before the graph is materialized.
type specEdge struct {
	i, j int
	w    numeric.F
}

// graphSpec accumulates a node count and an edge list across one or more
// Constructor calls. core.Graph.InsertArc only accepts arcs in
// non-decreasing source order, so constructors cannot mutate a *core.Graph
// incrementally in topology-discovery order; they record edges here instead,
// and materialize groups them by source at the end — the same grouping
// fixtures.build performs by hand for the scenario graphs.
type graphSpec struct {
	n     int
	edges []specEdge
}

// addNodes reserves the next k node slots and returns the 0-based index of
// the first new node within this constructor's own local numbering; callers
// offset every local index by this base before recording edges.
func (s *graphSpec) addNodes(k int) int {
	base := s.n
	s.n += k

	return base
}

// addEdge records an undirected edge between 1-based node indices i and j.
func (s *graphSpec) addEdge(i, j int, w numeric.F) {
	s.edges = append(s.edges, specEdge{i: i, j: j, w: w})
}

// hasEdge reports whether an edge between 1-based indices i and j has
// already been recorded, in either direction. Hexagram uses this to skip
// chords that duplicate a ring edge the base Cycle/Wheel already added;
// it is O(|edges|) and unused on the hot construction path of the other
// deterministic topologies.
func (s *graphSpec) hasEdge(i, j int) bool {
	for _, e := range s.edges {
		if (e.i == i && e.j == j) || (e.i == j && e.j == i) {
			return true
		}
	}

	return false
}

// materialize builds the core.Graph, grouping arcs by source node to satisfy
// InsertArc's ascending-source-order contract.
func (s *graphSpec) materialize() *core.Graph {
	g := core.NewGraph(s.n)
	out := make([][]specEdge, s.n+1)
	for _, e := range s.edges {
		out[e.i] = append(out[e.i], e)
		out[e.j] = append(out[e.j], specEdge{i: e.j, j: e.i, w: e.w})
	}
	for i := 1; i <= s.n; i++ {
		for _, e := range out[i] {
			g.InsertArc(core.NodeIndex(i), core.NodeIndex(e.j), e.w, 1)
		}
	}

	return g
}
