package fixtures

import "github.com/katalvlaran/linorder/core"

// edge is an undirected edge between 1-based node indices.
type edge struct {
	i, j int
	w    float64
}

// build constructs a Graph of n nodes from an edge list, inserting both
// arc directions of every edge. core.Graph.InsertArc only accepts arcs in
// non-decreasing source order, so arcs are grouped by source node here
// before insertion rather than interleaved in edge-discovery order.
func build(n int, edges []edge) *core.Graph {
	g := core.NewGraph(n)

	out := make([][]struct {
		j int
		w float64
	}, n+1)
	for _, e := range edges {
		out[e.i] = append(out[e.i], struct {
			j int
			w float64
		}{e.j, e.w})
		out[e.j] = append(out[e.j], struct {
			j int
			w float64
		}{e.i, e.w})
	}

	for i := 1; i <= n; i++ {
		for _, nb := range out[i] {
			g.InsertArc(core.NodeIndex(i), core.NodeIndex(nb.j), nb.w, 1)
		}
	}
	return g
}
