package fixtures

import "github.com/katalvlaran/linorder/core"

// Path builds the simple path graph P_n: nodes 1..n, with edges (i, i+1)
// for i in [1, n-1], all of unit weight. n must be at least 2.
func Path(n int) *core.Graph {
	edges := make([]edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, edge{i: i, j: i + 1, w: 1})
	}
	return build(n, edges)
}

// SingleEdge builds the two-node graph {1, 2} joined by one unit-weight
// edge — the smallest nontrivial scenario graph.
func SingleEdge() *core.Graph {
	return build(2, []edge{{i: 1, j: 2, w: 1}})
}

// Triangle builds K_3: three mutually adjacent nodes, all edges unit
// weight. Every permutation of K_3 has identical cost under any
// functional, since every pair is adjacent.
func Triangle() *core.Graph {
	return build(3, []edge{{1, 2, 1}, {1, 3, 1}, {2, 3, 1}})
}

// DisconnectedPaths builds two disjoint paths of length n each: nodes
// 1..n form the first path, n+1..2n the second, with no edges between
// them.
func DisconnectedPaths(n int) *core.Graph {
	edges := make([]edge, 0, 2*(n-1))
	for i := 1; i < n; i++ {
		edges = append(edges, edge{i: i, j: i + 1, w: 1})
	}
	for i := 1; i < n; i++ {
		edges = append(edges, edge{i: n + i, j: n + i + 1, w: 1})
	}
	return build(2*n, edges)
}
