package fixtures

import "github.com/katalvlaran/linorder/core"

// Grid builds the k x k orthogonal grid graph: nodes laid out row-major
// (node (r,c), 0-based, has index r*k+c+1), with unit-weight edges to the
// right and bottom neighbor where they exist.
func Grid(k int) *core.Graph {
	n := k * k
	var edges []edge
	idx := func(r, c int) int { return r*k + c + 1 }
	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			if c+1 < k {
				edges = append(edges, edge{i: idx(r, c), j: idx(r, c+1), w: 1})
			}
			if r+1 < k {
				edges = append(edges, edge{i: idx(r, c), j: idx(r+1, c), w: 1})
			}
		}
	}
	return build(n, edges)
}
