package fixtures

import "github.com/katalvlaran/linorder/core"

// Hypercube builds Q_d, the d-dimensional hypercube graph: 2^d nodes
// (indices 1..2^d, node index-1 read as a d-bit binary label), with a
// unit-weight edge between any two nodes whose labels differ in exactly
// one bit.
func Hypercube(d int) *core.Graph {
	n := 1 << d
	var edges []edge
	for label := 0; label < n; label++ {
		for bit := 0; bit < d; bit++ {
			neighbor := label ^ (1 << bit)
			if neighbor > label {
				edges = append(edges, edge{i: label + 1, j: neighbor + 1, w: 1})
			}
		}
	}
	return build(n, edges)
}
