// SPDX-License-Identifier: MIT
// Package: linorder/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract: n1, n2 >= MinPartition. Reserves n1 left nodes followed by n2
// right nodes, then connects every cross pair (left_i, right_j).
package builder

// CompleteBipartite returns a Constructor for the complete bipartite graph
// K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(spec *graphSpec, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		leftBase := spec.addNodes(n1)
		rightBase := spec.addNodes(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				spec.addEdge(leftBase+i+1, rightBase+j+1, cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}
