// SPDX-License-Identifier: MIT
// Package: linorder/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Erdos-Renyi-style generator: every unordered pair {i,j}, i<j, is included
// independently with probability p, in stable trial order (i asc, j asc).
// cfg.rng is required for 0 < p < 1; p in {0,1} is deterministic and does
// not need one.
package builder

import "fmt"

// RandomSparse returns a Constructor that samples an Erdos-Renyi-style
// graph over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(spec *graphSpec, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		base := spec.addNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := false
				switch {
				case cfg.rng == nil:
					include = p == 1.0
				default:
					include = cfg.rng.Float64() <= p
				}
				if !include {
					continue
				}
				w := DefaultEdgeWeight
				if cfg.rng != nil {
					w = cfg.weightFn(cfg.rng)
				}
				spec.addEdge(base+i+1, base+j+1, w)
			}
		}

		return nil
	}
}
