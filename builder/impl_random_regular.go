// SPDX-License-Identifier: MIT
// Package: linorder/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d).
//
// Undirected d-regular simple graph via stub-matching: build n*d stubs
// (vertex i repeated d times), shuffle, and pair consecutive stubs. A
// pairing that produces a self-loop or a duplicate edge is rejected and
// the whole shuffle is retried, bounded by maxStubMatchingAttempts.
//
// Contract: n >= 1; 0 <= d < n; n*d even; cfg.rng required.
package builder

import "fmt"

// RandomRegular returns a Constructor that builds an undirected d-regular
// simple graph over n vertices via bounded-retry stub matching.
func RandomRegular(n, d int) Constructor {
	return func(spec *graphSpec, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomRegular, n, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: d=%d must satisfy 0 <= d < n=%d: %w",
				MethodRandomRegular, d, n, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d=%d must be even: %w", MethodRandomRegular, n*d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}
		if d == 0 {
			spec.addNodes(n)
			return nil
		}

		base := spec.addNodes(n)
		stubCount := n * d
		stubs := make([]int, stubCount)
		pos := 0
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs[pos] = i
				pos++
			}
		}

		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			valid := true
			seen := make(map[[2]int]struct{}, stubCount/2)
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue
			}

			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				spec.addEdge(base+u+1, base+v+1, cfg.weightFn(rng))
			}
			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
