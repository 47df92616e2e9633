// SPDX-License-Identifier: MIT
// Package: linorder/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name, withCenter).
//
// Contract: name must be one of the five enumerated PlatonicName values
// (see variants_platonic.go for vertex counts and canonical shell edges).
// Reserves the solid's shell vertices, emits its canonical edges, and -
// when withCenter is true - reserves one more node as a hub spoked to
// every shell vertex.
package builder

import "fmt"

// PlatonicSolid returns a Constructor that builds the chosen Platonic
// shell, optionally stellated with a central hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(spec *graphSpec, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", MethodPlatonicSolid, name, ErrConstructFailed)
		}

		base := spec.addNodes(n)

		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %v: %w", MethodPlatonicSolid, name, ErrConstructFailed)
		}
		for _, ch := range edges {
			spec.addEdge(base+ch.U+1, base+ch.V+1, cfg.weightFn(cfg.rng))
		}

		if withCenter {
			hubBase := spec.addNodes(1)
			hub := hubBase + 1
			for i := 0; i < n; i++ {
				spec.addEdge(hub, base+i+1, cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}
