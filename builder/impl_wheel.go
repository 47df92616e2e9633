// SPDX-License-Identifier: MIT
// Package: linorder/builder
//
// impl_wheel.go - implementation of Wheel(n).
//
// Canonical definition: W_n = C_{n-1} + hub, so n >= MinWheelNodes (the
// outer ring must itself be a valid cycle, n-1 >= MinCycleNodes).
package builder

import "fmt"

// Wheel returns a Constructor that builds the wheel W_n = C_{n-1} plus a
// hub spoked to every ring vertex.
func Wheel(n int) Constructor {
	return func(spec *graphSpec, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		ringBase := spec.n
		if err := Cycle(n - 1)(spec, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}

		hubBase := spec.addNodes(1)
		hub := hubBase + 1
		for i := 0; i < n-1; i++ {
			spec.addEdge(hub, ringBase+i+1, cfg.weightFn(cfg.rng))
		}

		return nil
	}
}
