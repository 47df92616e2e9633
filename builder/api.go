// SPDX-License-Identifier: MIT
// Package: linorder/builder
//
// api.go - thin public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons
//     in order against a shared graphSpec, then materializes one core.Graph.
//   - All public factories are declared here; implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order yield
//     identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/linorder/core"
)

// Constructor applies a deterministic topology to the shared graphSpec using
// the resolved builderConfig. Constructors must validate parameters early
// and return sentinel errors (never panic), and must record edges via
// graphSpec rather than assume any particular insertion order is legal.
type Constructor func(spec *graphSpec, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order against one graphSpec, then materializes the result
// into a *core.Graph. Any constructor error is wrapped with "BuildGraph: %w"
// and returned immediately; no partial graph is returned on error.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	spec := &graphSpec{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(spec, *cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return spec.materialize(), nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Cycle builds an n-vertex simple cycle C_n (n >= MinCycleNodes).
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n >= MinPathNodes).
//func Path(n int) Constructor

// Star builds a star with one hub and n-1 leaves (n >= MinStarNodes).
//func Star(n int) Constructor

// Wheel builds a wheel W_n = C_{n-1} plus a hub (n >= MinWheelNodes).
//func Wheel(n int) Constructor

// Complete builds the complete simple graph K_n (n >= 1).
//func Complete(n int) Constructor

// CompleteBipartite builds the complete bipartite graph K_{n1,n2}.
//func CompleteBipartite(n1, n2 int) Constructor

// Grid builds a rows x cols 4-neighborhood orthogonal grid.
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdos-Renyi-style sparse graph: each unordered pair
// is connected independently with probability p. Requires cfg.rng != nil
// for 0 < p < 1.
//func RandomSparse(n int, p float64) Constructor

// RandomRegular builds a d-regular simple graph via stub-matching with
// bounded retries. Requires cfg.rng != nil.
//func RandomRegular(n, d int) Constructor

// PlatonicSolid builds one of the five Platonic solid shells, optionally
// stellated with a central hub connected to every shell vertex.
//func PlatonicSolid(name PlatonicName, withCenter bool) Constructor

// Hexagram overlays a variant-specific chord set atop a base cycle or wheel.
//func Hexagram(variant HexagramVariant) Constructor
