// SPDX-License-Identifier: MIT
// Package: linorder/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context via fmt.Errorf("...: %w", ...).
package builder

import "errors"

// ErrTooFewVertices indicates a numeric parameter (n, rows, cols, degree) is
// smaller than the minimum the requested topology requires.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability value lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (supply one via WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted its permitted retries
// (stub-matching for RandomRegular) or received a malformed call (nil
// constructor, unknown topology variant) without producing a valid graph.
var ErrConstructFailed = errors.New("builder: construction failed")
