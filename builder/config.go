// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes the two knobs every constructor
// shares — a random source and an edge-weight distribution — to keep
// implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds two fields:
//   - rng:      *rand.Rand source for randomness (nil -> deterministic).
//   - weightFn: WeightFn to produce edge weights given an RNG.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
package builder

import (
	"math/rand"
)

// builderConfig holds the configurable parameters for graph builders:
//   - rng:      source of randomness (nil means deterministic).
//   - weightFn: function mapping rng -> edge weight.
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// creates its own config via newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultWeightFn.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRand sets an explicit *rand.Rand source for randomness.
// Panics on nil, to surface programmer error early rather than silently
// falling back to determinism.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.rng = rng
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and assigns
// it as the RNG source. Use this for reproducible randomized topologies.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
