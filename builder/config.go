// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • rng  = rand.New(rand.NewSource(DefaultSeed))

package builder

import "math/rand"

// DefaultSeed seeds the RNG when WithSeed is not given, so an unseeded build
// is still reproducible.
const DefaultSeed int64 = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG handed to every WeightFn call.
	rng *rand.Rand
}

// BuilderOption customizes builderConfig.
type BuilderOption func(cfg *builderConfig)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  rand.New(rand.NewSource(DefaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed replaces the RNG with one seeded by seed.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses rng directly (shared across builds if the caller reuses it).
// Panics if rng is nil.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic("builder: WithRand(nil)")
	}

	return func(cfg *builderConfig) { cfg.rng = rng }
}

// WithIDScheme sets the vertex ID strategy. Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(cfg *builderConfig) { cfg.idFn = fn }
}
