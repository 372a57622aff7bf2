// Package builder provides internal helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// WeightFn produces an edge weight from the builder's RNG.
// It must be deterministic for a given RNG state.
type WeightFn[W any] func(rng *rand.Rand) W

// ConstantWeightFn returns a WeightFn that always yields w.
// Complexity: O(1).
func ConstantWeightFn[W any](w W) WeightFn[W] {
	return func(_ *rand.Rand) W { return w }
}

// UniformIntWeightFn returns a WeightFn sampling uniformly in [lo, hi] inclusive.
// Both bounds and hi-lo+1 must fit in int64. Panics if hi < lo.
// Complexity: O(1).
func UniformIntWeightFn[T constraints.Integer](lo, hi T) WeightFn[T] {
	if hi < lo {
		panic(fmt.Sprintf("UniformIntWeightFn: require lo ≤ hi, got lo=%v, hi=%v", lo, hi))
	}
	span := int64(hi) - int64(lo) + 1

	return func(rng *rand.Rand) T {
		return lo + T(rng.Int63n(span))
	}
}

// UniformFloatWeightFn returns a WeightFn sampling uniformly in [lo, hi).
// Panics if hi < lo.
func UniformFloatWeightFn[T constraints.Float](lo, hi T) WeightFn[T] {
	if hi < lo {
		panic(fmt.Sprintf("UniformFloatWeightFn: require lo ≤ hi, got lo=%v, hi=%v", lo, hi))
	}

	return func(rng *rand.Rand) T {
		return lo + T(rng.Float64())*(hi-lo)
	}
}
