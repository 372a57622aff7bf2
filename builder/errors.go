// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w.
//   • Constructors never panic at runtime; validation panics are confined to
//     option/weight-function constructors (WithX..., UniformIntWeightFn...).

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the minimum for the
// requested constructor (Complete ≥ 1, Path ≥ 1, Star ≥ 2, Cycle ≥ 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNilWeightFn indicates a constructor was given a nil WeightFn.
var ErrNilWeightFn = errors.New("builder: weight function is nil")

// ErrUnknownShape indicates ByShape was asked for a shape it does not know.
var ErrUnknownShape = errors.New("builder: unknown shape")

// ErrNilConstructor indicates BuildGraph received a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")
