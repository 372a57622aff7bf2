// SPDX-License-Identifier: MIT
// Package: lvtour/weight
//
// arith.go — the numeric contract shared by the shortest-path and tour solvers.
//
// Contract:
//   • Zero() is the additive identity.
//   • Inf() is the largest representable value and means "no edge" / "unreachable".
//   • Add(a, b) never overflows: results clamp at Inf(), and Inf() absorbs any operand.
//   • Less(a, b) is a strict total order over the values the solvers produce.
//
// Determinism:
//   • Every implementation in this package is stateless (zero-size struct);
//     the same inputs always yield the same outputs.

package weight

import "fmt"

// InfSymbol is the textual form of Inf() used by Format.
const InfSymbol = "∞"

// Arith describes the arithmetic a weight type W must provide so that
// matrix.FloydWarshall and tsp.Hamiltonian can be written once for every
// numeric representation.
type Arith[W any] interface {
	// Zero returns the additive identity (distance from a vertex to itself).
	Zero() W

	// Inf returns the sentinel that marks a missing edge or an unreachable pair.
	// It must compare greater than or equal to every finite value.
	Inf() W

	// Add returns a+b clamped to Inf(). If either operand is Inf(), the result is Inf().
	Add(a, b W) W

	// Less reports whether a is strictly smaller than b.
	Less(a, b W) bool
}

// Ready-made arithmetics for the common built-in weight types.
var (
	Int     Arith[int]     = Signed[int]{}
	Int32   Arith[int32]   = Signed[int32]{}
	Int64   Arith[int64]   = Signed[int64]{}
	Uint    Arith[uint]    = Unsigned[uint]{}
	Uint32  Arith[uint32]  = Unsigned[uint32]{}
	Uint64  Arith[uint64]  = Unsigned[uint64]{}
	Float32 Arith[float32] = Float[float32]{}
	Float64 Arith[float64] = Float[float64]{}
)

// IsInf reports whether w is the sentinel (or anything not below it).
// Complexity: O(1).
func IsInf[W any](ar Arith[W], w W) bool {
	return !ar.Less(w, ar.Inf())
}

// Min returns the smaller of a and b; on ties a is returned.
func Min[W any](ar Arith[W], a, b W) W {
	if ar.Less(b, a) {
		return b
	}

	return a
}

// Sum folds ws with saturating addition, starting from Zero().
// Complexity: O(len(ws)).
func Sum[W any](ar Arith[W], ws ...W) W {
	total := ar.Zero()
	for _, w := range ws {
		total = ar.Add(total, w)
	}

	return total
}

// Format renders w with fmt's default verb, or InfSymbol for the sentinel.
func Format[W any](ar Arith[W], w W) string {
	if IsInf(ar, w) {
		return InfSymbol
	}

	return fmt.Sprint(w)
}
