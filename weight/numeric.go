// SPDX-License-Identifier: MIT
// Package: lvtour/weight
//
// numeric.go — Arith implementations over Go's built-in numeric kinds.
//
//   • Signed[T]:   Inf = max(T); positive overflow clamps to Inf, negative
//                  overflow clamps to min(T).
//   • Unsigned[T]: Inf = max(T); overflow clamps to Inf.
//   • Float[T]:    Inf = +Inf; IEEE addition already saturates, the explicit
//                  Inf check only pins Inf + (-Inf) to Inf instead of NaN.

package weight

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Signed is the Arith for signed integer weights (int, int8 … int64 and
// named types over them).
type Signed[T constraints.Signed] struct{}

// Zero implements Arith.
func (Signed[T]) Zero() T { return 0 }

// Inf implements Arith: the maximum value of T.
func (Signed[T]) Inf() T { return maxSigned[T]() }

// Add implements Arith with saturation in both directions.
func (Signed[T]) Add(a, b T) T {
	inf := maxSigned[T]()
	if a == inf || b == inf {
		return inf
	}

	sum := a + b // may wrap; detected below
	switch {
	case b > 0 && sum < a:
		return inf
	case b < 0 && sum > a:
		return -inf - 1
	}

	return sum
}

// Less implements Arith.
func (Signed[T]) Less(a, b T) bool { return a < b }

// Unsigned is the Arith for unsigned integer weights.
type Unsigned[T constraints.Unsigned] struct{}

// Zero implements Arith.
func (Unsigned[T]) Zero() T { return 0 }

// Inf implements Arith: all bits set.
func (Unsigned[T]) Inf() T { return ^T(0) }

// Add implements Arith; wrap-around is reported as Inf.
func (Unsigned[T]) Add(a, b T) T {
	inf := ^T(0)
	if a == inf || b == inf {
		return inf
	}

	sum := a + b
	if sum < a {
		return inf
	}

	return sum
}

// Less implements Arith.
func (Unsigned[T]) Less(a, b T) bool { return a < b }

// Float is the Arith for float32/float64 weights. NaN is not a valid weight.
type Float[T constraints.Float] struct{}

// Zero implements Arith.
func (Float[T]) Zero() T { return 0 }

// Inf implements Arith: +Inf.
func (Float[T]) Inf() T { return T(math.Inf(1)) }

// Add implements Arith.
func (Float[T]) Add(a, b T) T {
	inf := T(math.Inf(1))
	if a == inf || b == inf {
		return inf
	}

	return a + b // finite overflow rounds to +Inf
}

// Less implements Arith.
func (Float[T]) Less(a, b T) bool { return a < b }

// maxSigned returns the largest value of T, derived from its width so that
// named types (type Cost int32) work as well as the predeclared ones.
func maxSigned[T constraints.Signed]() T {
	var zero T
	bits := unsafe.Sizeof(zero) * 8

	return T(^uint64(0) >> (65 - bits))
}
