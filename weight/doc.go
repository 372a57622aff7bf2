// Package weight defines the arithmetic contract used by every lvtour algorithm.
//
// Shortest-path and tour solvers never touch "+" or "<" on a weight directly.
// They go through an Arith[W] value instead, which supplies:
//
//   - Zero()     — the cost of staying put,
//   - Inf()      — the sentinel for "no edge" / "unreachable",
//   - Add(a, b)  — saturating addition (Inf absorbs, overflow clamps to Inf),
//   - Less(a, b) — the order used to pick minima.
//
// Saturation is what lets Floyd–Warshall combine two "unreachable" entries
// without the sum wrapping into a small or negative number.
//
// Ready-made values cover the built-in kinds:
//
//	weight.Int64   // Signed[int64]{}, Inf = math.MaxInt64
//	weight.Uint32  // Unsigned[uint32]{}, Inf = math.MaxUint32
//	weight.Float64 // Float[float64]{}, Inf = +Inf
//
// Named numeric types plug in through the generic structs:
//
//	type Minutes int32
//	ar := weight.Signed[Minutes]{}
package weight
