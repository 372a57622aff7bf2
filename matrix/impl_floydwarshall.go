// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order and
//     overflow-safe arithmetic supplied by weight.Arith.
//
// Contract:
//   - Square matrix; Inf() means "no path"; diagonal must be Zero() before
//     relaxation (Direct guarantees it).
//   - No negative-weight cycle may be present. This is a documented
//     precondition and is not checked; results are undefined otherwise.

package matrix

import (
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/weight"
)

// floydWarshallInPlace runs the APSP closure on d.
//
// Loop order is fixed (k → i → j) and only strict improvements are written,
// so the result does not depend on anything but the input.
// Time: O(n³); extra space: O(1).
func floydWarshallInPlace[W any](d *Square[W], ar weight.Arith[W]) {
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand W
	)
	for k = 0; k < n; k++ {
		baseK = k * n

		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if weight.IsInf(ar, ik) { // i cannot reach k: nothing via k improves row i
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if weight.IsInf(ar, kj) {
					continue
				}
				cand = ar.Add(ik, kj) // saturating; never wraps below a finite value
				if ar.Less(cand, data[baseI+j]) {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshallInPlace relaxes an existing distance matrix in place.
//
// Contract:
//   - Inf() denotes "no edge" off-diagonal; the diagonal should be Zero().
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshallInPlace[W any](d *Square[W], ar weight.Arith[W]) {
	floydWarshallInPlace(d, ar)
}

// FloydWarshall computes the shortest-path distance for every ordered pair of
// vertices of g.
//
// Steps:
//  1. Snapshot g with Direct (diag Zero(), edge weight or Inf()).
//  2. Relax in place through every intermediate vertex k.
//  3. Wrap the matrix with its vertex index.
//
// Guarantees:
//   - Distance(v, v) == Zero() for every v (absent negative cycles).
//   - Unreachable pairs hold exactly Inf(); saturating addition keeps
//     "Inf + Inf" from wrapping into a small or negative value.
//   - An empty graph yields an empty Distances.
//
// FloydWarshall is total and pure: it never fails and never mutates g.
// Complexity: O(n³) time, O(n²) space.
func FloydWarshall[N comparable, W any](g core.WeightedGraph[N, W], ar weight.Arith[W]) *Distances[N, W] {
	d, vertices := Direct(g, ar)
	floydWarshallInPlace(d, ar)

	return newDistances(vertices, d, ar)
}
