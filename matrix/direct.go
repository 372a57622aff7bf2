// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Turn any core.WeightedGraph into its direct-edge distance matrix.
//   - Shared by FloydWarshall (as the starting point of relaxation) and by
//     tsp.Hamiltonian (which must only ever use real, direct edges).
//
// Contract:
//   - diag = Zero(), regardless of any stored self-loop.
//   - (i, j), i ≠ j = edge weight if the edge exists, else Inf().

package matrix

import (
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/weight"
)

// Direct snapshots g into an n×n matrix of direct edge weights and returns it
// along with the vertex order used for row/column numbering.
//
// g.Vertices() is called exactly once, so the numbering is consistent even
// if g is mutated concurrently; edges read afterwards reflect whatever g
// reports at that moment.
//
// Complexity: O(n²) time and memory, plus n² calls to g.Weight.
func Direct[N comparable, W any](g core.WeightedGraph[N, W], ar weight.Arith[W]) (*Square[W], []N) {
	vertices := g.Vertices()
	n := len(vertices)

	// Every cell starts as "no edge"; n >= 0 so construction cannot fail.
	m := &Square[W]{n: n, data: make([]W, n*n)}
	inf, zero := ar.Inf(), ar.Zero()

	var (
		i, j int
		w    W
		ok   bool
	)
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			if i == j {
				m.data[base+j] = zero // distance to self, self-loops ignored
				continue
			}
			if w, ok = g.Weight(vertices[i], vertices[j]); ok {
				m.data[base+j] = w
			} else {
				m.data[base+j] = inf
			}
		}
	}

	return m, vertices
}
