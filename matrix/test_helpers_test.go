package matrix_test

import (
	"math/rand"

	"github.com/katalvlaran/lvtour/core"
)

// randomDirected builds a directed graph on 0..n-1 where each ordered pair
// i≠j gets an edge with probability p and a weight in [1, maxW].
func randomDirected(rng *rand.Rand, n int, p float64, maxW int64) *core.Graph[int, int64] {
	g := core.NewGraph[int, int64](core.WithDirected(true))
	for v := 0; v < n; v++ {
		g.AddVertex(v)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < p {
				_ = g.AddEdge(i, j, 1+rng.Int63n(maxW))
			}
		}
	}

	return g
}
