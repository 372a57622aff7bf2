package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/weight"
)

// bruteForce enumerates every ordering of the non-start vertices and returns
// the minimum cost, or ok=false when no ordering is feasible. Only for n ≤ 8.
func bruteForce(g core.WeightedGraph[string, int64], start string, closed bool) (int64, bool) {
	ar := weight.Int64
	var rest []string
	for _, v := range g.Vertices() {
		if v != start {
			rest = append(rest, v)
		}
	}

	best, found := ar.Inf(), false
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			path := append([]string{start}, rest...)
			if closed {
				path = append(path, start)
			}
			total := ar.Zero()
			for i := 1; i < len(path); i++ {
				w, ok := g.Weight(path[i-1], path[i])
				if !ok {
					return
				}
				total = ar.Add(total, w)
			}
			if total < best {
				best = total
			}
			found = true
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best, found
}

// randomComplete builds a seeded directed K_n with asymmetric weights, then
// removes every edge whose weight exceeds dropAbove (0 keeps all).
func randomComplete(t *testing.T, n int, seed, dropAbove int64) *core.Graph[string, int64] {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithSymbolIDs()},
		builder.Complete(n, builder.UniformIntWeightFn[int64](1, 100)),
	)
	require.NoError(t, err)
	if dropAbove > 0 {
		for _, e := range g.Edges() {
			if e.Weight > dropAbove {
				require.NoError(t, g.RemoveEdge(e.From, e.To))
			}
		}
	}

	return g
}

// requireValidTour checks that res.Path is a permutation of g's vertices that
// starts at start and, when closed, returns to it.
func requireValidTour[W any](t *testing.T, g core.WeightedGraph[string, W], start string, path []string, closed bool) {
	t.Helper()
	n := len(g.Vertices())
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	body := path
	if closed && n > 1 {
		require.Len(t, path, n+1)
		require.Equal(t, start, path[n])
		body = path[:n]
	} else {
		require.Len(t, path, n)
	}
	require.ElementsMatch(t, g.Vertices(), body)
}
