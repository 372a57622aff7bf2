package tsp_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/katalvlaran/lvtour/weight"
)

// ring4 is the directed ring A→B→C→D→A (weight 1) with every reverse edge at 10.
func ring4(t *testing.T) *core.Graph[string, int64] {
	t.Helper()
	g := core.NewGraph[string, int64](core.WithDirected(true))
	ids := []string{"A", "B", "C", "D"}
	for i := range ids {
		u, v := ids[i], ids[(i+1)%len(ids)]
		require.NoError(t, g.AddEdge(u, v, 1))
		require.NoError(t, g.AddEdge(v, u, 10))
	}

	return g
}

func TestHamiltonian_DirectedRingClosed(t *testing.T) {
	t.Parallel()

	g := ring4(t)
	res, err := tsp.Hamiltonian[string, int64](g, weight.Int64, "A", tsp.ReturnToStart())
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "A"}, res.Path)
	require.Equal(t, int64(4), res.Cost)
	require.True(t, res.Closed)
}

func TestHamiltonian_DirectedRingOpen(t *testing.T) {
	t.Parallel()

	g := ring4(t)
	res, err := tsp.Hamiltonian[string, int64](g, weight.Int64, "C")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "D", "A", "B"}, res.Path)
	require.Equal(t, int64(3), res.Cost)
	require.False(t, res.Closed)
}

func TestHamiltonian_NoEdges(t *testing.T) {
	t.Parallel()

	g := core.NewGraph[string, int64]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	for _, start := range []string{"A", "B", "C"} {
		for _, closed := range []bool{false, true} {
			_, err := tsp.Hamiltonian[string, int64](g, weight.Int64, start, tsp.WithReturnToStart(closed))
			require.ErrorIs(t, err, tsp.ErrNoSolution, "start=%s closed=%v", start, closed)
		}
	}
}

func TestHamiltonian_Degenerate(t *testing.T) {
	t.Parallel()

	empty := core.NewGraph[string, int64]()
	_, err := tsp.Hamiltonian[string, int64](empty, weight.Int64, "A")
	require.ErrorIs(t, err, tsp.ErrNoSolution)

	single := core.NewGraph[string, int64]()
	single.AddVertex("A")
	for _, closed := range []bool{false, true} {
		res, err := tsp.Hamiltonian[string, int64](single, weight.Int64, "A", tsp.WithReturnToStart(closed))
		require.NoError(t, err)
		require.Equal(t, []string{"A"}, res.Path)
		require.Equal(t, int64(0), res.Cost)
		require.False(t, res.Closed)
	}

	_, err = tsp.Hamiltonian[string, int64](single, weight.Int64, "Z")
	require.ErrorIs(t, err, tsp.ErrStartNotFound)
	require.ErrorIs(t, err, tsp.ErrNoSolution)
}

func TestHamiltonian_TwoVertices(t *testing.T) {
	t.Parallel()

	g := core.NewGraph[string, int64](core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 5))

	res, err := tsp.Hamiltonian[string, int64](g, weight.Int64, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Path)
	require.Equal(t, int64(5), res.Cost)

	_, err = tsp.Hamiltonian[string, int64](g, weight.Int64, "A", tsp.ReturnToStart())
	require.ErrorIs(t, err, tsp.ErrNoSolution, "no B→A edge to close the cycle")

	_, err = tsp.Hamiltonian[string, int64](g, weight.Int64, "B")
	require.ErrorIs(t, err, tsp.ErrNoSolution)
}

func TestHamiltonian_StarHasNoPath(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Star(5, builder.ConstantWeightFn[int64](1)))
	require.NoError(t, err)
	for _, start := range g.Vertices() {
		_, err := tsp.Hamiltonian[string, int64](g, weight.Int64, start)
		require.ErrorIs(t, err, tsp.ErrNoSolution, "start=%s", start)
	}
}

func TestHamiltonian_UsesDirectEdgesOnly(t *testing.T) {
	t.Parallel()

	// A-B-C path: from B there is no Hamiltonian path, even though the
	// all-pairs closure would connect A and C through B.
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Path(3, builder.ConstantWeightFn[int64](2)))
	require.NoError(t, err)

	_, err = tsp.Hamiltonian[string, int64](g, weight.Int64, "B")
	require.ErrorIs(t, err, tsp.ErrNoSolution)

	res, err := tsp.Hamiltonian[string, int64](g, weight.Int64, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Path)
	require.Equal(t, int64(4), res.Cost)
}

func TestHamiltonian_TieBreakLowestIndex(t *testing.T) {
	t.Parallel()

	// Undirected K4 with unit weights: every open path costs 3. The lowest
	// endpoint (B) wins, then the lowest predecessor at each step back:
	// B←C (A cannot be interior), C←D.
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Complete(4, builder.ConstantWeightFn[int64](1)))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		res, err := tsp.Hamiltonian[string, int64](g, weight.Int64, "A")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "D", "C", "B"}, res.Path)
		require.Equal(t, int64(3), res.Cost)
	}
}

func TestHamiltonian_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 7; n++ {
		for seed := int64(1); seed <= 6; seed++ {
			// Dropping heavy edges yields a mix of feasible and infeasible instances.
			g := randomComplete(t, n, seed, 60)
			start := g.Vertices()[int(seed)%n]
			for _, closed := range []bool{false, true} {
				name := fmt.Sprintf("n=%d/seed=%d/closed=%v", n, seed, closed)
				want, ok := bruteForce(g, start, closed)

				res, err := tsp.Hamiltonian[string, int64](g, weight.Int64, start, tsp.WithReturnToStart(closed))
				if !ok {
					require.ErrorIs(t, err, tsp.ErrNoSolution, name)
					continue
				}
				require.NoError(t, err, name)
				require.Equal(t, want, res.Cost, name)
				requireValidTour[int64](t, g, start, res.Path, closed)

				got, err := tsp.PathCost[string, int64](g, weight.Int64, res.Path)
				require.NoError(t, err, name)
				require.Equal(t, res.Cost, got, name)
			}
		}
	}
}

func TestHamiltonian_ClosedNotCheaperThanOpen(t *testing.T) {
	t.Parallel()

	g := randomComplete(t, 6, 11, 0)
	open, err := tsp.Hamiltonian[string, int64](g, weight.Int64, "A")
	require.NoError(t, err)
	closed, err := tsp.Hamiltonian[string, int64](g, weight.Int64, "A", tsp.ReturnToStart())
	require.NoError(t, err)
	require.LessOrEqual(t, open.Cost, closed.Cost)
}

func TestHamiltonian_MaxVertices(t *testing.T) {
	t.Parallel()

	g := randomComplete(t, 5, 1, 0)
	_, err := tsp.Hamiltonian[string, int64](g, weight.Int64, "A", tsp.WithMaxVertices(4))
	require.ErrorIs(t, err, tsp.ErrTooManyVertices)

	_, err = tsp.Hamiltonian[string, int64](g, weight.Int64, "A", tsp.WithMaxVertices(5))
	require.NoError(t, err)

	require.Panics(t, func() { tsp.WithMaxVertices(-1) })
}

func TestHamiltonian_UnsignedAndFloat(t *testing.T) {
	t.Parallel()

	gu, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Cycle(5, builder.ConstantWeightFn[uint32](3)))
	require.NoError(t, err)
	ru, err := tsp.Hamiltonian[string, uint32](gu, weight.Uint32, "C", tsp.ReturnToStart())
	require.NoError(t, err)
	require.Equal(t, []string{"C", "D", "E", "A", "B", "C"}, ru.Path)
	require.Equal(t, uint32(15), ru.Cost)

	gf, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(5)},
		builder.Complete(6, builder.UniformFloatWeightFn(0.5, 4.0)))
	require.NoError(t, err)
	rf, err := tsp.Hamiltonian[string, float64](gf, weight.Float64, "0", tsp.ReturnToStart())
	require.NoError(t, err)
	requireValidTour[float64](t, gf, "0", rf.Path, true)
	cost, err := tsp.PathCost[string, float64](gf, weight.Float64, rf.Path)
	require.NoError(t, err)
	require.Equal(t, rf.Cost, cost)
}

func TestHamiltonian_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	g := randomComplete(t, 7, 3, 0)
	want, err := tsp.Hamiltonian[string, int64](g, weight.Int64, "A", tsp.ReturnToStart())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]tsp.Result[string, int64], 8)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = tsp.Hamiltonian[string, int64](g, weight.Int64, "A", tsp.ReturnToStart())
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		require.Equal(t, want, results[i])
	}
}

func TestHamiltonian_UnreachableRejectedBeforeSearch(t *testing.T) {
	t.Parallel()

	// 40 vertices would need a 2³⁹-row table; the reachability check
	// answers first.
	g, err := builder.BuildGraph(nil, nil, builder.Path(39, builder.ConstantWeightFn[int64](1)))
	require.NoError(t, err)
	g.AddVertex("island")

	_, err = tsp.Hamiltonian[string, int64](g, weight.Int64, "0")
	require.ErrorIs(t, err, tsp.ErrNoSolution)
}
