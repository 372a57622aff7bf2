package converters_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/converters"
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/katalvlaran/lvtour/weight"
)

func TestFromGonum_VerticesAndWeights(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, id := range []int64{30, 10, 20} {
		g.AddNode(simple.Node(id))
	}
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(10), T: simple.Node(20), W: 2.5})

	v := converters.FromGonum(g)
	require.Equal(t, []int64{10, 20, 30}, v.Vertices())

	w, ok := v.Weight(20, 10)
	require.True(t, ok)
	require.Equal(t, 2.5, w)

	_, ok = v.Weight(10, 30)
	require.False(t, ok)
	_, ok = v.Weight(10, 10)
	require.False(t, ok, "diagonal is not an edge")
}

func TestFromGonum_HamiltonianOnGonumData(t *testing.T) {
	t.Parallel()

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	ring := []int64{1, 2, 3, 4}
	for i := range ring {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(ring[i]), T: simple.Node(ring[(i+1)%4]), W: 1})
	}

	res, err := tsp.Hamiltonian[int64, float64](converters.FromGonum(g), weight.Float64, 3, tsp.ReturnToStart())
	require.NoError(t, err)
	require.Equal(t, []int64{3, 4, 1, 2, 3}, res.Path)
	require.Equal(t, 4.0, res.Cost)
}

func TestToGonum_RoundTrip(t *testing.T) {
	t.Parallel()

	src := core.NewGraph[string, int64](core.WithDirected(true))
	require.NoError(t, src.AddEdge("a", "b", 3))
	require.NoError(t, src.AddEdge("b", "c", 4))
	src.AddVertex("lonely")

	out, ids := converters.ToGonum[string, int64](src)
	require.Equal(t, []string{"a", "b", "c", "lonely"}, ids)
	require.Equal(t, 4, out.Nodes().Len())
	require.Equal(t, 2, out.Edges().Len())

	back := converters.FromGonum(out)
	w, ok := back.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 3.0, w)
	_, ok = back.Weight(1, 0)
	require.False(t, ok)
}

// TestFloydWarshall_AgreesWithGonum cross-checks matrix.FloydWarshall against
// gonum's implementation on seeded random graphs.
func TestFloydWarshall_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.Cycle(9, builder.UniformIntWeightFn[int64](1, 50)),
		)
		require.NoError(t, err)
		// A few chords, some against the ring direction.
		require.NoError(t, g.AddEdge("0", "5", 7+seed))
		require.NoError(t, g.AddEdge("6", "2", 3*seed))
		require.NoError(t, g.AddEdge("island", "4", 1))

		ours := matrix.FloydWarshall[string, int64](g, weight.Int64)
		gg, ids := converters.ToGonum[string, int64](g)
		theirs, ok := path.FloydWarshall(gg)
		require.True(t, ok, "no negative cycles")

		for i, u := range ids {
			for j, v := range ids {
				d, _ := ours.Distance(u, v)
				want := theirs.Weight(int64(i), int64(j))
				if !ours.Reachable(u, v) {
					require.True(t, math.IsInf(want, 1), "%s→%s", u, v)
					continue
				}
				require.Equal(t, want, float64(d), "%s→%s", u, v)
			}
		}
	}
}
