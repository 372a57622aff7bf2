package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/katalvlaran/lvtour/weight"
)

func TestPathCost(t *testing.T) {
	t.Parallel()

	g := ring4(t)
	ar := weight.Int64

	got, err := tsp.PathCost[string, int64](g, ar, []string{"A", "B", "C", "D", "A"})
	require.NoError(t, err)
	require.Equal(t, int64(4), got)

	got, err = tsp.PathCost[string, int64](g, ar, []string{"A", "D", "C"})
	require.NoError(t, err)
	require.Equal(t, int64(20), got)

	got, err = tsp.PathCost[string, int64](g, ar, []string{"B"})
	require.NoError(t, err)
	require.Equal(t, int64(0), got)

	_, err = tsp.PathCost[string, int64](g, ar, nil)
	require.ErrorIs(t, err, tsp.ErrEmptyPath)

	_, err = tsp.PathCost[string, int64](g, ar, []string{"Z"})
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = tsp.PathCost[string, int64](g, ar, []string{"A", "C"})
	require.ErrorIs(t, err, tsp.ErrMissingEdge)
}

func TestPathCost_Saturates(t *testing.T) {
	t.Parallel()

	var ar weight.Arith[int8] = weight.Signed[int8]{}
	g := core.NewGraph[string, int8](core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 100))
	require.NoError(t, g.AddEdge("B", "C", 100))

	got, err := tsp.PathCost[string, int8](g, ar, []string{"A", "B", "C"})
	require.NoError(t, err)
	require.True(t, weight.IsInf(ar, got), "100+100 must saturate, not wrap")
}
