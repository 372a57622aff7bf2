package matrix

import (
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/weight"
)

// Graph views a Square as a core.WeightedGraph[int, W]: vertices are 0..n-1
// and every off-diagonal cell below Inf() is an edge. Diagonal cells are
// never reported as edges.
type Graph[W any] struct {
	m  *Square[W]
	ar weight.Arith[W]
}

var _ core.WeightedGraph[int, float64] = (*Graph[float64])(nil)

// NewGraph copies rows into a matrix-backed graph.
// Returns ErrNonSquare if rows is ragged.
func NewGraph[W any](rows [][]W, ar weight.Arith[W]) (*Graph[W], error) {
	m, err := NewSquareFromRows(rows)
	if err != nil {
		return nil, matrixErrorf("NewGraph", err)
	}

	return &Graph[W]{m: m, ar: ar}, nil
}

// AsGraph wraps m without copying; later Set calls on m are visible through the view.
func AsGraph[W any](m *Square[W], ar weight.Arith[W]) *Graph[W] {
	return &Graph[W]{m: m, ar: ar}
}

// Vertices returns 0..n-1.
func (g *Graph[W]) Vertices() []int {
	out := make([]int, g.m.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Weight implements core.WeightedGraph.
func (g *Graph[W]) Weight(from, to int) (W, bool) {
	var zero W
	if from == to {
		return zero, false
	}
	w, err := g.m.At(from, to)
	if err != nil || weight.IsInf(g.ar, w) {
		return zero, false
	}

	return w, true
}
