package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/weight"
)

// Exact solves the Travelling Salesman Problem exactly on a distance table.
//
// The input is an n×n matrix dist, where dist[i][j] is the cost to go from
// vertex i to j and ar.Inf() represents "no edge". The diagonal is ignored.
//
// It returns a Result whose Path has length n+1, starting and ending at 0,
// or ErrNoSolution if no Hamiltonian cycle exists. A ragged table returns
// matrix.ErrNonSquare.
//
// Extra options are applied after ReturnToStart(), so WithReturnToStart(false)
// turns the call into a shortest Hamiltonian path from 0.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ⁻¹)
func Exact[W any](dist [][]W, ar weight.Arith[W], opts ...Option) (Result[int, W], error) {
	g, err := matrix.NewGraph(dist, ar)
	if err != nil {
		return Result[int, W]{}, fmt.Errorf("Exact: %w", err)
	}

	all := make([]Option, 0, len(opts)+1)
	all = append(all, ReturnToStart())
	all = append(all, opts...)

	return Hamiltonian[int, W](g, ar, 0, all...)
}
