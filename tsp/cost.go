// Package tsp — cost utility shared by the solvers and their callers.
//
// PathCost re-derives a path's cost from the graph alone, which makes it the
// independent check for Result.Cost: same edges, same saturating addition.
//
// Complexity:
//   - O(len(path)) edge lookups, plus O(n) for the single-vertex membership check.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/weight"
)

// PathCost sums the direct edge weights along path using ar.Add.
//
// Contract:
//   - len(path) ≥ 1, else ErrEmptyPath.
//   - Every consecutive pair must be joined by a direct edge, else ErrMissingEdge.
//   - A single-vertex path costs Zero() if the vertex exists in g.
func PathCost[N comparable, W any](g core.WeightedGraph[N, W], ar weight.Arith[W], path []N) (W, error) {
	total := ar.Zero()
	if len(path) == 0 {
		return total, ErrEmptyPath
	}

	if len(path) == 1 {
		for _, v := range g.Vertices() {
			if v == path[0] {
				return total, nil
			}
		}

		return total, fmt.Errorf("PathCost: vertex %v: %w", path[0], core.ErrVertexNotFound)
	}

	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return total, fmt.Errorf("PathCost: %v→%v: %w", path[i-1], path[i], ErrMissingEdge)
		}
		total = ar.Add(total, w)
	}

	return total, nil
}
