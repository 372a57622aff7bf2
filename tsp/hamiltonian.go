// SPDX-License-Identifier: MIT
// Package: lvtour/tsp
//
// hamiltonian.go — Held–Karp over an arbitrary weighted graph.
//
// Table layout:
//   • The start vertex is renumbered to 0, the others keep their relative
//     order as 1..n-1. Every reachable state contains vertex 0, so its mask
//     is odd and row = mask>>1 indexes a table of 2ⁿ⁻¹ rows.
//   • cost[row*n+v] = minimum cost of a path start → … → v covering mask,
//     Inf() when unreachable.
//   • prev[row*n+v] = vertex preceding v on that path, -1 when unset.
//
// Determinism:
//   • Predecessors are scanned in ascending index and only strict
//     improvements replace the incumbent; the same holds for the final
//     endpoint. Among equal-cost optima the lowest-index endpoint wins,
//     then the lowest-index predecessor at every step back.

package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvtour/bfs"
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/weight"
)

const methodHamiltonian = "Hamiltonian"

// Hamiltonian returns the minimum-cost simple path that starts at start and
// visits every vertex of g exactly once; with ReturnToStart() the path must
// also close back to start through a direct edge.
//
// Degenerate inputs:
//   - empty graph              → ErrNoSolution
//   - start not in g           → ErrStartNotFound (is ErrNoSolution)
//   - single vertex == start   → Path [start], Cost Zero(), Closed false
//
// Only direct edges count: the distance source is matrix.Direct, never the
// all-pairs closure. Self-loops are ignored.
//
// Summing g's direct weights along Result.Path with ar.Add reproduces
// Result.Cost exactly (see PathCost).
//
// Time O(2ⁿ·n²), memory O(2ⁿ⁻¹·n). The call allocates all of its scratch
// space, so concurrent calls on the same graph are safe as long as g's own
// reads are.
func Hamiltonian[N comparable, W any](g core.WeightedGraph[N, W], ar weight.Arith[W], start N, opts ...Option) (Result[N, W], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	direct, vertices := matrix.Direct(g, ar)
	n := len(vertices)
	if n == 0 {
		return Result[N, W]{}, fmt.Errorf("%s: empty graph: %w", methodHamiltonian, ErrNoSolution)
	}

	startIdx := -1
	for i, v := range vertices {
		if v == start {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		return Result[N, W]{}, fmt.Errorf("%s(%v): %w", methodHamiltonian, start, ErrStartNotFound)
	}

	if n == 1 {
		return Result[N, W]{Path: []N{start}, Cost: ar.Zero()}, nil
	}

	if n > MaxMaskVertices || (o.MaxVertices > 0 && n > o.MaxVertices) {
		return Result[N, W]{}, fmt.Errorf("%s: n=%d: %w", methodHamiltonian, n, ErrTooManyVertices)
	}

	// Every vertex must be reachable from start; checking that is O(V²),
	// the table below is O(2ⁿ·n²).
	if !bfs.ReachesAll(g, start) {
		return Result[N, W]{}, fmt.Errorf("%s(%v): unreachable vertices: %w", methodHamiltonian, start, ErrNoSolution)
	}

	// Renumber so that start is 0; order[i] is the original index of local i.
	order := make([]int, 0, n)
	order = append(order, startIdx)
	for i := 0; i < n; i++ {
		if i != startIdx {
			order = append(order, i)
		}
	}
	dist := renumber(direct, order)

	last, cost, prev, ok := heldKarp(dist, n, ar, o.ReturnToStart)
	if !ok {
		return Result[N, W]{}, fmt.Errorf("%s(%v): %w", methodHamiltonian, start, ErrNoSolution)
	}

	// Backward walk from (full, last) to the start vertex.
	path := make([]N, 0, n+1)
	mask := 1<<n - 1
	for v := last; v != 0; {
		path = append(path, vertices[order[v]])
		u := int(prev[(mask>>1)*n+v])
		mask ^= 1 << v
		v = u
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if o.ReturnToStart {
		path = append(path, start)
	}

	return Result[N, W]{Path: path, Cost: cost, Closed: o.ReturnToStart}, nil
}

// renumber copies the direct matrix into local numbering: dist[a*n+b] is the
// weight between original vertices order[a] and order[b].
func renumber[W any](direct *matrix.Square[W], order []int) []W {
	n := len(order)
	rows := direct.Rows()
	dist := make([]W, n*n)
	for a := 0; a < n; a++ {
		src := rows[order[a]]
		for b := 0; b < n; b++ {
			dist[a*n+b] = src[order[b]]
		}
	}

	return dist
}

// heldKarp fills the DP table over local numbering (start = 0) and picks the
// best endpoint. It returns that endpoint, the total cost (closing edge
// included when closed), the predecessor table, and false when every final
// candidate is unreachable.
func heldKarp[W any](dist []W, n int, ar weight.Arith[W], closed bool) (int, W, []int32, bool) {
	inf := ar.Inf()
	rows := 1 << (n - 1)

	cost := make([]W, rows*n)
	prev := make([]int32, rows*n)
	for i := range cost {
		cost[i] = inf
		prev[i] = -1
	}
	cost[0] = ar.Zero() // row 0 is mask {start}, endpoint start

	var (
		row, v, u        int
		mask, prevMask   int
		base, prevBase   int
		best, pc, e, cnd W
		bestU            int
	)
	for row = 1; row < rows; row++ {
		mask = row<<1 | 1
		base = row * n

		for v = 1; v < n; v++ {
			if mask&(1<<v) == 0 {
				continue
			}
			prevMask = mask ^ (1 << v)
			prevBase = (prevMask >> 1) * n

			best, bestU = inf, -1
			for u = 0; u < n; u++ {
				if prevMask&(1<<u) == 0 {
					continue
				}
				pc = cost[prevBase+u]
				if weight.IsInf(ar, pc) {
					continue // (prevMask, u) unreachable
				}
				e = dist[u*n+v]
				if weight.IsInf(ar, e) {
					continue // no edge u→v
				}
				cnd = ar.Add(pc, e)
				if ar.Less(cnd, best) {
					best, bestU = cnd, u
				}
			}
			if bestU >= 0 {
				cost[base+v] = best
				prev[base+v] = int32(bestU)
			}
		}
	}

	// Final selection over endpoints of the full mask.
	fullBase := (rows - 1) * n
	best, last := inf, -1
	for v = 1; v < n; v++ {
		total := cost[fullBase+v]
		if weight.IsInf(ar, total) {
			continue
		}
		if closed {
			e = dist[v*n]
			if weight.IsInf(ar, e) {
				continue // no edge back to start
			}
			total = ar.Add(total, e)
		}
		if ar.Less(total, best) {
			best, last = total, v
		}
	}
	if last < 0 {
		return 0, inf, nil, false
	}

	return last, best, prev, true
}
