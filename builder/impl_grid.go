// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_grid.go — implementation of Grid(n, cols, conn) constructor.
//
// Contract:
//   • n ≥ 1 and cols ≥ 1 (else ErrTooFewVertices), wf != nil (else ErrNilWeightFn).
//   • Vertex i sits at cell (i%cols, i/cols); the last row may be short.
//   • Conn4 links orthogonal neighbors, Conn8 adds diagonals.
//   • Each cell only looks "forward" (E, S, SE, SW), so every neighbor pair
//     is emitted once; on a directed graph the reverse edge follows with its
//     own weight draw, as in Complete.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the ID slice.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtour/core"
)

const (
	methodGrid   = "Grid"
	minGridNodes = 1
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// forward offsets per connectivity, as {dx, dy}.
var (
	forward4 = [][2]int{{1, 0}, {0, 1}}
	forward8 = [][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
)

// Grid returns a Constructor that lays n vertices out row-major in rows of
// cols cells and links neighboring cells.
func Grid[W any](n, cols int, conn Connectivity, wf WeightFn[W]) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig) error {
		if n < minGridNodes || cols < 1 {
			return fmt.Errorf("%s: n=%d, cols=%d: %w", methodGrid, n, cols, ErrTooFewVertices)
		}
		if wf == nil {
			return fmt.Errorf("%s: %w", methodGrid, ErrNilWeightFn)
		}

		offsets := forward4
		if conn == Conn8 {
			offsets = forward8
		}

		ids := addVertices(g, cfg, n)
		directed := g.Directed()
		for i := 0; i < n; i++ {
			x, y := i%cols, i/cols
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				j := ny*cols + nx
				if nx < 0 || nx >= cols || j >= n {
					continue
				}
				if err := addEdge(g, cfg, wf, methodGrid, ids[i], ids[j]); err != nil {
					return err
				}
				if directed {
					if err := addEdge(g, cfg, wf, methodGrid, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// squareCols is the row width ByShape uses for a grid of n cells.
func squareCols(n int) int {
	if n < 1 {
		return 1
	}

	return int(math.Ceil(math.Sqrt(float64(n))))
}
