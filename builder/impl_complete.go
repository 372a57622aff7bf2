// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices), wf != nil (else ErrNilWeightFn).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j in lexicographic order.
//     On a directed graph j→i is added too, with its own weight draw, so
//     the two directions of a pair are independent.
//
// Complexity:
//   • Time: O(n²). Space: O(n) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete[W any](n int, wf WeightFn[W]) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if wf == nil {
			return fmt.Errorf("%s: %w", methodComplete, ErrNilWeightFn)
		}

		ids := addVertices(g, cfg, n)
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, wf, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if directed {
					if err := addEdge(g, cfg, wf, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
