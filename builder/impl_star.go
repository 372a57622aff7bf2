// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices), wf != nil (else ErrNilWeightFn).
//   • Vertex 0 is the hub; emits 0 -> i for i=1..n-1 (spokes point outward
//     on a directed graph).
//   • A star with n ≥ 4 has no Hamiltonian path, which makes it the standard
//     negative fixture for the tour solver.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star graph with one hub and n-1 leaves.
func Star[W any](n int, wf WeightFn[W]) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if wf == nil {
			return fmt.Errorf("%s: %w", methodStar, ErrNilWeightFn)
		}

		ids := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, wf, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
