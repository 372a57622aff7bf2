// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices), wf != nil (else ErrNilWeightFn).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1. On a directed
//     graph this is a one-way ring.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle[W any](n int, wf WeightFn[W]) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if wf == nil {
			return fmt.Errorf("%s: %w", methodCycle, ErrNilWeightFn)
		}

		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, wf, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
