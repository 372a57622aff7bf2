// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices), wf != nil (else ErrNilWeightFn).
//   • Emits edges i -> i+1 for i=0..n-2; Path(1) is a single isolated vertex.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds the simple path P_n.
func Path[W any](n int, wf WeightFn[W]) Constructor[W] {
	return func(g *core.Graph[string, W], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if wf == nil {
			return fmt.Errorf("%s: %w", methodPath, ErrNilWeightFn)
		}

		ids := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, wf, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
