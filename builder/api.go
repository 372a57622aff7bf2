// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors, never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, respect the graph's
// direction mode, and stay deterministic for the same config and call order.
type Constructor[W any] func(g *core.Graph[string, W], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the sum of the constructor costs.
func BuildGraph[W any](gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor[W]) (*core.Graph[string, W], error) {
	g := core.NewGraph[string, W](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Shape names accepted by ByShape.
const (
	ShapeComplete = "complete"
	ShapeCycle    = "cycle"
	ShapePath     = "path"
	ShapeStar     = "star"
	ShapeGrid     = "grid"
)

// Shapes lists every name ByShape understands, in a stable order.
func Shapes() []string {
	return []string{ShapeComplete, ShapeCycle, ShapePath, ShapeStar, ShapeGrid}
}

// ByShape resolves a constructor by name, for callers that select topology
// at runtime (flags, config files). A grid is 4-connected with rows of
// ⌈√n⌉ cells.
func ByShape[W any](shape string, n int, wf WeightFn[W]) (Constructor[W], error) {
	switch shape {
	case ShapeComplete:
		return Complete(n, wf), nil
	case ShapeCycle:
		return Cycle(n, wf), nil
	case ShapePath:
		return Path(n, wf), nil
	case ShapeStar:
		return Star(n, wf), nil
	case ShapeGrid:
		return Grid(n, squareCols(n), Conn4, wf), nil
	default:
		return nil, fmt.Errorf("ByShape(%q): %w", shape, ErrUnknownShape)
	}
}

// addVertices inserts cfg.idFn(0..n-1) in index order and returns the IDs.
func addVertices[W any](g *core.Graph[string, W], cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}

// addEdge draws one weight and inserts u→v, tagging errors with method.
func addEdge[W any](g *core.Graph[string, W], cfg builderConfig, wf WeightFn[W], method, u, v string) error {
	w := wf(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%v): %w", method, u, v, w, err)
	}

	return nil
}
