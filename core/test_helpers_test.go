// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvtour/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight7 = 7
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
	NCloners          = 20
)

// newSquare builds A-B-C-D-A (plus the chord A-C when chord is true).
func newSquare(t *testing.T, directed, chord bool) *core.Graph[string, int64] {
	t.Helper()

	g := core.NewGraph[string, int64](core.WithDirected(directed))
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
	require.NoError(t, g.AddEdge(VertexB, VertexC, Weight2))
	require.NoError(t, g.AddEdge(VertexC, VertexD, Weight3))
	require.NoError(t, g.AddEdge(VertexD, VertexA, Weight7))
	if chord {
		require.NoError(t, g.AddEdge(VertexA, VertexC, Weight3))
	}

	return g
}
