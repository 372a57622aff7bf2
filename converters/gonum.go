// SPDX-License-Identifier: MIT
// Package: lvtour/converters
//
// gonum.go — two-way adapters between core.WeightedGraph and gonum/graph.

package converters

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvtour/core"
)

// Number is any weight type that converts losslessly enough to float64 for
// gonum's edge weights.
type Number interface {
	constraints.Integer | constraints.Float
}

// Gonum is a read-only core.WeightedGraph view over a gonum weighted graph.
// Vertices are gonum node IDs in ascending order, captured at wrap time.
type Gonum struct {
	g   graph.Weighted
	ids []int64
}

var _ core.WeightedGraph[int64, float64] = (*Gonum)(nil)

// FromGonum wraps g. Nodes added to g afterwards are not visible through the
// view; edges are read live.
// Complexity: O(V log V).
func FromGonum(g graph.Weighted) *Gonum {
	ids := make([]int64, 0, g.Nodes().Len())
	for nodes := g.Nodes(); nodes.Next(); {
		ids = append(ids, nodes.Node().ID())
	}
	slices.Sort(ids)

	return &Gonum{g: g, ids: ids}
}

// Vertices returns the node IDs in ascending order.
func (v *Gonum) Vertices() []int64 {
	return slices.Clone(v.ids)
}

// Weight reports the weight of the edge from→to. x==y is never an edge.
func (v *Gonum) Weight(from, to int64) (float64, bool) {
	if from == to || v.g.Edge(from, to) == nil {
		return 0, false
	}

	return v.g.Weight(from, to)
}

// ToGonum copies g into a new simple.WeightedDirectedGraph. Vertex
// vertices[i] becomes node ID i; the returned slice maps IDs back. The
// graph's self weight is 0 and its absent weight +Inf, matching the way
// matrix.Direct fills a distance table. Self-loops are dropped.
//
// Undirected core graphs come out as two opposite directed edges per edge.
// Complexity: O(V²) Weight lookups.
func ToGonum[N comparable, W Number](g core.WeightedGraph[N, W]) (*simple.WeightedDirectedGraph, []N) {
	vertices := g.Vertices()
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := range vertices {
		out.AddNode(simple.Node(int64(i)))
	}

	for i, u := range vertices {
		for j, v := range vertices {
			if i == j {
				continue
			}
			w, ok := g.Weight(u, v)
			if !ok {
				continue
			}
			out.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(i)),
				T: simple.Node(int64(j)),
				W: float64(w),
			})
		}
	}

	return out, vertices
}
