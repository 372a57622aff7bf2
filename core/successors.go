// File: successors.go
// Role: out-neighbor listing for any WeightedGraph.

package core

// neighborLister is implemented by graphs that list out-neighbors directly.
type neighborLister[N comparable] interface {
	Neighbors(v N) ([]N, error)
}

// Successors returns the vertices w with an edge v→w, in vertex order.
// It uses g's Neighbors method when present (Graph has one) and otherwise
// probes Weight against every vertex. Unknown v yields nil.
//
// Complexity: O(V) Weight probes in the fallback.
func Successors[N comparable, W any](g WeightedGraph[N, W], v N) []N {
	if nl, ok := g.(neighborLister[N]); ok {
		out, _ := nl.Neighbors(v)

		return out
	}

	var out []N
	for _, w := range g.Vertices() {
		if _, ok := g.Weight(v, w); ok {
			out = append(out, w)
		}
	}

	return out
}
