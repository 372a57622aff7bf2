// File: methods_clone.go
// Role: Non-mutating copies: Clone and InducedSubgraph.
// Concurrency:
//   - Read lock on the source; the result is a fresh, unshared graph.

package core

// Clone returns a deep copy of g with the same flags, vertices (same order)
// and edges.
// Complexity: O(V + E).
func (g *Graph[N, W]) Clone() *Graph[N, W] {
	return InducedSubgraph(g, func(N) bool { return true })
}

// InducedSubgraph returns a new graph holding only the vertices for which
// keep returns true, and every edge whose endpoints are both kept. The input
// graph is not mutated; vertex order is preserved.
//
// Complexity: O(V + E).
func InducedSubgraph[N comparable, W any](g *Graph[N, W], keep func(N) bool) *Graph[N, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph[N, W]{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		index:      make(map[N]int, len(g.order)),
		adj:        make(map[N]map[N]W, len(g.order)),
	}
	for _, v := range g.order {
		if keep(v) {
			out.addVertexLocked(v)
		}
	}

	for i, from := range out.order {
		for j, to := range out.order {
			if !g.directed && j < i {
				continue
			}
			if w, ok := g.adj[from][to]; ok {
				out.linkLocked(from, to, w)
			}
		}
	}

	return out
}
