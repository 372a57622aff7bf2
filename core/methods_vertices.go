// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/RemoveVertex/Vertices/VertexCount/Neighbors.
// Determinism:
//   - Vertices() and Neighbors() follow insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddVertex inserts v if absent. Re-adding an existing vertex is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph[N, W]) AddVertex(v N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(v)
}

// addVertexLocked registers v; caller holds mu for writing.
func (g *Graph[N, W]) addVertexLocked(v N) {
	if _, ok := g.index[v]; ok {
		return
	}
	g.index[v] = len(g.order)
	g.order = append(g.order, v)
	g.adj[v] = make(map[N]W)
}

// HasVertex reports whether v exists.
// Complexity: O(1).
func (g *Graph[N, W]) HasVertex(v N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[v]

	return ok
}

// RemoveVertex deletes v together with every incident edge.
//
// Steps:
//  1. Lock mu; ErrVertexNotFound if v is absent.
//  2. Drop outgoing edges (and their mirrors when undirected).
//  3. Drop incoming edges from every other adjacency bucket.
//  4. Splice v out of the insertion order and re-number the tail.
//
// Complexity: O(V + deg(v)).
func (g *Graph[N, W]) RemoveVertex(v N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, ok := g.index[v]
	if !ok {
		return fmt.Errorf("RemoveVertex(%v): %w", v, ErrVertexNotFound)
	}

	// Outgoing edges. In undirected mode each one also lives in adj[to][v].
	for to := range g.adj[v] {
		if !g.directed && to != v {
			delete(g.adj[to], v)
		}
		g.edgeCount--
	}
	delete(g.adj, v)

	// Incoming edges only exist separately in directed mode.
	if g.directed {
		for _, bucket := range g.adj {
			if _, in := bucket[v]; in {
				delete(bucket, v)
				g.edgeCount--
			}
		}
	}

	delete(g.index, v)
	g.order = append(g.order[:pos], g.order[pos+1:]...)
	for i := pos; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}

	return nil
}

// Vertices returns a copy of all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[N, W]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph[N, W]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Neighbors returns every vertex reachable from v over one edge, in insertion
// order. A self-loop lists v itself.
//
// Complexity: O(V).
func (g *Graph[N, W]) Neighbors(v N) ([]N, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", v, ErrVertexNotFound)
	}

	out := make([]N, 0, len(bucket))
	for _, u := range g.order {
		if _, linked := bucket[u]; linked {
			out = append(out, u)
		}
	}

	return out, nil
}
