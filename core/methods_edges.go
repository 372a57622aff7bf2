// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/SetEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() is ordered by (position of From, position of To).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddEdge inserts the edge from→to with weight w, creating missing endpoints.
// In undirected mode the edge is also visible as to→from.
//
// Errors:
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if from→to already exists.
//
// Complexity: O(1) amortized.
func (g *Graph[N, W]) AddEdge(from, to N, w W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%v→%v): %w", from, to, ErrLoopNotAllowed)
	}
	if _, exists := g.adj[from][to]; exists {
		return fmt.Errorf("AddEdge(%v→%v): %w", from, to, ErrMultiEdgeNotAllowed)
	}
	g.linkLocked(from, to, w)

	return nil
}

// SetEdge inserts from→to or overwrites its weight if it already exists.
// Same loop policy as AddEdge.
func (g *Graph[N, W]) SetEdge(from, to N, w W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return fmt.Errorf("SetEdge(%v→%v): %w", from, to, ErrLoopNotAllowed)
	}
	if _, exists := g.adj[from][to]; exists {
		g.adj[from][to] = w
		if !g.directed {
			g.adj[to][from] = w
		}

		return nil
	}
	g.linkLocked(from, to, w)

	return nil
}

// linkLocked stores a brand-new edge; caller holds mu and has checked policy.
func (g *Graph[N, W]) linkLocked(from, to N, w W) {
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adj[from][to] = w
	if !g.directed {
		g.adj[to][from] = w
	}
	g.edgeCount++
}

// RemoveEdge deletes from→to (and its mirror when undirected).
// Complexity: O(1).
func (g *Graph[N, W]) RemoveEdge(from, to N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[from][to]; !ok {
		return fmt.Errorf("RemoveEdge(%v→%v): %w", from, to, ErrEdgeNotFound)
	}
	delete(g.adj[from], to)
	if !g.directed {
		delete(g.adj[to], from)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether from→to exists.
func (g *Graph[N, W]) HasEdge(from, to N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[from][to]

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// Unknown vertices simply report (zero, false).
// Complexity: O(1).
func (g *Graph[N, W]) Weight(from, to N) (W, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[from][to]

	return w, ok
}

// EdgeCount returns the number of logical edges (an undirected edge counts once).
func (g *Graph[N, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns a snapshot of all edges. Undirected edges appear once, with
// From being the endpoint that was inserted first.
// Complexity: O(V²) worst case over the order × adjacency scan.
func (g *Graph[N, W]) Edges() []Edge[N, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N, W], 0, g.edgeCount)
	for i, from := range g.order {
		bucket := g.adj[from]
		for j, to := range g.order {
			if !g.directed && j < i {
				continue // mirror of an edge already emitted
			}
			if w, ok := bucket[to]; ok {
				out = append(out, Edge[N, W]{From: from, To: to, Weight: w})
			}
		}
	}

	return out
}
