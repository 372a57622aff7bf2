// Package dijkstra implements Dijkstra's single-source shortest paths on
// weighted graphs with non-negative edge weights.
//
// Complexity:
//
//   - Time:  O(V² + E log V). Out-neighbors come from Neighbors when the
//     graph has it (core.Graph does), else from a Weight scan over all vertices.
//   - Space: O(V + E) with the lazy decrease-key heap.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges detects negative weights and fails fast.
//   - Sums go through weight.Arith.Add, so distances saturate at Inf()
//     instead of wrapping.
//   - Stale heap entries are skipped on pop (lazy decrease-key).
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/weight"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Errors:
//   - ErrVertexNotFound if source is not in g.
//   - ErrNegativeWeight if any edge weight is below ar.Zero().
//
// On graphs without negative weights the distances equal the source row of
// matrix.FloydWarshall.
func Dijkstra[N comparable, W any](g core.WeightedGraph[N, W], ar weight.Arith[W], source N, opts ...Option[W]) (*Result[N, W], error) {
	var cfg Options[W]
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.Vertices()
	found := false
	for _, v := range vertices {
		if v == source {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("Dijkstra(%v): %w", source, ErrVertexNotFound)
	}

	r := &runner[N, W]{
		g:       g,
		ar:      ar,
		cfg:     cfg,
		all:     vertices,
		dist:    make(map[N]W, len(vertices)),
		visited: make(map[N]bool, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[N]N, len(vertices))
	}

	// Pre-scan for negative weights.
	for _, u := range vertices {
		for _, v := range r.neighbors(u) {
			if w, _ := g.Weight(u, v); ar.Less(w, ar.Zero()) {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, v, w)
			}
		}
	}

	r.run(source)

	return &Result[N, W]{Source: source, Dist: r.dist, Prev: r.prev, ar: ar}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable, W any] struct {
	g       core.WeightedGraph[N, W]
	ar      weight.Arith[W]
	cfg     Options[W]
	all     []N // vertex order, fixed at call time
	dist    map[N]W
	prev    map[N]N
	visited map[N]bool
}

// neighbors returns the out-neighbors of u (u itself only via a self-loop).
func (r *runner[N, W]) neighbors(u N) []N {
	return core.Successors(r.g, u)
}

func (r *runner[N, W]) run(source N) {
	inf := r.ar.Inf()
	for _, v := range r.all {
		r.dist[v] = inf
	}
	r.dist[source] = r.ar.Zero()

	pq := &nodePQ[N, W]{ar: r.ar}
	heap.Push(pq, nodeItem[N, W]{id: source, dist: r.ar.Zero()})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem[N, W])
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true

		for _, v := range r.neighbors(u) {
			if v == u || r.visited[v] {
				continue
			}
			w, _ := r.g.Weight(u, v)
			nd := r.ar.Add(r.dist[u], w)
			if r.cfg.MaxDistance != nil && r.ar.Less(*r.cfg.MaxDistance, nd) {
				continue
			}
			if !r.ar.Less(nd, r.dist[v]) {
				continue
			}
			r.dist[v] = nd
			if r.prev != nil {
				r.prev[v] = u
			}
			heap.Push(pq, nodeItem[N, W]{id: v, dist: nd})
		}
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem[N comparable, W any] struct {
	id   N
	dist W
}

// nodePQ is a min-heap of nodeItem ordered by dist under ar.Less.
type nodePQ[N comparable, W any] struct {
	items []nodeItem[N, W]
	ar    weight.Arith[W]
}

func (pq *nodePQ[N, W]) Len() int           { return len(pq.items) }
func (pq *nodePQ[N, W]) Less(i, j int) bool { return pq.ar.Less(pq.items[i].dist, pq.items[j].dist) }
func (pq *nodePQ[N, W]) Swap(i, j int)      { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }
func (pq *nodePQ[N, W]) Push(x any)         { pq.items = append(pq.items, x.(nodeItem[N, W])) }

func (pq *nodePQ[N, W]) Pop() any {
	n := len(pq.items)
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]

	return item
}
