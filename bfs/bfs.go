package bfs

import (
	"github.com/katalvlaran/lvtour/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[N comparable] struct {
	id    N
	depth int
}

// BFS runs breadth-first search on g starting from start.
// Neighbors are expanded in core.Successors order, so the result is
// deterministic for a given graph.
// Returns ErrStartVertexNotFound, ErrOptionViolation, or the context error
// on cancellation.
func BFS[N comparable, W any](g core.WeightedGraph[N, W], start N, opts ...Option) (*Result[N], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := 0
	found := false
	for _, v := range g.Vertices() {
		n++
		if v == start {
			found = true
		}
	}
	if !found {
		return nil, ErrStartVertexNotFound
	}

	res := &Result[N]{
		Order:  make([]N, 0, n),
		Depth:  make(map[N]int, n),
		Parent: make(map[N]N, n),
	}
	queue := make([]queueItem[N], 0, n)
	queue = append(queue, queueItem[N]{id: start})
	res.Depth[start] = 0

	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.id)

		if o.MaxDepth > 0 && item.depth >= o.MaxDepth {
			continue
		}
		for _, nbr := range core.Successors(g, item.id) {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = item.depth + 1
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem[N]{id: nbr, depth: item.depth + 1})
		}
	}

	return res, nil
}

// ReachesAll reports whether every vertex of g is reachable from start.
// An unknown start reaches nothing.
func ReachesAll[N comparable, W any](g core.WeightedGraph[N, W], start N) bool {
	res, err := BFS(g, start)
	if err != nil {
		return false
	}

	return len(res.Order) == len(g.Vertices())
}
