package dijkstra

import (
	"errors"

	"github.com/katalvlaran/lvtour/weight"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, Result.Prev is filled for path reconstruction.
// MaxDistance – vertices farther than this stay unreached; nil means no cap.
type Options[W any] struct {
	ReturnPath  bool
	MaxDistance *W
}

// Option represents a functional option for configuring Dijkstra.
type Option[W any] func(*Options[W])

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath[W any]() Option[W] {
	return func(o *Options[W]) { o.ReturnPath = true }
}

// WithMaxDistance stops exploration beyond max.
func WithMaxDistance[W any](max W) Option[W] {
	return func(o *Options[W]) { o.MaxDistance = &max }
}

// Result holds single-source distances.
//
// Dist has an entry for every vertex; unreached vertices hold ar.Inf().
// Prev is nil unless WithReturnPath was given; Prev[v] is the vertex before
// v on a shortest path, absent for the source and unreached vertices.
type Result[N comparable, W any] struct {
	Source N
	Dist   map[N]W
	Prev   map[N]N

	ar weight.Arith[W]
}

// Reachable reports whether v was reached from the source.
func (r *Result[N, W]) Reachable(v N) bool {
	d, ok := r.Dist[v]

	return ok && !weight.IsInf(r.ar, d)
}

// PathTo rebuilds the shortest path source → … → v from Prev.
// It returns nil if v is unreached or Prev was not requested.
func (r *Result[N, W]) PathTo(v N) []N {
	if r.Prev == nil || !r.Reachable(v) {
		return nil
	}

	path := []N{v}
	for v != r.Source {
		v = r.Prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
