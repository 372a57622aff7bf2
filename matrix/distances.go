package matrix

import "github.com/katalvlaran/lvtour/weight"

// Pair is an ordered vertex pair, the key type of Distances.Map.
type Pair[N comparable] struct {
	From, To N
}

// Distances is the all-pairs result of FloydWarshall: a Square matrix plus
// the vertex numbering used for its rows and columns.
// A Distances value is immutable after construction and safe for concurrent reads.
type Distances[N comparable, W any] struct {
	vertices []N
	index    map[N]int
	m        *Square[W]
	ar       weight.Arith[W]
}

func newDistances[N comparable, W any](vertices []N, m *Square[W], ar weight.Arith[W]) *Distances[N, W] {
	index := make(map[N]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	return &Distances[N, W]{vertices: vertices, index: index, m: m, ar: ar}
}

// Len returns the number of vertices.
func (d *Distances[N, W]) Len() int { return len(d.vertices) }

// Vertices returns a copy of the row/column order.
func (d *Distances[N, W]) Vertices() []N {
	out := make([]N, len(d.vertices))
	copy(out, d.vertices)

	return out
}

// Index returns the row/column of v.
func (d *Distances[N, W]) Index(v N) (int, bool) {
	i, ok := d.index[v]

	return i, ok
}

// Distance returns the shortest-path weight from→to. The boolean is false
// only when either vertex is unknown; an unreachable pair returns (Inf(), true).
// Complexity: O(1).
func (d *Distances[N, W]) Distance(from, to N) (W, bool) {
	i, ok := d.index[from]
	if !ok {
		return d.ar.Inf(), false
	}
	j, ok := d.index[to]
	if !ok {
		return d.ar.Inf(), false
	}

	return d.m.data[i*d.m.n+j], true
}

// Reachable reports whether a path from→to exists.
func (d *Distances[N, W]) Reachable(from, to N) bool {
	w, ok := d.Distance(from, to)

	return ok && !weight.IsInf(d.ar, w)
}

// Matrix returns a copy of the underlying distance matrix.
func (d *Distances[N, W]) Matrix() *Square[W] {
	return d.m.Clone()
}

// Map returns every ordered pair with its distance, unreachable pairs included.
// Complexity: O(n²).
func (d *Distances[N, W]) Map() map[Pair[N]]W {
	n := len(d.vertices)
	out := make(map[Pair[N]]W, n*n)
	for i, from := range d.vertices {
		for j, to := range d.vertices {
			out[Pair[N]{From: from, To: to}] = d.m.data[i*n+j]
		}
	}

	return out
}
