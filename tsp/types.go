package tsp

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxMaskVertices is the largest vertex count whose subsets fit in an int
// bitmask together with the row arithmetic used by the DP table.
const MaxMaskVertices = bits.UintSize - 2

// Sentinel errors returned by the solvers.
var (
	// ErrNoSolution is returned when no Hamiltonian path (or, with
	// ReturnToStart, no Hamiltonian cycle) exists under the given edges.
	ErrNoSolution = errors.New("tsp: no hamiltonian path")

	// ErrStartNotFound is returned when the start vertex is not in the graph.
	// It wraps ErrNoSolution: an invalid start simply has no solution.
	ErrStartNotFound = fmt.Errorf("%w: start vertex not in graph", ErrNoSolution)

	// ErrTooManyVertices is returned when the graph exceeds MaxMaskVertices or
	// the caller-provided WithMaxVertices bound.
	ErrTooManyVertices = errors.New("tsp: too many vertices for exact search")

	// ErrMissingEdge is returned by PathCost when two consecutive path
	// vertices are not joined by a direct edge.
	ErrMissingEdge = errors.New("tsp: missing edge on path")

	// ErrEmptyPath is returned by PathCost for a zero-length path.
	ErrEmptyPath = errors.New("tsp: empty path")

	// ErrBadMaxVertices indicates WithMaxVertices was given a negative bound.
	ErrBadMaxVertices = errors.New("tsp: MaxVertices must be non-negative")
)

// Result holds the outcome of a solver.
type Result[N comparable, W any] struct {
	// Path lists the vertices in visiting order, starting at the start vertex.
	// For n ≥ 2 vertices len(Path) == n, or n+1 when Closed.
	Path []N

	// Cost is the sum of the direct edge weights along Path.
	Cost W

	// Closed reports whether Path returns to its first vertex.
	Closed bool
}

// Options configures Hamiltonian.
//
// ReturnToStart – require a cycle back to the start vertex.
// MaxVertices   – refuse graphs larger than this with ErrTooManyVertices;
//
//	0 (default) means no bound other than MaxMaskVertices.
type Options struct {
	ReturnToStart bool
	MaxVertices   int
}

// Option represents a functional option for configuring Hamiltonian.
type Option func(*Options)

// DefaultOptions returns open-path search with no caller bound.
func DefaultOptions() Options {
	return Options{}
}

// ReturnToStart requires the result to close back to the start vertex.
func ReturnToStart() Option {
	return func(o *Options) { o.ReturnToStart = true }
}

// WithReturnToStart sets ReturnToStart from a flag value.
func WithReturnToStart(closed bool) Option {
	return func(o *Options) { o.ReturnToStart = closed }
}

// WithMaxVertices bounds the instance size accepted by Hamiltonian.
// Panics on a negative bound, which is a programmer error.
func WithMaxVertices(k int) Option {
	if k < 0 {
		panic(ErrBadMaxVertices.Error())
	}

	return func(o *Options) { o.MaxVertices = k }
}
