// SPDX-License-Identifier: MIT
// Package: lvtour/core
//
// types.go — WeightedGraph capability, Graph/Edge types, options, sentinels.
//
// Concurrency:
//   - Graph state lives behind one sync.RWMutex (mu). Reads take RLock,
//     mutations take Lock. No method calls another exported method while
//     holding the lock.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge for an ordered pair that already has one.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// WeightedGraph is the read-only capability the algorithms depend on.
//
// Vertices must return every vertex exactly once, in an order that is stable
// for the lifetime of a computation (algorithms number vertices by position).
// Weight reports the direct edge weight from→to, if such an edge exists.
type WeightedGraph[N comparable, W any] interface {
	Vertices() []N
	Weight(from, to N) (W, bool)
}

// Edge is a value snapshot of one stored edge.
// For undirected graphs each edge is reported once, From being the endpoint
// inserted first.
type Edge[N comparable, W any] struct {
	From   N
	To     N
	Weight W
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	directed   bool
	allowLoops bool
}

// WithDirected sets whether edges are one-way (true) or mirrored (false).
// Default: undirected.
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) { cfg.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(cfg *graphConfig) { cfg.allowLoops = true }
}

// Graph is a generic, thread-safe simple graph with one optional weight per
// ordered vertex pair. It implements WeightedGraph.
type Graph[N comparable, W any] struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	order     []N           // vertex insertion order
	index     map[N]int     // vertex → position in order
	adj       map[N]map[N]W // adj[from][to] = weight (mirrored when undirected)
	edgeCount int           // logical edges; an undirected edge counts once
}

// NewGraph creates an empty Graph. By default the graph is undirected and
// rejects self-loops.
// Complexity: O(len(opts)).
func NewGraph[N comparable, W any](opts ...GraphOption) *Graph[N, W] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, W]{
		directed:   cfg.directed,
		allowLoops: cfg.allowLoops,
		index:      make(map[N]int),
		adj:        make(map[N]map[N]W),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph[N, W]) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph[N, W]) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
