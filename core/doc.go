// Package core provides the graph abstraction consumed by every lvtour
// algorithm, plus a thread-safe in-memory implementation.
//
// The algorithms only need two things from a graph:
//
//	type WeightedGraph[N comparable, W any] interface {
//	    Vertices() []N                    // finite, duplicate-free, stable order
//	    Weight(from, to N) (W, bool)      // direct edge weight, if any
//	}
//
// Anything that answers those two questions can be handed to
// matrix.FloydWarshall or tsp.Hamiltonian: core.Graph, matrix.Graph (a dense
// matrix viewed as a graph) or converters.Gonum (any gonum graph).
//
// Graph[N, W] is a generic simple graph:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops); stored, but ignored by the algorithms
//   - At most one edge per ordered pair (ErrMultiEdgeNotAllowed otherwise)
//   - Deterministic iteration: Vertices(), Neighbors() and Edges() follow
//     vertex insertion order
//   - A single sync.RWMutex guards all state; every exported method is safe
//     for concurrent use.
//
// Core Methods:
//
//	AddVertex(v N)                        // O(1), idempotent
//	HasVertex(v N) bool                   // O(1)
//	RemoveVertex(v N) error               // O(V + deg(v))
//	AddEdge(from, to N, w W) error        // O(1), creates missing endpoints
//	SetEdge(from, to N, w W) error        // O(1), insert or overwrite
//	RemoveEdge(from, to N) error          // O(1)
//	HasEdge(from, to N) bool              // O(1)
//	Weight(from, to N) (W, bool)          // O(1)
//	Neighbors(v N) ([]N, error)           // O(V)
//	Vertices() []N                        // O(V)
//	Edges() []Edge[N, W]                  // O(V + E)
//	Clone() *Graph[N, W]                  // O(V + E)
//	InducedSubgraph(g, keep) *Graph[N, W] // O(V + E)
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge for the same ordered pair
package core
