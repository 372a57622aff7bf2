// Package lvtour computes all-pairs shortest distances and exact
// Hamiltonian paths and cycles over small weighted graphs.
//
// What is inside:
//
//	weight/     — the Arith contract: zero, infinity, saturating add, order
//	core/       — a thread-safe generic Graph[N, W] and the WeightedGraph view
//	matrix/     — square matrices, Floyd–Warshall (copying and in-place)
//	tsp/        — Held–Karp: Hamiltonian path or cycle, plus a matrix front-end
//	dijkstra/   — single-source shortest paths on non-negative weights
//	bfs/        — unweighted traversal and the reachability pre-check
//	builder/    — seeded fixtures: Complete, Cycle, Path, Star, Grid
//	converters/ — adapters to and from gonum graphs
//	dot/        — Graphviz DOT export and SVG/PNG rendering
//	config/     — TOML instance files
//
// The lvtour command (cmd/lvtour) wires these together: gen writes an
// instance, distances prints the Floyd–Warshall table, tour solves it and
// render draws it.
//
// Weights are never compared or added directly: every algorithm takes a
// weight.Arith[W], so "no edge" is Inf rather than a magic number and
// Inf+x stays Inf instead of wrapping.
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    D──3──C
//
//	tsp.Hamiltonian(g, weight.Int64, "A", tsp.ReturnToStart())
//	// [A D C B A], cost 10 (both directions tie; the lower-index last stop wins)
//
//	go get github.com/katalvlaran/lvtour
package lvtour
