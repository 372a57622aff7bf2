// Package bfs walks a graph breadth-first from one start vertex.
//
// Only edge presence matters: Result.Depth counts hops, not weight. The tour
// solver uses ReachesAll as a cheap necessary condition before its
// exponential search, since a Hamiltonian path from start must reach every
// vertex.
//
// Complexity: O(V²) neighbor probes in the worst case.
package bfs
