// Package tsp finds minimum-cost Hamiltonian paths and cycles exactly.
//
// Hamiltonian runs the Held–Karp bitmask dynamic program over any
// core.WeightedGraph with any weight.Arith:
//
//   - Complexity: O(n²·2ⁿ)
//   - Memory:     O(n·2ⁿ⁻¹)
//   - Only direct edges are used; a missing edge is never replaced by a
//     shortest path through other vertices.
//
// With ReturnToStart() the result is a cycle start → … → start; without it,
// a path from start that ends wherever the cost is minimal.
//
// No feasible path (or no closing edge) is a normal outcome reported as
// ErrNoSolution. A start vertex absent from the graph reports
// ErrStartNotFound, which also matches ErrNoSolution under errors.Is.
//
// The state space is exponential and Hamiltonian imposes no ceiling of its
// own beyond the bitmask width (MaxMaskVertices). Callers choose a practical
// bound with WithMaxVertices; a few dozen vertices is already out of reach.
//
// Exact is the matrix-first entry point: a [][]W distance table where Inf()
// marks a missing edge, solved as a closed tour from vertex 0.
package tsp
