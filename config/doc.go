// Package config reads and writes graph instances as TOML.
//
// A file lists the vertices and weighted edges of one graph plus optional
// solver settings:
//
//	directed = true
//
//	[solver]
//	start = "depot"
//	return_to_start = true
//	max_vertices = 20
//
//	[[vertices]]
//	id = "depot"
//
//	[[edges]]
//	from = "depot"
//	to = "bakery"
//	weight = 4
//
// Edges may name vertices that are not listed under [[vertices]]; they are
// created on first use. [[vertices]] only matters for isolated vertices and
// for the vertex order, which the solvers use to break ties.
//
// Weights are int64. math.MaxInt64 is the "unreachable" sentinel of
// weight.Int64 and is rejected as an edge weight.
package config
