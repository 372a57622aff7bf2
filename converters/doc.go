// Package converters adapts between core graphs and gonum/graph.
//
// FromGonum wraps any gonum graph.Weighted as a core.WeightedGraph keyed by
// gonum node ID, so matrix.FloydWarshall and tsp.Hamiltonian run on gonum
// data without copying it. ToGonum goes the other way: it loads a
// core.WeightedGraph into a simple.WeightedDirectedGraph (vertex i becomes
// node ID i) for gonum's own algorithms.
//
// Both directions treat the diagonal as "no edge": gonum reports a self
// weight for x==y, core graphs never do.
package converters
