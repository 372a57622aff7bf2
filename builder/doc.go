// Package builder assembles deterministic graph fixtures for the distance and
// tour solvers.
//
// A build is one call to BuildGraph: core graph options pick the direction
// mode, builder options pick the vertex ID scheme and the RNG seed, and a list
// of Constructors (Complete, Cycle, Path, Star, Grid) adds topology. Edge weights
// come from a WeightFn, so the same constructors serve int64, uint32 or
// float64 graphs alike.
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithSymbolIDs()},
//		builder.Complete(6, builder.UniformIntWeightFn[int64](1, 20)),
//	)
//
// Same options, seed and constructor order always produce the same graph.
package builder
