// Package dot exports weighted graphs as Graphviz DOT and renders them.
//
// ToDOT writes every vertex and every direct edge, labelled with its weight.
// A tour or path passed as Options.Highlight is drawn bold and coloured, so
// the result of tsp.Hamiltonian can be inspected on top of its graph.
//
// Render lays the DOT source out with the Graphviz library bundled by
// github.com/goccy/go-graphviz; no external "dot" binary is needed.
//
//	src := dot.ToDOT[string, int64](g, dot.Options[string]{Highlight: res.Path})
//	f, _ := os.Create("tour.svg")
//	err := dot.Render(ctx, src, dot.SVG, f)
package dot
