package dot

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

// Options configures ToDOT.
type Options[N comparable] struct {
	// Name is the graph identifier; "G" when empty.
	Name string

	// Highlight is a vertex sequence (typically a tsp.Result.Path) whose
	// consecutive edges are drawn bold. Its first vertex is drawn double.
	Highlight []N
}

const (
	highlightColor = "crimson"
	defaultName    = "G"
)

// directed is implemented by core.Graph; other WeightedGraphs are treated
// as directed.
type directed interface {
	Directed() bool
}

// ToDOT converts g to Graphviz DOT text. Vertices appear in g.Vertices()
// order, edges in (from, to) vertex order. An undirected core.Graph becomes a
// "graph" with each edge written once.
// Complexity: O(V²) Weight lookups.
func ToDOT[N comparable, W any](g core.WeightedGraph[N, W], opts Options[N]) string {
	undirected := false
	if d, ok := g.(directed); ok {
		undirected = !d.Directed()
	}
	kind, arrow := "digraph", "->"
	if undirected {
		kind, arrow = "graph", "--"
	}
	name := opts.Name
	if name == "" {
		name = defaultName
	}

	type pair struct{ u, v N }
	hot := make(map[pair]bool, len(opts.Highlight))
	for i := 1; i < len(opts.Highlight); i++ {
		u, v := opts.Highlight[i-1], opts.Highlight[i]
		hot[pair{u, v}] = true
		if undirected {
			hot[pair{v, u}] = true
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %q {\n", kind, name)
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	vertices := g.Vertices()
	for _, v := range vertices {
		attrs := ""
		if len(opts.Highlight) > 0 && v == opts.Highlight[0] {
			attrs = fmt.Sprintf(" [shape=doublecircle, color=%s]", highlightColor)
		}
		fmt.Fprintf(&buf, "  %q%s;\n", fmt.Sprint(v), attrs)
	}

	buf.WriteString("\n")
	for i, u := range vertices {
		for j, v := range vertices {
			if i == j || (undirected && j < i) {
				continue
			}
			w, ok := g.Weight(u, v)
			if !ok {
				continue
			}
			attrs := fmt.Sprintf("label=%q", fmt.Sprint(w))
			if hot[pair{u, v}] {
				attrs += fmt.Sprintf(", color=%s, penwidth=2.5", highlightColor)
			}
			fmt.Fprintf(&buf, "  %q %s %q [%s];\n", fmt.Sprint(u), arrow, fmt.Sprint(v), attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
