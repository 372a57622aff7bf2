package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvtour/core"
)

// ExampleGraph builds a small directed road network and queries it.
func ExampleGraph() {
	g := core.NewGraph[string, int](core.WithDirected(true))
	_ = g.AddEdge("depot", "north", 4)
	_ = g.AddEdge("north", "east", 2)
	_ = g.AddEdge("east", "depot", 5)

	w, ok := g.Weight("north", "east")
	fmt.Println(g.Vertices(), g.EdgeCount())
	fmt.Println(w, ok)

	_, ok = g.Weight("east", "north")
	fmt.Println(ok)
	// Output:
	// [depot north east] 3
	// 2 true
	// false
}
