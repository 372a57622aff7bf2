// SPDX-License-Identifier: MIT
// Package: lvtour/config
//
// config.go — TOML schema, decoding, validation, and conversion to core.Graph.

package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvtour/core"
)

// Sentinel errors returned by Decode and Validate.
var (
	// ErrUnknownKey indicates a key the schema does not define (usually a typo).
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid indicates a structurally invalid file: empty or duplicate
	// vertex IDs, self-loops, duplicate edges, negative max_vertices.
	ErrInvalid = errors.New("config: invalid graph file")

	// ErrReservedWeight indicates an edge weight equal to the unreachable sentinel.
	ErrReservedWeight = errors.New("config: weight is reserved for unreachable")

	// ErrUnknownStart indicates solver.start names a vertex the graph does not have.
	ErrUnknownStart = errors.New("config: solver start vertex not in graph")
)

// File is the on-disk form of one graph instance.
type File struct {
	Directed bool     `toml:"directed"`
	Solver   Solver   `toml:"solver"`
	Vertices []Vertex `toml:"vertices"`
	Edges    []Edge   `toml:"edges"`
}

// Solver holds the tour settings stored alongside a graph. Command-line flags
// override them.
type Solver struct {
	Start         string `toml:"start,omitempty"`
	ReturnToStart bool   `toml:"return_to_start"`
	MaxVertices   int    `toml:"max_vertices,omitempty"`
}

// Vertex declares one vertex.
type Vertex struct {
	ID string `toml:"id"`
}

// Edge declares one weighted edge. In an undirected file it connects both ways.
type Edge struct {
	From   string `toml:"from"`
	To     string `toml:"to"`
	Weight int64  `toml:"weight"`
}

// Load reads and validates the file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses TOML from r, rejects unknown keys, and validates the result.
func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the structural rules Graph relies on.
func (f *File) Validate() error {
	if f.Solver.MaxVertices < 0 {
		return fmt.Errorf("%w: max_vertices=%d is negative", ErrInvalid, f.Solver.MaxVertices)
	}

	known := make(map[string]bool, len(f.Vertices))
	for i, v := range f.Vertices {
		if v.ID == "" {
			return fmt.Errorf("%w: vertices[%d] has an empty id", ErrInvalid, i)
		}
		if known[v.ID] {
			return fmt.Errorf("%w: vertex %q declared twice", ErrInvalid, v.ID)
		}
		known[v.ID] = true
	}

	type pair struct{ from, to string }
	seen := make(map[pair]bool, len(f.Edges))
	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edges[%d] has an empty endpoint", ErrInvalid, i)
		}
		if e.From == e.To {
			return fmt.Errorf("%w: edges[%d] is a self-loop on %q", ErrInvalid, i, e.From)
		}
		if e.Weight == math.MaxInt64 {
			return fmt.Errorf("%w: edges[%d] %s→%s", ErrReservedWeight, i, e.From, e.To)
		}
		p := pair{e.From, e.To}
		if !f.Directed && p.to < p.from {
			p = pair{e.To, e.From}
		}
		if seen[p] {
			return fmt.Errorf("%w: edge %s→%s declared twice", ErrInvalid, e.From, e.To)
		}
		seen[p] = true
		known[e.From], known[e.To] = true, true
	}

	if s := f.Solver.Start; s != "" && !known[s] {
		return fmt.Errorf("%w: %q", ErrUnknownStart, s)
	}
	return nil
}

// Graph builds the core graph described by f. Declared vertices come first,
// in file order, followed by any vertices first seen on an edge.
func (f *File) Graph() (*core.Graph[string, int64], error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph[string, int64](core.WithDirected(f.Directed))
	for _, v := range f.Vertices {
		g.AddVertex(v.ID)
	}
	for _, e := range f.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return g, nil
}

// Encode writes f as TOML.
func Encode(w io.Writer, f *File) error {
	return toml.NewEncoder(w).Encode(f)
}

// FromGraph captures g as a File. Every vertex is declared so that order and
// isolated vertices survive a round trip. In undirected mode each edge is
// written once, from the earlier vertex.
func FromGraph(g core.WeightedGraph[string, int64], directed bool) *File {
	vertices := g.Vertices()
	f := &File{Directed: directed, Vertices: make([]Vertex, len(vertices))}
	for i, v := range vertices {
		f.Vertices[i] = Vertex{ID: v}
	}

	for i, u := range vertices {
		for j, v := range vertices {
			if i == j || (!directed && j < i) {
				continue
			}
			if w, ok := g.Weight(u, v); ok {
				f.Edges = append(f.Edges, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	return f
}
