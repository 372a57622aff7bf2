package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/config"
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/katalvlaran/lvtour/weight"
)

const delivery = `
directed = true

[solver]
start = "depot"
return_to_start = true
max_vertices = 12

[[vertices]]
id = "depot"

[[vertices]]
id = "bakery"

[[edges]]
from = "depot"
to = "bakery"
weight = 4

[[edges]]
from = "bakery"
to = "school"
weight = 3

[[edges]]
from = "school"
to = "depot"
weight = 5
`

func TestDecode_Delivery(t *testing.T) {
	t.Parallel()

	f, err := config.Decode(strings.NewReader(delivery))
	require.NoError(t, err)
	require.True(t, f.Directed)
	require.Equal(t, config.Solver{Start: "depot", ReturnToStart: true, MaxVertices: 12}, f.Solver)
	require.Len(t, f.Vertices, 2)
	require.Len(t, f.Edges, 3)

	g, err := f.Graph()
	require.NoError(t, err)
	require.Equal(t, []string{"depot", "bakery", "school"}, g.Vertices())
	require.True(t, g.Directed())

	res, err := tsp.Hamiltonian[string, int64](g, weight.Int64, f.Solver.Start,
		tsp.WithReturnToStart(f.Solver.ReturnToStart), tsp.WithMaxVertices(f.Solver.MaxVertices))
	require.NoError(t, err)
	require.Equal(t, []string{"depot", "bakery", "school", "depot"}, res.Path)
	require.Equal(t, int64(12), res.Cost)
}

func TestDecode_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := config.Decode(strings.NewReader("directed = true\n[solver]\nreturn_to_stat = true\n"))
	require.ErrorIs(t, err, config.ErrUnknownKey)
	require.Contains(t, err.Error(), "solver.return_to_stat")
}

func TestDecode_Syntax(t *testing.T) {
	t.Parallel()

	_, err := config.Decode(strings.NewReader("directed = \n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file config.File
		want error
	}{
		{"empty vertex id", config.File{Vertices: []config.Vertex{{ID: ""}}}, config.ErrInvalid},
		{"duplicate vertex", config.File{Vertices: []config.Vertex{{ID: "a"}, {ID: "a"}}}, config.ErrInvalid},
		{"empty endpoint", config.File{Edges: []config.Edge{{From: "a", Weight: 1}}}, config.ErrInvalid},
		{"self-loop", config.File{Edges: []config.Edge{{From: "a", To: "a", Weight: 1}}}, config.ErrInvalid},
		{"reserved weight", config.File{Edges: []config.Edge{{From: "a", To: "b", Weight: weight.Int64.Inf()}}}, config.ErrReservedWeight},
		{
			"undirected duplicate",
			config.File{Edges: []config.Edge{{From: "a", To: "b", Weight: 1}, {From: "b", To: "a", Weight: 2}}},
			config.ErrInvalid,
		},
		{"negative max_vertices", config.File{Solver: config.Solver{MaxVertices: -1}}, config.ErrInvalid},
		{"unknown start", config.File{Solver: config.Solver{Start: "x"}, Vertices: []config.Vertex{{ID: "a"}}}, config.ErrUnknownStart},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.file.Validate(), tc.want)
		})
	}

	directed := config.File{Directed: true, Edges: []config.Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "a", Weight: 2},
	}}
	require.NoError(t, directed.Validate(), "opposite directions are distinct edges")

	startOnEdge := config.File{Solver: config.Solver{Start: "b"}, Edges: []config.Edge{{From: "a", To: "b", Weight: 1}}}
	require.NoError(t, startOnEdge.Validate())
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	g := core.NewGraph[string, int64]()
	require.NoError(t, g.AddEdge("x", "y", 7))
	require.NoError(t, g.AddEdge("z", "x", -2))
	g.AddVertex("alone")

	f := config.FromGraph(g, g.Directed())
	f.Solver = config.Solver{Start: "x"}

	var buf bytes.Buffer
	require.NoError(t, config.Encode(&buf, f))

	back, err := config.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, f, back)

	g2, err := back.Graph()
	require.NoError(t, err)
	require.Equal(t, g.Vertices(), g2.Vertices())
	require.Equal(t, g.EdgeCount(), g2.EdgeCount())
	w, ok := g2.Weight("x", "z")
	require.True(t, ok)
	require.Equal(t, int64(-2), w)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "delivery.toml")
	require.NoError(t, os.WriteFile(path, []byte(delivery), 0o600))

	f, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "depot", f.Solver.Start)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[edges]]\nfrom = \"a\"\nto = \"a\"\nweight = 1\n"), 0o600))
	_, err = config.Load(bad)
	require.ErrorIs(t, err, config.ErrInvalid)
	require.Contains(t, err.Error(), "bad.toml")
}
