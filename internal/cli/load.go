package cli

import (
	"context"

	"github.com/katalvlaran/lvtour/config"
	"github.com/katalvlaran/lvtour/core"
)

// loadGraph reads the instance at path and builds its graph.
func loadGraph(ctx context.Context, path string) (*config.File, *core.Graph[string, int64], error) {
	logger := loggerFromContext(ctx)

	f, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := f.Graph()
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("loaded graph", "file", path, "vertices", g.VertexCount(), "edges", g.EdgeCount(), "directed", g.Directed())
	return f, g, nil
}
