package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/config"
	"github.com/katalvlaran/lvtour/core"
)

const (
	idsLetters = "letters"
	idsNumbers = "numbers"
)

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	shape    string
	n        int
	seed     int64
	min, max int64
	directed bool
	ids      string
	output   string
}

func newGenCmd() *cobra.Command {
	opts := genOpts{
		shape: builder.ShapeComplete,
		n:     6,
		seed:  builder.DefaultSeed,
		min:   1,
		max:   100,
		ids:   idsLetters,
	}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a graph instance as TOML",
		Long: `Generates a seeded random instance and writes it as TOML (stdout unless -o).
Weights are drawn uniformly from [--min, --max]. On a directed complete graph
the two directions of every pair get independent weights.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := generate(opts)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("generated graph",
				"shape", opts.shape, "vertices", len(f.Vertices), "edges", len(f.Edges), "seed", opts.seed)

			if opts.output == "" {
				return config.Encode(cmd.OutOrStdout(), f)
			}
			return writeFile(opts.output, func(w io.Writer) error { return config.Encode(w, f) })
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.shape, "shape", opts.shape, "topology: "+strings.Join(builder.Shapes(), ", "))
	flags.IntVarP(&opts.n, "vertices", "n", opts.n, "number of vertices")
	flags.Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	flags.Int64Var(&opts.min, "min", opts.min, "minimum edge weight")
	flags.Int64Var(&opts.max, "max", opts.max, "maximum edge weight")
	flags.BoolVar(&opts.directed, "directed", false, "generate a directed graph")
	flags.StringVar(&opts.ids, "ids", opts.ids, "vertex names: letters (A, B, …) or numbers (0, 1, …)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// generate builds the instance described by opts.
func generate(opts genOpts) (*config.File, error) {
	if opts.min < 0 || opts.max < opts.min || opts.max == math.MaxInt64 {
		return nil, fmt.Errorf("gen: need 0 ≤ --min ≤ --max, got %d and %d", opts.min, opts.max)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(opts.seed)}
	switch opts.ids {
	case idsLetters:
		bopts = append(bopts, builder.WithSymbolIDs())
	case idsNumbers:
	default:
		return nil, fmt.Errorf("gen: --ids must be %s or %s, got %q", idsLetters, idsNumbers, opts.ids)
	}

	ctor, err := builder.ByShape(opts.shape, opts.n, builder.UniformIntWeightFn(opts.min, opts.max))
	if err != nil {
		return nil, err
	}
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(opts.directed)}, bopts, ctor)
	if err != nil {
		return nil, err
	}

	return config.FromGraph(g, g.Directed()), nil
}

// writeFile creates path and hands it to write, closing it either way.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return errors.Join(write(f), f.Close())
}
