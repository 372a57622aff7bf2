package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/config"
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/katalvlaran/lvtour/weight"
)

// tourOpts holds the solver flags shared by tour and render --tour. Flags
// that were not set leave the file's [solver] values in place.
type tourOpts struct {
	start       string
	cycle       bool
	maxVertices int
}

func (o *tourOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.start, "start", "", "start vertex (default: solver.start, else the first vertex)")
	cmd.Flags().BoolVar(&o.cycle, "cycle", false, "require the tour to return to the start vertex")
	cmd.Flags().IntVar(&o.maxVertices, "max-vertices", 0, "refuse graphs with more vertices (0 = no limit)")
}

// resolve merges the flags that were set over s.
func (o *tourOpts) resolve(cmd *cobra.Command, s config.Solver) config.Solver {
	if cmd.Flags().Changed("start") {
		s.Start = o.start
	}
	if cmd.Flags().Changed("cycle") {
		s.ReturnToStart = o.cycle
	}
	if cmd.Flags().Changed("max-vertices") {
		s.MaxVertices = o.maxVertices
	}
	return s
}

func newTourCmd() *cobra.Command {
	var opts tourOpts

	cmd := &cobra.Command{
		Use:   "tour FILE",
		Short: "Find the minimum-cost Hamiltonian path or cycle",
		Long: `Solves the graph in FILE exactly (Held–Karp, O(2ⁿ·n²)). Only direct edges count.

Flags override the [solver] table of the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := solve(cmd, g, opts.resolve(cmd, f.Solver))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			kind := "path"
			if res.Closed {
				kind = "cycle"
			}
			fmt.Fprintf(out, "%s %s\n", styleTitle.Render(kind+":"), formatPath(res.Path))
			fmt.Fprintf(out, "%s %s\n", styleTitle.Render("cost:"), styleNumber.Render(weight.Format(weight.Int64, res.Cost)))
			return nil
		},
	}
	opts.register(cmd)

	return cmd
}

// solve runs the tour solver with the resolved settings and logs the outcome.
func solve(cmd *cobra.Command, g *core.Graph[string, int64], s config.Solver) (tsp.Result[string, int64], error) {
	logger := loggerFromContext(cmd.Context())

	start := s.Start
	if start == "" && g.VertexCount() > 0 {
		start = g.Vertices()[0]
	}
	logger.Debug("solving", "start", start, "cycle", s.ReturnToStart, "vertices", g.VertexCount())

	prog := newProgress(logger)
	res, err := tsp.Hamiltonian[string, int64](g, weight.Int64, start,
		tsp.WithReturnToStart(s.ReturnToStart), tsp.WithMaxVertices(max(s.MaxVertices, 0)))
	if err != nil {
		return res, fmt.Errorf("tour from %q: %w", start, err)
	}
	prog.done(fmt.Sprintf("Solved %d vertices", g.VertexCount()))

	return res, nil
}

func formatPath(path []string) string {
	return strings.Join(path, " "+iconArrow+" ")
}
