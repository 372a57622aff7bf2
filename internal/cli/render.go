package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/dot"
)

func newRenderCmd() *cobra.Command {
	var (
		output   string
		withTour bool
		opts     tourOpts
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the graph with Graphviz",
		Long: `Writes a Graphviz drawing of the graph in FILE. The output format follows the
extension of -o: .svg, .png, .jpg or .dot. With --tour the optimal tour is
solved first and drawn on top of the graph.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			format, err := dot.FormatFromPath(output)
			if err != nil {
				return err
			}

			f, g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			var highlight []string
			if withTour {
				res, err := solve(cmd, g, opts.resolve(cmd, f.Solver))
				if err != nil {
					return err
				}
				highlight = res.Path
			}

			src := dot.ToDOT[string, int64](g, dot.Options[string]{Highlight: highlight})
			logger.Debug("generated DOT", "bytes", len(src))

			prog := newProgress(logger)
			err = writeFile(output, func(w io.Writer) error { return dot.Render(ctx, src, format, w) })
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %s", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.svg, .png, .jpg, .dot)")
	cmd.Flags().BoolVar(&withTour, "tour", false, "highlight the optimal tour")
	opts.register(cmd)
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
