package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/dijkstra"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/weight"
)

func newDistancesCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "distances FILE",
		Short: "Print shortest distances as a table",
		Long: `Runs Floyd–Warshall over the graph in FILE. Row is the source, column the target; ∞ marks an unreachable pair.

With --from only one source is solved, with Dijkstra, and each row shows the
route taken. Dijkstra needs non-negative weights.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			_, g, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			if from != "" {
				res, err := dijkstra.Dijkstra[string, int64](g, weight.Int64, from, dijkstra.WithReturnPath[int64]())
				if err != nil {
					return err
				}
				prog.done(fmt.Sprintf("Computed distances from %s", from))
				fmt.Fprintln(cmd.OutOrStdout(), routeTable(g.Vertices(), res))
				return nil
			}

			d := matrix.FloydWarshall[string, int64](g, weight.Int64)
			prog.done(fmt.Sprintf("Computed distances for %d vertices", d.Len()))

			fmt.Fprintln(cmd.OutOrStdout(), distanceTable(d))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "solve a single source with Dijkstra")

	return cmd
}

// routeTable renders single-source distances, one target per row.
func routeTable(vertices []string, res *dijkstra.Result[string, int64]) string {
	rows := make([][]string, 0, len(vertices))
	for _, v := range vertices {
		rows = append(rows, []string{v, weight.Format(weight.Int64, res.Dist[v]), formatPath(res.PathTo(v))})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("to", "distance", "route").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 1:
				return styleCell.Align(lipgloss.Right)
			default:
				return styleCell
			}
		}).
		Render()
}

// distanceTable renders d with vertex names as row and column headers.
func distanceTable(d *matrix.Distances[string, int64]) string {
	vertices := d.Vertices()
	headers := append([]string{""}, vertices...)

	rows := make([][]string, len(vertices))
	for i, u := range vertices {
		row := make([]string, 0, len(vertices)+1)
		row = append(row, u)
		for _, v := range vertices {
			w, _ := d.Distance(u, v)
			row = append(row, weight.Format(weight.Int64, w))
		}
		rows[i] = row
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow, col == 0:
				return styleHeader.Padding(0, 1)
			case row < len(rows) && col < len(rows[row]) && rows[row][col] == weight.InfSymbol:
				return styleDim.Padding(0, 1).Align(lipgloss.Right)
			default:
				return styleCell.Align(lipgloss.Right)
			}
		}).
		Render()
}
