package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/layout"
	"github.com/matzehuels/touchmatrix/pkg/matrix"
	"github.com/matzehuels/touchmatrix/pkg/pipeline"
)

// explainCommand creates the explain command.
func (c *CLI) explainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Show how the touchscreen maps onto the screen layout",
		Long: `Show the canvas built from the screens, the rectangle of the touchscreen's
screen on it, the resulting matrix, and where the corners of the touchscreen
land on the canvas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.flags.options(cmd)
			if errors.Is(err, errors.ErrCodeEmptyLayout) {
				return cmd.Help()
			}
			if err != nil {
				return err
			}

			result, err := pipeline.NewRunner(opts.Logger).Compute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			renderExplain(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

// renderExplain writes the human-readable report for result.
func renderExplain(w io.Writer, r *pipeline.Result) {
	printTitle(w, fmt.Sprintf("Screens (%d)", len(r.Screens)))
	for i, s := range r.Screens {
		cw, ch := s.CanvasSize()
		line := fmt.Sprintf("#%d  %-10s %-9s canvas %dx%d", i, fmt.Sprintf("%dx%d", s.Width, s.Height), s.Rotation, cw, ch)
		if i == r.TouchIndex {
			fmt.Fprintln(w, StyleHighlight.Render(iconCursor+" "+line+"  touch"))
			continue
		}
		fmt.Fprintln(w, "  "+StyleDim.Render(line))
	}
	printNewline(w)

	printKeyValue(w, "canvas", fmt.Sprintf("%dx%d", r.Canvas.Width, r.Canvas.Height))
	printKeyValue(w, "origin", fmt.Sprintf("%d,%d", r.Placement.OriginX, r.Placement.OriginY))
	printKeyValue(w, "size", fmt.Sprintf("%dx%d", r.Placement.Width, r.Placement.Height))
	printKeyValue(w, "rotation", fmt.Sprintf("%s (%d°)", r.Rotation, r.Rotation.Degrees()))
	printNewline(w)

	printTitle(w, "Matrix")
	fmt.Fprintln(w, matrixTable(r.Matrix))
	printNewline(w)

	printTitle(w, "Corners")
	for _, corner := range corners {
		x, y := r.Matrix.Apply(corner.x, corner.y)
		printMapping(w, corner.name, fmt.Sprintf("%.0f,%.0f", x*float64(r.Canvas.Width), y*float64(r.Canvas.Height)))
	}

	if affected, delta := layout.Quirk(r.Screens, r.TouchIndex); affected {
		printNewline(w)
		printWarning(w, "a rotated screen left of the touchscreen is counted with its unrotated width")
		printDetail(w, "origin is %d px off its canvas position", delta)
	}
}

// corners are the touchscreen's corners in normalized input space.
var corners = []struct {
	name string
	x, y float64
}{
	{"top-left", 0, 0},
	{"top-right", 1, 0},
	{"bottom-left", 0, 1},
	{"bottom-right", 1, 1},
}

// matrixTable renders m as a bordered 3×3 table.
func matrixTable(m matrix.Matrix) string {
	rows := make([][]string, 3)
	for i, row := range m {
		rows[i] = []string{matrix.FormatValue(row[0]), matrix.FormatValue(row[1]), matrix.FormatValue(row[2])}
	}

	cell := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 2 {
				return cell.Foreground(colorDim)
			}
			return cell.Foreground(colorWhite)
		})
	return t.Render()
}
