package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/touchmatrix/pkg/errors"
	"github.com/matzehuels/touchmatrix/pkg/pipeline"
	"github.com/matzehuels/touchmatrix/pkg/screen"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ScreenListModel - Interactive touchscreen selection
// =============================================================================

// ScreenListModel is the bubbletea model for choosing the touch screen.
type ScreenListModel struct {
	Screens  []screen.Spec
	Cursor   int
	Selected *int
}

// NewScreenListModel creates a model with the cursor on screen start.
func NewScreenListModel(screens []screen.Spec, start int) ScreenListModel {
	if start < 0 || start >= len(screens) {
		start = 0
	}
	return ScreenListModel{Screens: screens, Cursor: start}
}

func (m ScreenListModel) Init() tea.Cmd {
	return nil
}

func (m ScreenListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k", "left", "h":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j", "right", "l":
			if m.Cursor < len(m.Screens)-1 {
				m.Cursor++
			}
		case "enter":
			idx := m.Cursor
			m.Selected = &idx
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ScreenListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Touchscreen"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.Screens {
		line := fmt.Sprintf("#%d  %dx%d  %s", i, s.Width, s.Height, s.Rotation)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(iconCursor + " " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// pickCommand creates the pick command.
func (c *CLI) pickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose the touchscreen's screen interactively",
		Long: `Show the configured screens and choose the one the touchscreen is attached
to, then print the matrix for it. The list is drawn on stderr so the matrix
can be redirected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.flags.options(cmd)
			if errors.Is(err, errors.ErrCodeEmptyLayout) {
				return cmd.Help()
			}
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewScreenListModel(opts.Screens, opts.TouchIndex),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()))
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(ScreenListModel)
			if !ok || fm.Selected == nil {
				printDetail(cmd.ErrOrStderr(), "No selection made")
				return nil
			}
			opts.TouchIndex = *fm.Selected
			printSuccess(cmd.ErrOrStderr(), "Touchscreen on screen #%d", opts.TouchIndex)

			result, err := pipeline.NewRunner(opts.Logger).Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(result.Artifact)
			return err
		},
	}
}
