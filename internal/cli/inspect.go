package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// inspectCommand creates the interactive inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect [chart-file]",
		Short: "Browse the computed slices and labels of a chart",
		Long: `Browse the computed slices and labels of a chart.

Shows a table of slices with their color, value, share of the total, angular
span and label side. Press enter on a slice to see its resolved styles and
label placement. Use --plain to print the table once without interaction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the slice table and exit")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, plain bool) error {
	runner := c.newRunner()

	props, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}
	layout, err := runner.Layout(ctx, props)
	if err != nil {
		return err
	}

	m := NewSliceListModel(layout)
	if plain {
		m.Height = len(m.Elements)
		fmt.Fprintln(c.Out, m.View())
		return nil
	}

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	return nil
}
