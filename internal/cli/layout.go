package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/pipeline"
)

// layoutCommand creates the layout command for computing chart layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		paths  bool
	)

	cmd := &cobra.Command{
		Use:   "layout [chart-file]",
		Short: "Compute slice geometry and label placement as JSON",
		Long: `Compute slice geometry and label placement as JSON.

The layout command resolves every prop of a chart file against its theme and
the built-in defaults, then writes the slices, styles and label positions to
<input>.layout.json (same format as 'render -f json').`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, paths)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&paths, "paths", true, "include SVG path data for every slice")

	return cmd
}

// runLayout loads the chart, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output string, paths bool) error {
	runner := c.newRunner()

	props, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}

	layout, err := runner.Layout(ctx, props)
	if err != nil {
		return err
	}

	artifacts, err := runner.Render(ctx, layout, pipeline.Options{
		Formats: []string{pipeline.FormatJSON},
		Paths:   paths,
		Logger:  c.Logger,
	})
	if err != nil {
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = layoutPath(input)
	}
	if err := os.WriteFile(outputPath, artifacts[pipeline.FormatJSON], 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write output %s", outputPath)
	}

	printSuccess(c.Out, "Layout complete")
	printFile(c.Out, outputPath)
	printStats(c.Out, len(layout.Parent.Slices), pipeline.CountLabels(layout), layout.Parent.Radius)
	printNextStep(c.Out, "Render", appName+" render "+input)

	return nil
}

// layoutPath returns <input without extension>.layout.json.
func layoutPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
}
