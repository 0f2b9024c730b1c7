package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/pipeline"
)

// renderCommand creates the render command for generating chart artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
	)
	opts := pipeline.Options{Scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [chart-file]",
		Short: "Render a chart file to SVG, JSON, PNG or PDF",
		Long: `Render a chart file to SVG, JSON, PNG or PDF.

Chart files are JSON, TOML or YAML documents; the format is picked from the
extension. With a single format, -o names the output file. With several
formats, -o is a base path and each format gets its own extension.

PNG and PDF output require rsvg-convert (librsvg).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title embedded in SVG and JSON output")
	cmd.Flags().BoolVar(&opts.Interactive, "interactive", false, "highlight slices and labels on hover (SVG)")
	cmd.Flags().StringVar(&opts.Background, "background", "", "background color (SVG, PNG, PDF)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.Paths, "paths", false, "include slice paths in JSON output")

	return cmd
}

// runRender loads the chart, runs the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input, output string, opts pipeline.Options) error {
	opts.Logger = c.Logger
	if err := opts.Validate(); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	runner := c.newRunner()

	props, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}

	var spinner *Spinner
	if opts.Wants(pipeline.FormatPNG) || opts.Wants(pipeline.FormatPDF) {
		spinner = newSpinner(ctx, os.Stderr, "Converting with rsvg-convert...")
		spinner.Start()
	}

	result, err := runner.Execute(ctx, props, opts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Render failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	paths := outputPaths(output, input, opts.Formats)
	printSuccess(c.Out, "Rendered %s", input)
	for _, format := range opts.Formats {
		path := paths[format]
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		printFile(c.Out, path)
	}
	printStats(c.Out, result.Stats.SliceCount, result.Stats.LabelCount, result.Stats.Radius)
	if result.Stats.SliceCount > len(result.Layout.Elements) {
		printWarning(c.Out, "%d slices share an event key; only the last one is addressable",
			result.Stats.SliceCount-len(result.Layout.Elements))
	}

	prog.done(fmt.Sprintf("Rendered %s", input))
	return nil
}
