package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/piechart/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The persistent --verbose flag switches the logger to debug level and
// --log-format selects text, logfmt or JSON log lines.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose   bool
		logFormat string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "Piechart lays out and renders pie and donut charts",
		Long:          `Piechart computes slice geometry, styles and label placement for pie and donut charts described in JSON, TOML or YAML files, and renders them to SVG, PNG, PDF or JSON.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			return c.SetLogFormat(logFormat)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&logFormat, "log-format", LogFormatText,
		"log output format ("+strings.Join(logFormatNames(), ", ")+")")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.palettesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
