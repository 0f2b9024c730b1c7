package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

// palettesCommand lists the built-in color scales and themes.
func (c *CLI) palettesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List built-in color scales and themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.printPalettes()
			return nil
		},
	}
}

func (c *CLI) printPalettes() {
	fmt.Fprintln(c.Out, StyleTitle.Render("Color scales"))
	for _, name := range chart.PaletteNames() {
		colors := chart.GetColorScale(name)
		printKeyValue(c.Out, name, swatches(colors)+" "+StyleDim.Render(fmt.Sprintf("%d colors", len(colors))))
	}

	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, StyleTitle.Render("Themes"))
	for _, name := range pie.ThemeNames() {
		theme, _ := pie.ThemeByName(name)
		role := theme.Role(pie.Kind)
		var colors []string
		if role.Props != nil {
			colors = role.Props.ColorScale.Resolve()
		}
		printKeyValue(c.Out, name, swatches(colors))
	}
}
