package pie

import "github.com/matzehuels/piechart/pkg/render/chart"

// ResolveColor returns the fill for slice index. A fill in the chart-wide
// data style wins for every slice. Otherwise the palette is cycled. An empty
// palette yields an unset value.
func ResolveColor(style chart.StyleSet, colors []string, index int) chart.Value {
	if fill := style.Data["fill"]; !fill.IsZero() {
		return fill
	}
	if len(colors) == 0 {
		return chart.Value{}
	}
	return chart.Literal(colors[index%len(colors)])
}
