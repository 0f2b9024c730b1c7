package pie

import "github.com/matzehuels/piechart/pkg/render/chart"

// SliceStyle evaluates the style of one slice. The palette fill, the
// chart-wide data style and the datum's own style are layered in that order;
// the first layer to set a key wins.
func SliceStyle(d chart.Datum, index int, cv CalculatedValues) chart.StyleProps {
	base := chart.Style{"fill": ResolveColor(cv.Style, cv.Colors, index)}
	return chart.Evaluate(chart.Layer(base, cv.Style.Data, d.Style), d)
}
