package pie

import (
	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/shape"
)

// CalculatedValues are derived once per layout and shared by every slice.
type CalculatedValues struct {
	Style   chart.StyleSet
	Colors  []string
	Padding chart.Padding
	Radius  float64
	// Data is normalized and keyed.
	Data   []chart.Datum
	Slices []Slice
	// Path draws slices at the chart radius.
	Path shape.Arc
}

// Calculate derives the shared layout values from defaulted props.
func Calculate(props Props) CalculatedValues {
	role := props.Theme.Role(Kind)
	style := chart.GetStyles(props.Style, role.Style, "auto", "100%")
	padding := chart.GetPadding(props.Padding)
	radius := ResolveRadius(props.Width, props.Height, padding)
	data := chart.AddEventKeys(chart.GetData(props.Data))
	start := chart.FloatOr(props.StartAngle, 0)
	end := chart.FloatOr(props.EndAngle, 360)

	return CalculatedValues{
		Style:   style,
		Colors:  props.ColorScale.Resolve(),
		Padding: padding,
		Radius:  radius,
		Data:    data,
		Slices:  LayoutSlices(data, start, end, chart.FloatOr(props.PadAngle, 0)),
		Path: shape.Arc{
			CornerRadius: chart.FloatOr(props.CornerRadius, 0),
			OuterRadius:  radius,
			InnerRadius:  chart.FloatOr(props.InnerRadius, 0),
		},
	}
}
