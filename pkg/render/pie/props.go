package pie

import (
	"github.com/matzehuels/piechart/pkg/render/chart"
)

// Kind is the theme role consulted by pie charts.
const Kind = "pie"

// Labels selects label text for slices. It is empty, an explicit list indexed
// by slice position, or a function of the datum.
type Labels struct {
	list  []any
	fn    func(chart.Datum) any
	isSet bool
}

// LabelList labels slice i with items[i]. Slices beyond the list get no
// label.
func LabelList(items ...any) Labels {
	if items == nil {
		items = []any{}
	}
	return Labels{list: items, isSet: true}
}

// LabelFunc derives each label from its datum.
func LabelFunc(fn func(chart.Datum) any) Labels {
	if fn == nil {
		return Labels{}
	}
	return Labels{fn: fn, isSet: true}
}

// IsZero reports whether no labels were configured.
func (l Labels) IsZero() bool { return !l.isSet }

// IsList reports whether l is an explicit list.
func (l Labels) IsList() bool { return l.list != nil }

// IsFunc reports whether l derives labels from data.
func (l Labels) IsFunc() bool { return l.fn != nil }

// Props configures a pie chart. Zero and nil fields are unset and get filled from the
// theme role props and then from the fallback props.
type Props struct {
	Width  float64
	Height float64
	// Padding insets the pie from the chart bounds. Nil is unset.
	Padding *chart.Padding

	// StartAngle, EndAngle and PadAngle are in degrees. Nil angles and radii
	// are unset; an explicit zero is kept.
	StartAngle *float64
	EndAngle   *float64
	PadAngle   *float64

	CornerRadius *float64
	InnerRadius  *float64

	ColorScale chart.ColorScale
	// Style is merged with the theme style, never replaced by it.
	Style  chart.StyleSet
	Labels Labels
	// LabelRadius overrides the radius labels are placed at. It may depend
	// on the datum. Unset, zero and non-numeric values fall back to the
	// chart radius plus label padding.
	LabelRadius chart.Value

	Theme *Theme
	Data  []chart.Datum
}

// Defaults returns p with every unset field taken from fallback. Style is
// left alone.
func (p Props) Defaults(fallback Props) Props {
	if p.Width == 0 {
		p.Width = fallback.Width
	}
	if p.Height == 0 {
		p.Height = fallback.Height
	}
	if p.Padding == nil && fallback.Padding != nil {
		pad := *fallback.Padding
		p.Padding = &pad
	}
	p.StartAngle = orFloat(p.StartAngle, fallback.StartAngle)
	p.EndAngle = orFloat(p.EndAngle, fallback.EndAngle)
	p.PadAngle = orFloat(p.PadAngle, fallback.PadAngle)
	p.CornerRadius = orFloat(p.CornerRadius, fallback.CornerRadius)
	p.InnerRadius = orFloat(p.InnerRadius, fallback.InnerRadius)
	if p.ColorScale.IsZero() {
		p.ColorScale = fallback.ColorScale
	}
	if p.Labels.IsZero() {
		p.Labels = fallback.Labels
	}
	if !p.LabelRadius.IsSet() {
		p.LabelRadius = fallback.LabelRadius
	}
	if p.Theme == nil {
		p.Theme = fallback.Theme
	}
	if p.Data == nil {
		p.Data = fallback.Data
	}
	return p
}

func orFloat(v, fallback *float64) *float64 {
	if v != nil || fallback == nil {
		return v
	}
	f := *fallback
	return &f
}

// DefaultProps returns the fallback props of a pie chart: a 400x400 chart
// with 30px padding, a full turn, the grayscale palette and theme, and five
// sample data points.
func DefaultProps() Props {
	pad := chart.Pad(30)
	return Props{
		Width:      400,
		Height:     400,
		Padding:    &pad,
		StartAngle: chart.Float(0),
		EndAngle:   chart.Float(360),
		PadAngle:   chart.Float(0),
		ColorScale: chart.Named("grayscale"),
		Theme:      Grayscale(),
		Data: []chart.Datum{
			{X: "A", Y: 1},
			{X: "B", Y: 2},
			{X: "C", Y: 3},
			{X: "D", Y: 1},
			{X: "E", Y: 2},
		},
	}
}
