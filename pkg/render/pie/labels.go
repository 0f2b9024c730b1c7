package pie

import (
	"math"

	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/shape"
)

// Orientation is the compass direction of a slice's bisector.
type Orientation string

const (
	Top    Orientation = "top"
	Right  Orientation = "right"
	Bottom Orientation = "bottom"
	Left   Orientation = "left"
)

// Text and vertical anchor values.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// LabelProps are the render-ready properties of one slice label.
type LabelProps struct {
	Index       int              `json:"index"`
	Datum       chart.Datum      `json:"datum"`
	Slice       Slice            `json:"slice"`
	Orientation Orientation      `json:"orientation"`
	Style       chart.StyleProps `json:"style"`
	X           float64          `json:"x"`
	Y           float64          `json:"y"`
	// Text is nil when the slice has no label.
	Text           *string  `json:"text"`
	TextAnchor     string   `json:"text_anchor"`
	VerticalAnchor string   `json:"vertical_anchor"`
	Angle          *float64 `json:"angle,omitempty"`
}

// LabelPropsFor places the label of the slice described by dp.
func LabelPropsFor(props Props, dp SliceProps, cv CalculatedValues) LabelProps {
	d := dp.Datum
	style := chart.Evaluate(chart.Layer(cv.Style.Labels, chart.Style{"padding": chart.Literal(0)}), d)

	var labelRadius float64
	if f, ok := chart.ToFloat(chart.EvaluateProp(props.LabelRadius, d)); ok && !math.IsNaN(f) {
		labelRadius = f
	}
	x, y := LabelPosition(cv.Radius, labelRadius, style).Centroid(dp.Slice.StartAngle, dp.Slice.EndAngle)
	orientation := LabelOrientation(dp.Slice.Span)

	lp := LabelProps{
		Index:          dp.Index,
		Datum:          d,
		Slice:          dp.Slice,
		Orientation:    orientation,
		Style:          style,
		X:              x,
		Y:              y,
		Text:           LabelText(props, d, dp.Index),
		TextAnchor:     TextAnchor(orientation),
		VerticalAnchor: VerticalAnchor(orientation),
	}
	if s, ok := style.String("textAnchor"); ok && s != "" {
		lp.TextAnchor = s
	}
	if s, ok := style.String("verticalAnchor"); ok && s != "" {
		lp.VerticalAnchor = s
	}
	if a, ok := style.Float("angle"); ok {
		lp.Angle = &a
	}
	return lp
}

// LabelPosition returns a zero-thickness arc whose centroid is the label
// anchor. labelRadius wins when non-zero; otherwise labels sit at radius
// plus the style's padding.
func LabelPosition(radius, labelRadius float64, style chart.StyleProps) shape.Arc {
	r := labelRadius
	if r == 0 {
		padding, ok := style.Float("padding")
		if !ok || math.IsNaN(padding) {
			padding = 0
		}
		r = radius + padding
	}
	return shape.Arc{InnerRadius: r, OuterRadius: r}
}

// LabelOrientation classifies the bisector of s. Buckets are 90° wide,
// centred on the compass points, and include their lower bound.
func LabelOrientation(s shape.Span) Orientation {
	deg := degrees(s.Mid())
	// Round away conversion noise so 45°, 135°, ... classify exactly.
	deg = math.Round(deg*1e9) / 1e9
	return orientationAt(deg)
}

// orientationAt buckets deg with every lower bound inclusive, so exactly
// 315° is Top. A strict "deg > 315" test for Top/Left would make it Left and
// break the symmetry with 45°, 135° and 225°; keep the inclusive form.
func orientationAt(deg float64) Orientation {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	switch {
	case deg < 45 || deg >= 315:
		return Top
	case deg < 135:
		return Right
	case deg < 225:
		return Bottom
	default:
		return Left
	}
}

// TextAnchor returns the default horizontal anchor for o.
func TextAnchor(o Orientation) string {
	switch o {
	case Top, Bottom:
		return AnchorMiddle
	case Right:
		return AnchorStart
	default:
		return AnchorEnd
	}
}

// VerticalAnchor returns the default vertical anchor for o.
func VerticalAnchor(o Orientation) string {
	switch o {
	case Left, Right:
		return AnchorMiddle
	case Bottom:
		return AnchorStart
	default:
		return AnchorEnd
	}
}

// LabelText resolves the text of the label at index: the datum's own label,
// then the configured labels, then the category name or value.
func LabelText(props Props, d chart.Datum, index int) *string {
	var v any
	switch {
	case d.Label != "":
		v = d.Label
	case props.Labels.IsList():
		if index >= 0 && index < len(props.Labels.list) {
			v = props.Labels.list[index]
		}
	case props.Labels.IsFunc():
		v = props.Labels.fn(d)
	case d.XName != "":
		v = d.XName
	default:
		v = d.X
	}
	return NormalizeText(v)
}
