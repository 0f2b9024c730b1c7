package pie

import (
	"math"

	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/shape"
)

// Slice is one laid-out wedge with its source datum.
type Slice = shape.Slice[chart.Datum]

// ResolveRadius returns half of the smaller padded dimension. The result is
// negative when padding exceeds the available space.
func ResolveRadius(width, height float64, p chart.Padding) float64 {
	return math.Min(width-p.Left-p.Right, height-p.Top-p.Bottom) / 2
}

// LayoutSlices lays data out in input order. Angles are given in degrees.
func LayoutSlices(data []chart.Datum, startDeg, endDeg, padDeg float64) []Slice {
	p := shape.Pie[chart.Datum]{
		StartAngle: radians(startDeg),
		EndAngle:   radians(endDeg),
		PadAngle:   radians(padDeg),
		Value:      func(d chart.Datum) float64 { return d.Y },
	}
	return p.Layout(data)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
