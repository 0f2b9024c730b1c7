// Package shape provides the geometric generators behind circular charts.
//
// # Overview
//
// Two generators cover everything a pie or donut chart needs:
//
//   - [Pie] turns a sequence of values into angular spans ([Slice]).
//   - [Arc] turns a span plus inner/outer radii into SVG path data and a
//     centroid point for label placement.
//
// Angles are radians measured clockwise from 12 o'clock, matching the SVG
// coordinate system where y grows downward. A span from 0 to π/2 covers the
// top-right quadrant.
//
// # Pie Layout
//
//	p := shape.Pie[float64]{
//	    EndAngle: 2 * math.Pi,
//	    Value:    func(v float64) float64 { return v },
//	}
//	slices := p.Layout([]float64{1, 1, 2})
//	// spans: π/2, π/2, π
//
// Input order is always preserved. A pad angle inserts a
// gap between neighbouring slices; the first slice starts at StartAngle and
// the last one ends at EndAngle.
//
// # Arc Paths
//
//	a := shape.Arc{InnerRadius: 40, OuterRadius: 100, CornerRadius: 4}
//	d := a.Path(s.StartAngle, s.EndAngle) // "M...A...L...Z"
//	x, y := a.Centroid(s.StartAngle, s.EndAngle)
//
// An arc whose inner and outer radii are equal is a zero-thickness ring; its
// centroid is the point at that radius on the span's bisector, which is how
// chart labels are positioned.
package shape
