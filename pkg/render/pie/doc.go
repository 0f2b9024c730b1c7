// Package pie computes render-ready properties for pie and donut charts.
//
// # Overview
//
// [BaseProps] is the single entry point. It takes user [Props] and the
// fallback props of the hosting component, fills unset fields from the
// theme and the fallback, lays the data out once and returns one property
// bundle for the chart container plus one per data element:
//
//	cp := pie.BaseProps(pie.Props{
//	    Width:  400,
//	    Height: 400,
//	    Data: []chart.Datum{
//	        {X: "a", Y: 1},
//	        {X: "b", Y: 1},
//	        {X: "c", Y: 2},
//	    },
//	}, pie.DefaultProps())
//
//	for _, el := range cp.Ordered() {
//	    d := el.Data.Path.Path(el.Data.Slice.StartAngle, el.Data.Slice.EndAngle)
//	    fmt.Println(el.EventKey, d, *el.Labels.Text)
//	}
//
// Nothing here draws. The bundles carry angles, the arc path generator,
// evaluated styles and label coordinates; package sink turns them into SVG,
// JSON, PNG or PDF.
//
// # Geometry
//
// The chart radius is half of the smaller padded dimension:
//
//	radius = min(width - left - right, height - top - bottom) / 2
//
// It is not clamped. Padding larger than the chart yields a negative radius
// and inverted geometry.
//
// Slices keep input order. Each one spans an angle proportional to its Y
// value, and neighbouring slices are separated by PadAngle, so the spans add
// up to EndAngle - StartAngle - PadAngle*(n-1). Angles in [Props] are degrees;
// angles in the output are radians clockwise from 12 o'clock.
//
// # Styles
//
// Slice styles are layered, first layer wins:
//
//  1. the palette color as fill
//  2. the chart-wide data style (user style over theme style)
//  3. per-datum style overrides
//
// A fill in the chart-wide data style replaces the palette for every slice,
// not only for one.
//
// # Labels
//
// Labels sit on the bisector of their slice at the label radius, or at the
// chart radius plus the label padding. The text comes from the datum's
// Label, then [Props.Labels], then the category name. Anchors follow the
// label's [Orientation] unless the label style sets textAnchor or
// verticalAnchor.
package pie
