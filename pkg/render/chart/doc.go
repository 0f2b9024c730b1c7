// Package chart provides the shared building blocks consumed by chart
// layout packages: data records, datum-dependent style values, layered
// style merging, padding, color palettes, themes and prop defaulting.
//
// # Values
//
// Style entries and some props may be literal or derived from the datum
// being drawn. [Value] is a tagged union of the two:
//
//	chart.Literal("#4477AA")
//	chart.Computed(func(d chart.Datum) any {
//	    if d.Y > 10 {
//	        return "tomato"
//	    }
//	    return "gray"
//	})
//
// [Evaluate] resolves every entry of a [Style] against one datum and returns
// plain [StyleProps].
//
// # Layers
//
// [Layer] merges styles from highest to lowest precedence: the first layer
// that sets a key wins. Theme defaults, chart-wide style and per-datum
// overrides are combined this way instead of through a global cascade.
//
// # Palettes
//
// [GetColorScale] resolves named palettes (grayscale, qualitative, heatmap,
// warm, cool, red, green, blue). A [ColorScale] is either such a name or an
// explicit list.
package chart
