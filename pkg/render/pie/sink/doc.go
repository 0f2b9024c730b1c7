// Package sink provides output format renderers for pie charts.
//
// # Overview
//
// A "sink" transforms the [pie.ChildProps] computed by [pie.BaseProps] into
// a final output format:
//
//   - SVG: slices as paths, labels as text, optional hover highlighting
//   - JSON: resolved geometry and styles for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//
// # SVG Output
//
//	svg := sink.RenderSVG(cp,
//	    sink.WithTitle("Budget"),
//	    sink.WithInteraction(),
//	)
//
// The pie is drawn in a group translated to its centre at
// (padding.left + radius, padding.top + radius). Style keys with an SVG
// presentation attribute (fill, stroke, strokeWidth, fontSize, ...) are
// written as attributes; any other key ends up in the inline style.
// A label's vertical anchor maps to dominant-baseline: start is hanging,
// middle is central and end is auto.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render SVG first and convert it with
// [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(ctx, cp, opts...)
//	png, err := sink.RenderPNG(ctx, cp, sink.WithScale(2))
//
// [render.ToPDF]: github.com/matzehuels/piechart/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/piechart/pkg/render.ToPNG
package sink
