// Package render provides chart rendering building blocks.
//
// # Overview
//
// This package ties the chart layout packages together and provides
// format conversion shared by every sink:
//
//   - Geometry generators (in [shape] subpackage)
//   - Shared chart values, styles and palettes (in [chart] subpackage)
//   - Pie and donut layout (in [pie] subpackage)
//   - Generic format conversion (SVG to PDF/PNG)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(cp, opts...)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// The context bounds the external process; cancelling it kills the
// conversion.
//
// # Pie Charts
//
// The [pie] subpackage computes slice angles, styles and label placement.
// Its [pie/sink] subpackage writes the result as SVG, JSON, PNG or PDF.
//
//	cp := pie.BaseProps(props, pie.DefaultProps())
//	svg := sink.RenderSVG(cp, sink.WithTitle("Budget"))
//
// [shape]: github.com/matzehuels/piechart/pkg/render/shape
// [chart]: github.com/matzehuels/piechart/pkg/render/chart
// [pie]: github.com/matzehuels/piechart/pkg/render/pie
// [pie/sink]: github.com/matzehuels/piechart/pkg/render/pie/sink
package render
