package pipeline

import (
	"context"

	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/render/pie"
	"github.com/matzehuels/piechart/pkg/render/pie/sink"
)

// RenderFormat generates a single artifact from computed child props.
// Options are used as given; callers validate them first.
func RenderFormat(ctx context.Context, cp pie.ChildProps, format string, opts Options) ([]byte, error) {
	svgOpts := buildSVGOptions(opts)

	switch format {
	case FormatSVG:
		return sink.RenderSVG(cp, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(ctx, cp, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(ctx, cp, svgOpts...)
	case FormatJSON:
		return sink.RenderJSON(cp, buildJSONOptions(opts)...)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.Interactive {
		svgOpts = append(svgOpts, sink.WithInteraction())
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	return svgOpts
}

func buildJSONOptions(opts Options) []sink.JSONOption {
	var jsonOpts []sink.JSONOption
	if opts.Title != "" {
		jsonOpts = append(jsonOpts, sink.WithJSONTitle(opts.Title))
	}
	if opts.Paths {
		jsonOpts = append(jsonOpts, sink.WithJSONPaths())
	}
	return jsonOpts
}
