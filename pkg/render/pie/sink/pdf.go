package sink

import (
	"context"

	"github.com/matzehuels/piechart/pkg/render"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

// RenderPDF renders the chart as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, cp pie.ChildProps, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(cp, opts...))
}
