package pie

import (
	"maps"
	"slices"

	"github.com/matzehuels/piechart/pkg/render/chart"
)

// ThemeRole holds the defaults a theme provides for one chart kind.
type ThemeRole struct {
	Style chart.StyleSet
	// Props fills unset props before the fallback props do. Its Style is
	// ignored; use Style instead.
	Props *Props
}

// Theme maps chart kinds to their defaults.
type Theme map[string]ThemeRole

// Role returns the defaults for kind. A nil theme has no roles.
func (t *Theme) Role(kind string) ThemeRole {
	if t == nil {
		return ThemeRole{}
	}
	return (*t)[kind]
}

const labelFonts = "'Gill Sans', 'Seravek', 'Trebuchet MS', sans-serif"

// Grayscale is the default theme.
func Grayscale() *Theme {
	pad := chart.Pad(50)
	return &Theme{
		Kind: {
			Style: chart.StyleSet{
				Data: chart.Style{
					"padding":     chart.Literal(10),
					"stroke":      chart.Literal("transparent"),
					"strokeWidth": chart.Literal(1),
				},
				Labels: chart.Style{
					"fontFamily":    chart.Literal(labelFonts),
					"fontSize":      chart.Literal(14),
					"letterSpacing": chart.Literal("normal"),
					"padding":       chart.Literal(20),
					"fill":          chart.Literal("#252525"),
					"stroke":        chart.Literal("transparent"),
				},
			},
			Props: &Props{Padding: &pad},
		},
	}
}

// Material is a theme after the Material Design palette.
func Material() *Theme {
	pad := chart.Pad(50)
	return &Theme{
		Kind: {
			Style: chart.StyleSet{
				Data: chart.Style{
					"padding":     chart.Literal(8),
					"stroke":      chart.Literal("#ECEFF1"),
					"strokeWidth": chart.Literal(1),
				},
				Labels: chart.Style{
					"fontFamily":    chart.Literal("'Roboto', 'Helvetica Neue', Helvetica, sans-serif"),
					"fontSize":      chart.Literal(12),
					"letterSpacing": chart.Literal("normal"),
					"padding":       chart.Literal(8),
					"fill":          chart.Literal("#455A64"),
					"stroke":        chart.Literal("transparent"),
				},
			},
			Props: &Props{
				Padding: &pad,
				ColorScale: chart.Colors(
					"#F4511E", "#FFF59D", "#DCE775", "#8BC34A", "#00796B", "#006064",
				),
			},
		},
	}
}

var themes = map[string]func() *Theme{
	"grayscale": Grayscale,
	"material":  Material,
}

// ThemeByName returns a fresh copy of a built-in theme.
func ThemeByName(name string) (*Theme, bool) {
	fn, ok := themes[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// ThemeNames lists the built-in themes in sorted order.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}
