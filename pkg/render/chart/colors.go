package chart

import (
	"maps"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette is used for unknown palette names.
const DefaultPalette = "grayscale"

var palettes = map[string][]string{
	"grayscale":   {"#cccccc", "#969696", "#636363", "#252525"},
	"qualitative": {"#334D5C", "#45B29D", "#EFC94C", "#E27A3F", "#DF5A49", "#4F7DA1", "#55DBC1", "#EFDA97", "#E2A37F", "#DF948A"},
	"heatmap":     {"#428517", "#77D200", "#D6D305", "#EC8E19", "#C92B05"},
	"warm":        {"#940031", "#C43343", "#DC5429", "#FF821D", "#FFAF55"},
	"cool":        {"#2746B9", "#0B69D4", "#2794DB", "#31BB76", "#60E83B"},
	"red":         {"#FCAE91", "#FB6A4A", "#DE2D26", "#A50F15", "#750B0E"},
	"green":       {"#354722", "#466631", "#649146", "#8AB25C", "#A9C97E"},
	"blue":        {"#002C61", "#004B8F", "#006BC9", "#3795E5", "#65B4F4"},
}

// GetColorScale returns a copy of the named palette, or the grayscale
// palette when the name is unknown.
func GetColorScale(name string) []string {
	p, ok := palettes[name]
	if !ok {
		p = palettes[DefaultPalette]
	}
	return slices.Clone(p)
}

// IsPalette reports whether name is a built-in palette.
func IsPalette(name string) bool {
	_, ok := palettes[name]
	return ok
}

// PaletteNames returns the built-in palette names in sorted order.
func PaletteNames() []string {
	return slices.Sorted(maps.Keys(palettes))
}

// ColorScale selects the colors assigned to data elements: either a named
// palette or an explicit list. The zero value is unset.
type ColorScale struct {
	name   string
	colors []string
}

// Named selects a built-in palette by name.
func Named(name string) ColorScale { return ColorScale{name: name} }

// Colors selects an explicit, ordered list of colors.
func Colors(colors ...string) ColorScale {
	if colors == nil {
		colors = []string{}
	}
	return ColorScale{colors: colors}
}

// IsZero reports whether c selects nothing.
func (c ColorScale) IsZero() bool { return c.name == "" && c.colors == nil }

// Name returns the palette name, or "" for explicit lists.
func (c ColorScale) Name() string { return c.name }

// Resolve returns the ordered colors selected by c.
func (c ColorScale) Resolve() []string {
	if c.colors != nil {
		return slices.Clone(c.colors)
	}
	return GetColorScale(c.name)
}

// cssColors covers the CSS keywords accepted in chart definitions.
var cssColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"red":     "#ff0000",
	"maroon":  "#800000",
	"orange":  "#ffa500",
	"yellow":  "#ffff00",
	"olive":   "#808000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"blue":    "#0000ff",
	"navy":    "#000080",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"tomato":  "#ff6347",
	"gold":    "#ffd700",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
}

// ParseColor parses a hex color (#rgb or #rrggbb) or a CSS color keyword.
// "transparent" and "none" are not parseable colors.
func ParseColor(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if hex, ok := cssColors[s]; ok {
		s = hex
	}
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// IsColor reports whether s is usable as a fill or stroke: a color accepted
// by ParseColor, "transparent" or "none".
func IsColor(s string) bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "transparent", "none":
		return true
	}
	_, ok := ParseColor(s)
	return ok
}
