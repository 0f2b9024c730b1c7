package chart

import (
	"fmt"
	"maps"
	"slices"
)

// Style maps style attribute names (fill, stroke, padding, fontSize, ...) to
// literal or datum-dependent values.
type Style map[string]Value

// StyleProps is a fully evaluated style.
type StyleProps map[string]any

// StyleSet groups the styles of one chart: the parent container, the data
// elements and their labels.
type StyleSet struct {
	Parent Style
	Data   Style
	Labels Style
}

// Layer merges styles with decreasing precedence: for every key, the first
// layer that sets it wins. Unset values are skipped. The result is a new map.
func Layer(layers ...Style) Style {
	out := make(Style)
	for _, l := range layers {
		for k, v := range l {
			if !v.IsSet() {
				continue
			}
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out
}

// Evaluate resolves every value of s for d.
func Evaluate(s Style, d Datum) StyleProps {
	out := make(StyleProps, len(s))
	for k, v := range s {
		if !v.IsSet() {
			continue
		}
		out[k] = v.Eval(d)
	}
	return out
}

// GetStyles combines a user style set with theme defaults. User entries win
// over theme entries; the parent style additionally falls back to the given
// height and width.
func GetStyles(user, theme StyleSet, height, width string) StyleSet {
	return StyleSet{
		Parent: Layer(user.Parent, theme.Parent, Style{"height": Literal(height), "width": Literal(width)}),
		Data:   Layer(user.Data, theme.Data),
		Labels: Layer(user.Labels, theme.Labels),
	}
}

// String returns the value of key formatted as a string. Missing and nil
// values report false.
func (p StyleProps) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Float returns the numeric value of key.
func (p StyleProps) Float(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	return ToFloat(v)
}

// Keys returns the style keys in sorted order.
func (p StyleProps) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}
