package chartfile

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

// Props converts d to chart props. Unset fields stay zero so that
// [pie.BaseProps] fills them from the theme and fallback props.
func (d Definition) Props() (pie.Props, error) {
	p := pie.Props{
		Width:        d.Width,
		Height:       d.Height,
		Padding:      padding(d.Padding),
		StartAngle:   d.StartAngle,
		EndAngle:     d.EndAngle,
		PadAngle:     d.PadAngle,
		CornerRadius: d.CornerRadius,
		InnerRadius:  d.InnerRadius,
		ColorScale:   colorScale(d.ColorScale),
	}

	if d.Theme != "" {
		theme, ok := pie.ThemeByName(d.Theme)
		if !ok {
			return p, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", d.Theme)
		}
		p.Theme = theme
	}

	var err error
	if p.LabelRadius, err = numberValue("label_radius", d.LabelRadius); err != nil {
		return p, err
	}

	switch {
	case d.Labels != nil:
		p.Labels = pie.LabelList(d.Labels...)
	case d.LabelTemplate != "":
		fn, err := compile("label_template", d.LabelTemplate)
		if err != nil {
			return p, err
		}
		p.Labels = pie.LabelFunc(fn)
	}

	if p.Style.Parent, err = style("style.parent", d.Style.Parent); err != nil {
		return p, err
	}
	if p.Style.Data, err = style("style.data", d.Style.Data); err != nil {
		return p, err
	}
	if p.Style.Labels, err = style("style.labels", d.Style.Labels); err != nil {
		return p, err
	}

	if d.Data != nil {
		p.Data = make([]chart.Datum, 0, len(d.Data))
		for i, rec := range d.Data {
			datum, err := d.datum(i, rec)
			if err != nil {
				return p, err
			}
			p.Data = append(p.Data, datum)
		}
	}
	return p, nil
}

// datum converts one data record. A missing or non-numeric y becomes NaN and
// yields an empty slice.
func (d Definition) datum(i int, rec map[string]any) (chart.Datum, error) {
	xKey, yKey := d.xKey(), d.yKey()
	datum := chart.Datum{X: rec[xKey], Y: math.NaN()}
	if y, ok := chart.ToFloat(rec[yKey]); ok {
		datum.Y = y
	}
	if v, ok := rec[KeyLabel]; ok && v != nil {
		datum.Label = fmt.Sprint(v)
	}
	if v, ok := rec[KeyEventKey]; ok && v != nil {
		datum.EventKey = fmt.Sprint(v)
	}

	overrides := make(map[string]any)
	for k, v := range rec {
		switch k {
		case xKey, yKey, KeyX, KeyY, KeyLabel, KeyEventKey:
			continue
		}
		overrides[k] = v
	}
	s, err := style(fmt.Sprintf("data[%d]", i), overrides)
	if err != nil {
		return datum, err
	}
	datum.Style = s
	return datum, nil
}

func padding(v any) *chart.Padding {
	switch p := v.(type) {
	case nil:
		return nil
	case map[string]any:
		side := func(k string) float64 {
			f, _ := chart.ToFloat(p[k])
			return f
		}
		return &chart.Padding{Top: side("top"), Right: side("right"), Bottom: side("bottom"), Left: side("left")}
	}
	f, ok := chart.ToFloat(v)
	if !ok {
		return nil
	}
	pad := chart.Pad(f)
	return &pad
}

func colorScale(v any) chart.ColorScale {
	switch cs := v.(type) {
	case string:
		return chart.Named(cs)
	case []any:
		colors := make([]string, 0, len(cs))
		for _, c := range cs {
			colors = append(colors, fmt.Sprint(c))
		}
		return chart.Colors(colors...)
	}
	return chart.ColorScale{}
}

func numberValue(name string, v any) (chart.Value, error) {
	switch x := v.(type) {
	case nil:
		return chart.Value{}, nil
	case string:
		if isTemplate(x) {
			fn, err := compileNumber(name, x)
			if err != nil {
				return chart.Value{}, err
			}
			return chart.Computed(fn), nil
		}
	}
	f, ok := chart.ToFloat(v)
	if !ok {
		return chart.Value{}, errors.New(errors.ErrCodeInvalidChart, "%s: %v is not a number", name, v)
	}
	return chart.Literal(f), nil
}

func style(name string, raw map[string]any) (chart.Style, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	s := make(chart.Style, len(raw))
	for _, k := range slices.Sorted(maps.Keys(raw)) {
		v := raw[k]
		if str, ok := v.(string); ok && isTemplate(str) {
			fn, err := compile(name+"."+k, str)
			if err != nil {
				return nil, err
			}
			s[k] = chart.Computed(fn)
			continue
		}
		s[k] = chart.Literal(v)
	}
	return s, nil
}

// normalize converts the integer types produced by the TOML and YAML
// decoders to float64.
func normalize(d Definition) Definition {
	d.Padding = normalizeValue(d.Padding)
	d.LabelRadius = normalizeValue(d.LabelRadius)
	d.ColorScale = normalizeValue(d.ColorScale)
	for i, v := range d.Labels {
		d.Labels[i] = normalizeValue(v)
	}
	d.Style.Parent = normalizeMap(d.Style.Parent)
	d.Style.Data = normalizeMap(d.Style.Data)
	d.Style.Labels = normalizeMap(d.Style.Labels)
	for i, rec := range d.Data {
		d.Data[i] = normalizeMap(rec)
	}
	return d
}

func normalizeValue(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case map[string]any:
		return normalizeMap(x)
	case []any:
		for i := range x {
			x[i] = normalizeValue(x[i])
		}
		return x
	}
	return v
}

func normalizeMap(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
	return m
}
