package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

const sliceInteractionCSS = `
    .slice { transition: opacity 0.2s ease; }
    .slice.dim, .slice-label.dim { opacity: 0.35; }
    .slice-label { transition: opacity 0.2s ease; pointer-events: none; }`

const sliceInteractionJS = `
    function highlight(key) {
      document.querySelectorAll('.slice, .slice-label').forEach(el => el.classList.toggle('dim', el.dataset.key !== key));
    }
    function clearHighlight() {
      document.querySelectorAll('.slice, .slice-label').forEach(el => el.classList.remove('dim'));
    }
    document.querySelectorAll('.slice').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.dataset.key));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// presentationAttrs are style keys written as SVG attributes.
var presentationAttrs = map[string]bool{
	"fill":            true,
	"fillOpacity":     true,
	"stroke":          true,
	"strokeWidth":     true,
	"strokeOpacity":   true,
	"strokeDasharray": true,
	"strokeLinejoin":  true,
	"opacity":         true,
	"fontFamily":      true,
	"fontSize":        true,
	"fontWeight":      true,
	"fontStyle":       true,
	"letterSpacing":   true,
	"textDecoration":  true,
	"cursor":          true,
	"visibility":      true,
	"pointerEvents":   true,
	"shapeRendering":  true,
}

// layoutKeys are consumed by the layout and never rendered.
var layoutKeys = map[string]bool{
	"padding":        true,
	"angle":          true,
	"textAnchor":     true,
	"verticalAnchor": true,
}

var baselines = map[string]string{
	pie.AnchorStart:  "hanging",
	pie.AnchorMiddle: "central",
	pie.AnchorEnd:    "auto",
}

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title       string
	interactive bool
	background  string
}

// WithTitle adds a <title> element.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// WithInteraction dims the other slices while one is hovered.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

// WithBackground fills the canvas with color.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// RenderSVG draws the chart as a standalone SVG document.
func RenderSVG(cp pie.ChildProps, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	p := cp.Parent
	elements := cp.Ordered()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s"%s>`+"\n",
		num(p.Width), num(p.Height), num(p.Width), num(p.Height), styleAttr(p.Style, nil))

	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", EscapeXML(r.title))
	}
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" width="100%%" height="100%%" fill="%s"/>`+"\n", EscapeXML(r.background))
	}

	fmt.Fprintf(&buf, `  <g class="pie" transform="translate(%s,%s)">`+"\n",
		num(p.Padding.Left+p.Radius), num(p.Padding.Top+p.Radius))
	for _, el := range elements {
		renderSlice(&buf, el)
	}
	for _, el := range elements {
		renderLabel(&buf, el)
	}
	buf.WriteString("  </g>\n")

	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", sliceInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", sliceInteractionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSlice(buf *bytes.Buffer, el pie.ElementProps) {
	s := el.Data.Slice
	key := EscapeXML(el.EventKey)
	fmt.Fprintf(buf, `    <path class="slice" id="slice-%s" data-key="%s" d="%s"%s/>`+"\n",
		key, key, el.Data.Path.Path(s.StartAngle, s.EndAngle), styleAttrs(el.Data.Style))
}

func renderLabel(buf *bytes.Buffer, el pie.ElementProps) {
	l := el.Labels
	if l.Text == nil || math.IsNaN(l.X) || math.IsNaN(l.Y) {
		return
	}
	x, y := num(l.X), num(l.Y)
	fmt.Fprintf(buf, `    <text class="slice-label" data-key="%s" x="%s" y="%s" text-anchor="%s" dominant-baseline="%s"`,
		EscapeXML(el.EventKey), x, y, EscapeXML(l.TextAnchor), baseline(l.VerticalAnchor))
	if l.Angle != nil {
		fmt.Fprintf(buf, ` transform="rotate(%s,%s,%s)"`, num(*l.Angle), x, y)
	}
	fmt.Fprintf(buf, "%s>%s</text>\n", styleAttrs(l.Style), EscapeXML(*l.Text))
}

func baseline(verticalAnchor string) string {
	if b, ok := baselines[verticalAnchor]; ok {
		return b
	}
	return "auto"
}

// styleAttrs writes presentation attributes followed by an inline style for
// the remaining keys.
func styleAttrs(style chart.StyleProps) string {
	var b strings.Builder
	var rest []string
	for _, k := range style.Keys() {
		switch {
		case layoutKeys[k]:
		case presentationAttrs[k]:
			if v, ok := style.String(k); ok {
				fmt.Fprintf(&b, ` %s="%s"`, kebab(k), EscapeXML(formatValue(style[k], v)))
			}
		default:
			rest = append(rest, k)
		}
	}
	if len(rest) > 0 {
		b.WriteString(styleAttr(style, rest))
	}
	return b.String()
}

// styleAttr renders keys (all keys when nil) as a style="" attribute.
func styleAttr(style chart.StyleProps, keys []string) string {
	if keys == nil {
		keys = style.Keys()
	}
	var decls []string
	for _, k := range keys {
		v, ok := style.String(k)
		if !ok || v == "" {
			continue
		}
		decls = append(decls, kebab(k)+":"+formatValue(style[k], v))
	}
	if len(decls) == 0 {
		return ""
	}
	return fmt.Sprintf(` style="%s"`, EscapeXML(strings.Join(decls, ";")))
}

func formatValue(raw any, s string) string {
	if f, ok := raw.(float64); ok {
		return num(f)
	}
	return s
}

// kebab converts camelCase style keys to CSS property names.
func kebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EscapeXML escapes s for use in XML text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
