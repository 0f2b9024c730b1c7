package sink

import (
	"encoding/json"
	"math"

	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	title string
	paths bool
}

// WithJSONTitle records the chart title in the output.
func WithJSONTitle(title string) JSONOption { return func(r *jsonRenderer) { r.title = title } }

// WithJSONPaths includes the SVG path data of every slice.
func WithJSONPaths() JSONOption { return func(r *jsonRenderer) { r.paths = true } }

type jsonOutput struct {
	Title        string         `json:"title,omitempty"`
	Width        float64        `json:"width"`
	Height       float64        `json:"height"`
	Radius       float64        `json:"radius"`
	InnerRadius  float64        `json:"inner_radius"`
	CornerRadius float64        `json:"corner_radius"`
	CenterX      float64        `json:"center_x"`
	CenterY      float64        `json:"center_y"`
	Padding      chart.Padding  `json:"padding"`
	Style        map[string]any `json:"style,omitempty"`
	Slices       []jsonSlice    `json:"slices"`
}

type jsonSlice struct {
	Key        string         `json:"key"`
	Index      int            `json:"index"`
	X          any            `json:"x"`
	XName      string         `json:"x_name,omitempty"`
	Y          *float64       `json:"y"`
	StartAngle float64        `json:"start_angle"`
	EndAngle   float64        `json:"end_angle"`
	Path       string         `json:"path,omitempty"`
	Style      map[string]any `json:"style,omitempty"`
	Label      jsonLabel      `json:"label"`
}

type jsonLabel struct {
	Text           *string        `json:"text"`
	X              float64        `json:"x"`
	Y              float64        `json:"y"`
	Orientation    string         `json:"orientation"`
	TextAnchor     string         `json:"text_anchor"`
	VerticalAnchor string         `json:"vertical_anchor"`
	Angle          *float64       `json:"angle,omitempty"`
	Style          map[string]any `json:"style,omitempty"`
}

// RenderJSON exports the resolved chart as a pretty-printed JSON document:
// canvas size and centre, radius, and per slice its key, datum, angles,
// evaluated style and label placement. Slices are listed in layout order.
//
// Values that JSON cannot represent (NaN, ±Inf) are written as null.
func RenderJSON(cp pie.ChildProps, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	p := cp.Parent
	out := jsonOutput{
		Title:        r.title,
		Width:        p.Width,
		Height:       p.Height,
		Radius:       p.Radius,
		InnerRadius:  p.Path.InnerRadius,
		CornerRadius: p.Path.CornerRadius,
		CenterX:      p.Padding.Left + p.Radius,
		CenterY:      p.Padding.Top + p.Radius,
		Padding:      p.Padding,
		Style:        jsonStyle(p.Style),
		Slices:       buildJSONSlices(cp, r.paths),
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONSlices(cp pie.ChildProps, paths bool) []jsonSlice {
	elements := cp.Ordered()
	out := make([]jsonSlice, 0, len(elements))
	for _, el := range elements {
		d, s, l := el.Data.Datum, el.Data.Slice, el.Labels
		js := jsonSlice{
			Key:        el.EventKey,
			Index:      el.Data.Index,
			X:          d.X,
			XName:      d.XName,
			Y:          finite(d.Y),
			StartAngle: orZero(s.StartAngle),
			EndAngle:   orZero(s.EndAngle),
			Style:      jsonStyle(el.Data.Style),
			Label: jsonLabel{
				Text:           l.Text,
				X:              orZero(l.X),
				Y:              orZero(l.Y),
				Orientation:    string(l.Orientation),
				TextAnchor:     l.TextAnchor,
				VerticalAnchor: l.VerticalAnchor,
				Angle:          l.Angle,
				Style:          jsonStyle(l.Style),
			},
		}
		if paths {
			js.Path = el.Data.Path.Path(s.StartAngle, s.EndAngle)
		}
		out = append(out, js)
	}
	return out
}

func jsonStyle(s chart.StyleProps) map[string]any {
	if len(s) == 0 {
		return nil
	}
	out := make(map[string]any, len(s))
	for k, v := range s {
		if f, ok := v.(float64); ok {
			if p := finite(f); p != nil {
				out[k] = *p
			} else {
				out[k] = nil
			}
			continue
		}
		out[k] = v
	}
	return out
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func orZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
