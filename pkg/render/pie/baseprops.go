package pie

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/shape"
)

// ParentProps describe the chart container.
type ParentProps struct {
	Slices  []Slice          `json:"slices"`
	Path    shape.Arc        `json:"path"`
	Width   float64          `json:"width"`
	Height  float64          `json:"height"`
	Radius  float64          `json:"radius"`
	Padding chart.Padding    `json:"padding"`
	Style   chart.StyleProps `json:"style"`
}

// SliceProps are the render-ready properties of one slice.
type SliceProps struct {
	Index int              `json:"index"`
	Slice Slice            `json:"slice"`
	Path  shape.Arc        `json:"path"`
	Style chart.StyleProps `json:"style"`
	Datum chart.Datum      `json:"datum"`
}

// ElementProps bundles a slice with its label.
type ElementProps struct {
	EventKey string     `json:"event_key"`
	Data     SliceProps `json:"data"`
	Labels   LabelProps `json:"labels"`
}

// ChildProps is the output of [BaseProps]. Elements are keyed by event key;
// when two data share a key the later one wins.
type ChildProps struct {
	Parent   ParentProps             `json:"parent"`
	Elements map[string]ElementProps `json:"elements"`
}

// Ordered returns the elements in slice order.
func (c ChildProps) Ordered() []ElementProps {
	out := make([]ElementProps, 0, len(c.Elements))
	for _, el := range c.Elements {
		out = append(out, el)
	}
	slices.SortFunc(out, func(a, b ElementProps) int { return cmp.Compare(a.Data.Index, b.Data.Index) })
	return out
}

// BaseProps resolves props against the theme and fallback and computes the
// properties of the container and of every slice and label.
func BaseProps(props, fallback Props) ChildProps {
	theme := props.Theme
	if theme == nil {
		theme = fallback.Theme
	}
	props = chart.ModifyProps(props, theme.Role(Kind).Props, fallback)
	cv := Calculate(props)

	cp := ChildProps{
		Parent: ParentProps{
			Slices:  cv.Slices,
			Path:    cv.Path,
			Width:   props.Width,
			Height:  props.Height,
			Radius:  cv.Radius,
			Padding: cv.Padding,
			Style:   chart.Evaluate(cv.Style.Parent, chart.Datum{}),
		},
		Elements: make(map[string]ElementProps, len(cv.Slices)),
	}

	for i, s := range cv.Slices {
		d := s.Data
		key := d.EventKey
		if key == "" {
			key = strconv.Itoa(i)
		}
		dp := SliceProps{
			Index: i,
			Slice: s,
			Path:  cv.Path,
			Style: SliceStyle(d, i, cv),
			Datum: d,
		}
		cp.Elements[key] = ElementProps{
			EventKey: key,
			Data:     dp,
			Labels:   LabelPropsFor(props, dp, cv),
		}
	}
	return cp
}
