package chart

import "strconv"

// Datum is one input record of a chart.
//
// X is the category. [GetData] replaces string categories with their 1-based
// position among the distinct categories and keeps the original text in XName.
// Y drives the size of the element drawn for the datum. Label and EventKey are
// optional; empty means absent. Style carries per-datum style overrides.
type Datum struct {
	X        any     `json:"x"`
	XName    string  `json:"x_name,omitempty"`
	Y        float64 `json:"y"`
	Label    string  `json:"label,omitempty"`
	EventKey string  `json:"event_key,omitempty"`
	Style    Style   `json:"-"`
}

// GetData returns a normalized copy of data. Missing categories become the
// 1-based position of the datum, and string categories are mapped to their
// 1-based index in order of first appearance with the text kept in XName.
func GetData(data []Datum) []Datum {
	out := make([]Datum, len(data))
	categories := make(map[string]int)
	for i, d := range data {
		switch x := d.X.(type) {
		case nil:
			d.X = float64(i + 1)
		case string:
			idx, ok := categories[x]
			if !ok {
				idx = len(categories) + 1
				categories[x] = idx
			}
			if d.XName == "" {
				d.XName = x
			}
			d.X = float64(idx)
		}
		out[i] = d
	}
	return out
}

// AddEventKeys returns a copy of data where every datum without an event key
// is keyed by its position. Explicit keys are kept even if they collide.
func AddEventKeys(data []Datum) []Datum {
	out := make([]Datum, len(data))
	for i, d := range data {
		if d.EventKey == "" {
			d.EventKey = strconv.Itoa(i)
		}
		out[i] = d
	}
	return out
}
