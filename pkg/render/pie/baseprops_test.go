package pie

import (
	"math"
	"testing"

	"github.com/matzehuels/piechart/pkg/render/chart"
)

func threeSlices() []chart.Datum {
	return []chart.Datum{
		{X: "a", Y: 1},
		{X: "b", Y: 1},
		{X: "c", Y: 2},
	}
}

func TestBaseProps(t *testing.T) {
	pad := chart.Pad(10)
	cp := BaseProps(Props{Width: 400, Height: 400, Padding: &pad, Data: threeSlices()}, DefaultProps())

	if cp.Parent.Radius != 190 {
		t.Errorf("radius = %v, want 190", cp.Parent.Radius)
	}
	if cp.Parent.Path.OuterRadius != 190 || cp.Parent.Path.InnerRadius != 0 {
		t.Errorf("path = %+v", cp.Parent.Path)
	}
	if cp.Parent.Width != 400 || cp.Parent.Height != 400 {
		t.Errorf("size = %vx%v", cp.Parent.Width, cp.Parent.Height)
	}
	if cp.Parent.Style["height"] != "auto" || cp.Parent.Style["width"] != "100%" {
		t.Errorf("parent style = %v", cp.Parent.Style)
	}
	if len(cp.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(cp.Elements))
	}

	tests := []struct {
		key         string
		width       float64
		text        string
		orientation Orientation
		fill        string
	}{
		{"0", math.Pi / 2, "a", Right, "#cccccc"},
		{"1", math.Pi / 2, "b", Bottom, "#969696"},
		{"2", math.Pi, "c", Left, "#636363"},
	}
	for i, tt := range tests {
		el, ok := cp.Elements[tt.key]
		if !ok {
			t.Fatalf("missing element %q", tt.key)
		}
		if el.Data.Index != i || el.Labels.Index != i {
			t.Errorf("%s: index = %d/%d, want %d", tt.key, el.Data.Index, el.Labels.Index, i)
		}
		if math.Abs(el.Data.Slice.Width()-tt.width) > tol {
			t.Errorf("%s: width = %v, want %v", tt.key, el.Data.Slice.Width(), tt.width)
		}
		if el.Labels.Text == nil || *el.Labels.Text != tt.text {
			t.Errorf("%s: text = %v, want %s", tt.key, deref(el.Labels.Text), tt.text)
		}
		if el.Labels.Orientation != tt.orientation {
			t.Errorf("%s: orientation = %s, want %s", tt.key, el.Labels.Orientation, tt.orientation)
		}
		if el.Data.Style["fill"] != tt.fill {
			t.Errorf("%s: fill = %v, want %s", tt.key, el.Data.Style["fill"], tt.fill)
		}
		if el.Data.Style["stroke"] != "transparent" {
			t.Errorf("%s: stroke = %v, want theme stroke", tt.key, el.Data.Style["stroke"])
		}
	}

	// Grayscale labels are padded by 20.
	first := cp.Elements["0"].Labels
	r := 210.0
	if math.Abs(first.X-r*math.Cos(-math.Pi/4)) > tol || math.Abs(first.Y-r*math.Sin(-math.Pi/4)) > tol {
		t.Errorf("label 0 at (%v, %v)", first.X, first.Y)
	}
}

func TestBasePropsFallbacks(t *testing.T) {
	cp := BaseProps(Props{}, DefaultProps())

	if len(cp.Elements) != 5 {
		t.Errorf("got %d elements, want the 5 sample data", len(cp.Elements))
	}
	// Theme padding (50) applies before the fallback padding (30).
	if cp.Parent.Padding != chart.Pad(50) {
		t.Errorf("padding = %+v, want 50 on every side", cp.Parent.Padding)
	}
	if cp.Parent.Radius != 150 {
		t.Errorf("radius = %v, want 150", cp.Parent.Radius)
	}
}

func TestBasePropsEventKeyCollision(t *testing.T) {
	data := []chart.Datum{
		{X: "a", Y: 1, EventKey: "x"},
		{X: "b", Y: 1},
		{X: "c", Y: 1, EventKey: "x"},
	}
	cp := BaseProps(Props{Data: data}, DefaultProps())

	if len(cp.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(cp.Elements))
	}
	el := cp.Elements["x"]
	if el.Data.Index != 2 || el.Data.Datum.XName != "c" {
		t.Errorf("element x = slice %d (%s), want the later slice 2 (c)", el.Data.Index, el.Data.Datum.XName)
	}
	if _, ok := cp.Elements["1"]; !ok {
		t.Error("missing positional key 1")
	}
	if len(cp.Parent.Slices) != 3 {
		t.Errorf("parent keeps %d slices, want 3", len(cp.Parent.Slices))
	}
}

func TestBasePropsExplicitFillColorsAll(t *testing.T) {
	props := Props{
		Data:  threeSlices(),
		Style: chart.StyleSet{Data: chart.Style{"fill": chart.Literal("tomato")}},
	}
	for key, el := range BaseProps(props, DefaultProps()).Elements {
		if el.Data.Style["fill"] != "tomato" {
			t.Errorf("%s: fill = %v, want tomato", key, el.Data.Style["fill"])
		}
	}
}

func TestBasePropsColorCycling(t *testing.T) {
	data := make([]chart.Datum, 7)
	for i := range data {
		data[i] = chart.Datum{Y: 1}
	}
	props := Props{Data: data, ColorScale: chart.Colors("#111111", "#222222", "#333333")}
	cp := BaseProps(props, DefaultProps())

	ordered := cp.Ordered()
	for i := 0; i+3 < len(ordered); i++ {
		if a, b := ordered[i].Data.Style["fill"], ordered[i+3].Data.Style["fill"]; a != b {
			t.Errorf("slice %d fill %v != slice %d fill %v", i, a, i+3, b)
		}
	}
}

func TestBasePropsDatumStyle(t *testing.T) {
	data := []chart.Datum{{
		Y: 1,
		Style: chart.Style{
			"opacity": chart.Literal(0.5),
			"stroke":  chart.Literal("black"),
			"fill":    chart.Literal("blue"),
		},
	}}
	style := BaseProps(Props{Data: data}, DefaultProps()).Elements["0"].Data.Style

	if style["opacity"] != 0.5 {
		t.Errorf("opacity = %v, want 0.5", style["opacity"])
	}
	// Earlier layers win: palette fill and theme stroke shadow the datum.
	if style["fill"] != "#cccccc" {
		t.Errorf("fill = %v, want palette fill", style["fill"])
	}
	if style["stroke"] != "transparent" {
		t.Errorf("stroke = %v, want theme stroke", style["stroke"])
	}
}

func TestBasePropsComputedStyle(t *testing.T) {
	props := Props{
		Data: threeSlices(),
		Style: chart.StyleSet{Data: chart.Style{
			"opacity": chart.Computed(func(d chart.Datum) any { return d.Y / 2 }),
		}},
	}
	cp := BaseProps(props, DefaultProps())

	if got := cp.Elements["2"].Data.Style["opacity"]; got != 1.0 {
		t.Errorf("opacity = %v, want 1", got)
	}
	if got := cp.Elements["0"].Data.Style["opacity"]; got != 0.5 {
		t.Errorf("opacity = %v, want 0.5", got)
	}
}

func TestBasePropsMaterialTheme(t *testing.T) {
	cp := BaseProps(Props{Data: threeSlices(), Theme: Material()}, DefaultProps())

	if got := cp.Elements["0"].Data.Style["fill"]; got != "#F4511E" {
		t.Errorf("fill = %v, want first material color", got)
	}
	if got := cp.Elements["0"].Data.Style["stroke"]; got != "#ECEFF1" {
		t.Errorf("stroke = %v, want material stroke", got)
	}
}

func TestBasePropsDonut(t *testing.T) {
	pad := chart.Pad(0)
	props := Props{
		Width:        200,
		Height:       200,
		Padding:      &pad,
		InnerRadius:  chart.Float(40),
		CornerRadius: chart.Float(4),
		Data:         threeSlices(),
	}
	cp := BaseProps(props, DefaultProps())

	if cp.Parent.Path.InnerRadius != 40 || cp.Parent.Path.OuterRadius != 100 || cp.Parent.Path.CornerRadius != 4 {
		t.Errorf("path = %+v", cp.Parent.Path)
	}
	if el := cp.Elements["0"]; el.Data.Path != cp.Parent.Path {
		t.Errorf("slice path = %+v, want parent path", el.Data.Path)
	}
}

func TestBasePropsExplicitZeroEndAngle(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		wantStart  float64
		wantEnd    float64
	}{
		{"left half", -180, 0, -180, 0},
		{"reversed full turn", 360, 0, 360, 0},
		{"from zero", 0, 90, 0, 90},
	}

	data := []chart.Datum{{X: "a", Y: 1}, {X: "b", Y: 1}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Props{StartAngle: chart.Float(tt.start), EndAngle: chart.Float(tt.end), Data: data}
			ordered := BaseProps(props, DefaultProps()).Ordered()
			if len(ordered) != 2 {
				t.Fatalf("got %d elements, want 2", len(ordered))
			}
			first, last := ordered[0].Data.Slice, ordered[1].Data.Slice
			if got := degrees(first.StartAngle); math.Abs(got-tt.wantStart) > 1e-9 {
				t.Errorf("start = %v°, want %v°", got, tt.wantStart)
			}
			if got := degrees(last.EndAngle); math.Abs(got-tt.wantEnd) > 1e-9 {
				t.Errorf("end = %v°, want %v°", got, tt.wantEnd)
			}
		})
	}
}

func TestBasePropsThemeKeepsExplicitZero(t *testing.T) {
	theme := Grayscale()
	theme.Role(Kind).Props.InnerRadius = chart.Float(50)

	cp := BaseProps(Props{Theme: theme, InnerRadius: chart.Float(0), Data: threeSlices()}, DefaultProps())
	if cp.Parent.Path.InnerRadius != 0 {
		t.Errorf("inner radius = %v, want 0", cp.Parent.Path.InnerRadius)
	}
	cp = BaseProps(Props{Theme: theme, Data: threeSlices()}, DefaultProps())
	if cp.Parent.Path.InnerRadius != 50 {
		t.Errorf("inner radius = %v, want theme value 50", cp.Parent.Path.InnerRadius)
	}
}

func TestOrdered(t *testing.T) {
	cp := BaseProps(Props{Data: threeSlices()}, DefaultProps())
	for i, el := range cp.Ordered() {
		if el.Data.Index != i {
			t.Errorf("Ordered()[%d] has index %d", i, el.Data.Index)
		}
	}
}
