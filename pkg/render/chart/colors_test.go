package chart

import (
	"slices"
	"testing"
)

func TestGetColorScale(t *testing.T) {
	gray := GetColorScale("grayscale")
	if len(gray) != 4 || gray[0] != "#cccccc" {
		t.Errorf("grayscale = %v", gray)
	}

	if got := GetColorScale("no-such-palette"); !slices.Equal(got, gray) {
		t.Errorf("unknown palette = %v, want grayscale", got)
	}

	gray[0] = "#000000"
	if GetColorScale("grayscale")[0] != "#cccccc" {
		t.Error("GetColorScale returned shared backing array")
	}
}

func TestPaletteNames(t *testing.T) {
	names := PaletteNames()
	if !slices.IsSorted(names) {
		t.Errorf("PaletteNames() not sorted: %v", names)
	}
	for _, n := range names {
		if !IsPalette(n) {
			t.Errorf("IsPalette(%q) = false", n)
		}
		for _, c := range GetColorScale(n) {
			if !IsColor(c) {
				t.Errorf("palette %s: %q is not a color", n, c)
			}
		}
	}
	if IsPalette("rainbow") {
		t.Error("IsPalette(rainbow) = true")
	}
}

func TestColorScaleResolve(t *testing.T) {
	tests := []struct {
		name string
		cs   ColorScale
		want []string
		zero bool
	}{
		{"zero", ColorScale{}, GetColorScale(DefaultPalette), true},
		{"named", Named("red"), GetColorScale("red"), false},
		{"explicit", Colors("#111", "#222"), []string{"#111", "#222"}, false},
		{"empty explicit", Colors(), []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cs.Resolve(); !slices.Equal(got, tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
			if got := tt.cs.IsZero(); got != tt.zero {
				t.Errorf("IsZero() = %v, want %v", got, tt.zero)
			}
		})
	}
}

func TestIsColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#fff", true},
		{"#FFFFFF", true},
		{"#252525", true},
		{"tomato", true},
		{"Transparent", true},
		{"none", true},
		{"#ggg", false},
		{"#12345", false},
		{"notacolor", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsColor(tt.in); got != tt.want {
			t.Errorf("IsColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("white")
	if !ok {
		t.Fatal("ParseColor(white) failed")
	}
	if c.Hex() != "#ffffff" {
		t.Errorf("ParseColor(white).Hex() = %s", c.Hex())
	}
	if _, ok := ParseColor("transparent"); ok {
		t.Error("ParseColor(transparent) ok = true")
	}
}
