package errors

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"simple", "Monthly budget", false},
		{"unicode", "Budget – 2026 ☂", false},

		{"too long", strings.Repeat("x", 201), true},
		{"newline", "line\nbreak", true},
		{"null byte", "foo\x00bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"svg", "json"}
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"svg", "svg", false},
		{"json", "json", false},

		{"empty", "", true},
		{"unknown", "gif", true},
		{"case sensitive", "SVG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateChartPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"json", "chart.json", ""},
		{"toml", "charts/budget.toml", ""},
		{"yaml", "/tmp/chart.yaml", ""},
		{"yml upper", "CHART.YML", ""},

		{"empty", "", ErrCodeInvalidPath},
		{"control char", "chart\x01.json", ErrCodeInvalidPath},
		{"no extension", "chart", ErrCodeInvalidFormat},
		{"wrong extension", "chart.csv", ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChartPath(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateChartPath(%q) code = %q, want %q (err %v)", tt.input, got, tt.wantCode, err)
			}
		})
	}
}
