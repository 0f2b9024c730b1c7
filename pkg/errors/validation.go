package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// ChartExtensions lists the file extensions accepted for chart definitions.
var ChartExtensions = []string{".json", ".toml", ".yaml", ".yml"}

// ValidateTitle validates a chart title for embedding in rendered output.
//
// The validation rules are intentionally conservative:
//   - Maximum length of 200 characters
//   - No control characters
func ValidateTitle(title string) error {
	const maxTitleLength = 200
	if len(title) > maxTitleLength {
		return New(ErrCodeInvalidInput, "title too long (max %d characters)", maxTitleLength)
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains invalid control characters")
		}
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (use %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateChartPath validates the path of a chart definition file.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be one of [ChartExtensions]
func ValidateChartPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(ChartExtensions, ext) {
		return New(ErrCodeInvalidFormat, "unsupported chart file %q (use %s)", filepath.Base(path), strings.Join(ChartExtensions, ", "))
	}

	return nil
}
