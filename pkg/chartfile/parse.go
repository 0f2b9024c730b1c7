package chartfile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

// Format identifies a chart file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatTOML, FormatYAML}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	if err := errors.ValidateChartPath(path); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatYAML, nil
	}
}

// ParseFormat resolves a format name such as "yml" or "json".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q (use json, toml, yaml)", name)
}

// Decode decodes and validates a chart definition.
func Decode(data []byte, format Format) (Definition, error) {
	var d Definition
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&d)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &d)
		if err == nil {
			// Nested keys of loosely typed fields show up as undecoded.
			for _, key := range md.Undecoded() {
				if len(key) == 1 {
					return d, errors.New(errors.ErrCodeInvalidChart, "unknown key %q", key.String())
				}
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&d)
	default:
		return d, errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", format)
	}
	if err != nil {
		return d, errors.Wrap(errors.ErrCodeInvalidChart, err, "failed to decode %s chart", format)
	}
	d = normalize(d)
	if err := Validate(d); err != nil {
		return d, err
	}
	return d, nil
}

// Parse decodes, validates and converts a chart definition.
func Parse(data []byte, format Format) (pie.Props, error) {
	d, err := Decode(data, format)
	if err != nil {
		return pie.Props{}, err
	}
	return d.Props()
}

// Load reads a chart file, picking the format from its extension.
func Load(path string) (pie.Props, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return pie.Props{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return pie.Props{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file not found: %s", path)
		}
		return pie.Props{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read %s", path)
	}
	return Parse(data, format)
}
