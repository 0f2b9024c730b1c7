package pipeline

import (
	"github.com/matzehuels/piechart/pkg/chartfile"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

// Load reads and validates a chart file, picking the decoder from its extension.
func Load(path string) (pie.Props, error) {
	return chartfile.Load(path)
}

// Parse decodes chart bytes in the named format ("json", "toml" or "yaml").
func Parse(data []byte, format string) (pie.Props, error) {
	f, err := chartfile.ParseFormat(format)
	if err != nil {
		return pie.Props{}, err
	}
	return chartfile.Parse(data, f)
}
