package chartfile

// Definition is the decoded form of a chart file. Nil angles and radii are
// absent from the file.
type Definition struct {
	Width        float64  `json:"width" toml:"width" yaml:"width"`
	Height       float64  `json:"height" toml:"height" yaml:"height"`
	Padding      any      `json:"padding" toml:"padding" yaml:"padding"`
	StartAngle   *float64 `json:"start_angle" toml:"start_angle" yaml:"start_angle"`
	EndAngle     *float64 `json:"end_angle" toml:"end_angle" yaml:"end_angle"`
	PadAngle     *float64 `json:"pad_angle" toml:"pad_angle" yaml:"pad_angle"`
	CornerRadius *float64 `json:"corner_radius" toml:"corner_radius" yaml:"corner_radius"`
	InnerRadius  *float64 `json:"inner_radius" toml:"inner_radius" yaml:"inner_radius"`
	LabelRadius  any      `json:"label_radius" toml:"label_radius" yaml:"label_radius"`

	ColorScale    any    `json:"color_scale" toml:"color_scale" yaml:"color_scale"`
	Labels        []any  `json:"labels" toml:"labels" yaml:"labels"`
	LabelTemplate string `json:"label_template" toml:"label_template" yaml:"label_template" validate:"excluded_with=Labels"`
	Theme         string `json:"theme" toml:"theme" yaml:"theme" validate:"omitempty,theme"`

	XKey string `json:"x_key" toml:"x_key" yaml:"x_key"`
	YKey string `json:"y_key" toml:"y_key" yaml:"y_key"`

	Style StyleDefinition  `json:"style" toml:"style" yaml:"style"`
	Data  []map[string]any `json:"data" toml:"data" yaml:"data"`
}

// StyleDefinition holds the raw style maps of a chart file.
type StyleDefinition struct {
	Parent map[string]any `json:"parent" toml:"parent" yaml:"parent"`
	Data   map[string]any `json:"data" toml:"data" yaml:"data"`
	Labels map[string]any `json:"labels" toml:"labels" yaml:"labels"`
}

// Record keys with a fixed meaning. Any other key is a style override.
const (
	KeyX        = "x"
	KeyY        = "y"
	KeyLabel    = "label"
	KeyEventKey = "event_key"
)

func (d Definition) xKey() string {
	if d.XKey != "" {
		return d.XKey
	}
	return KeyX
}

func (d Definition) yKey() string {
	if d.YKey != "" {
		return d.YKey
	}
	return KeyY
}
