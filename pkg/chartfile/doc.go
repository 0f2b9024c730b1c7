// Package chartfile reads pie chart definitions from JSON, TOML and YAML
// files and converts them to [pie.Props].
//
// # Format
//
// All three formats share the same keys. In YAML:
//
//	width: 400
//	height: 400
//	padding: 20                 # or {top: 10, right: 20, bottom: 10, left: 20}
//	start_angle: 0
//	end_angle: 360
//	pad_angle: 2
//	inner_radius: 60
//	color_scale: qualitative    # or a list of colors
//	theme: material
//	label_template: "{{ .XName }} ({{ .Y }})"
//	style:
//	  data:
//	    stroke: white
//	  labels:
//	    fontSize: 12
//	data:
//	  - {x: Rent, y: 1200}
//	  - {x: Food, y: 450, label: Groceries}
//	  - {x: Fun, y: 200, fill: tomato}
//
// Data records understand x, y, label and event_key. Every other key is a
// per-datum style override. Use x_key and y_key to read categories and values
// from differently named keys.
//
// # Templates
//
// A style value, label_radius or label_template containing "{{" is a Go
// text/template evaluated against each [chart.Datum], so fields such as .X,
// .XName, .Y and .Label are available. Templates that fail to execute yield
// no value.
//
// # Validation
//
// [Parse] validates structure only: known theme and palette names, color
// strings, text anchors and that labels and label_template are not both set.
// Geometry (sizes, padding, angles) is passed through unchecked.
package chartfile
