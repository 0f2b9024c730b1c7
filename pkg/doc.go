// Package pkg provides the core libraries for piechart, a layout engine for
// pie and donut charts.
//
// # Overview
//
// piechart turns a list of records into fully resolved slice geometry, slice
// styles and label placement. The pkg directory is organized into these areas:
//
//  1. [render] - Layout (shared chart values, arc geometry, pie props) and sinks
//  2. [chartfile] - Chart file decoding and validation (JSON, TOML, YAML)
//  3. [pipeline] - Orchestration (load → layout → render)
//  4. [cache] - Content-addressed artifact storage
//  5. [errors], [observability], [buildinfo] - Ambient infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	chart file (json, toml, yaml)
//	         ↓
//	    [chartfile] package (decode, validate, build pie.Props)
//	         ↓
//	    [render/pie] package (angles, arcs, styles, labels)
//	         ↓
//	    [render/pie/sink] package (SVG/JSON, PNG/PDF via rsvg-convert)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/piechart/pkg/chartfile"
//	    "github.com/matzehuels/piechart/pkg/render/pie"
//	    "github.com/matzehuels/piechart/pkg/render/pie/sink"
//	)
//
//	props, _ := chartfile.Load("budget.yaml")
//	cp := pie.BaseProps(props, pie.DefaultProps())
//	svg := sink.RenderSVG(cp, sink.WithTitle("Budget"))
//
// Or build props in code:
//
//	cp := pie.BaseProps(pie.Props{
//	    Data: []chart.Datum{{X: "Rent", Y: 42}, {X: "Food", Y: 23}},
//	}, pie.DefaultProps())
//	for _, el := range cp.Ordered() {
//	    fmt.Println(el.EventKey, el.Data.Path, el.Labels.Orientation)
//	}
//
// [render]: github.com/matzehuels/piechart/pkg/render
// [render/pie]: github.com/matzehuels/piechart/pkg/render/pie
// [render/pie/sink]: github.com/matzehuels/piechart/pkg/render/pie/sink
// [chartfile]: github.com/matzehuels/piechart/pkg/chartfile
// [pipeline]: github.com/matzehuels/piechart/pkg/pipeline
// [cache]: github.com/matzehuels/piechart/pkg/cache
// [errors]: github.com/matzehuels/piechart/pkg/errors
// [observability]: github.com/matzehuels/piechart/pkg/observability
// [buildinfo]: github.com/matzehuels/piechart/pkg/buildinfo
package pkg
