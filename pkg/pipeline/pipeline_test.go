package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/observability"
	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

func testProps() pie.Props {
	pad := chart.Pad(10)
	return pie.Props{
		Width:   400,
		Height:  400,
		Padding: &pad,
		Data: []chart.Datum{
			{X: "a", Y: 1},
			{X: "b", Y: 1},
			{X: "c", Y: 2},
		},
	}
}

func testRunner() *Runner {
	return NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		formats []string
		wantErr bool
	}{
		{[]string{"svg"}, false},
		{[]string{"svg", "json", "png", "pdf"}, false},
		{nil, false},
		{[]string{"svg", "gif"}, true},
		{[]string{"SVG"}, true}, // case-sensitive
		{[]string{""}, true},
	}

	for _, tt := range tests {
		err := ValidateFormats(tt.formats)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormats(%v) code = %s, want %s", tt.formats, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	set := Options{Formats: []string{"json"}, Scale: 3}
	set.SetDefaults()
	if set.Formats[0] != FormatJSON || set.Scale != 3 {
		t.Errorf("SetDefaults overwrote explicit values: %+v", set)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{"defaults", Options{}, ""},
		{"all formats", Options{Formats: ValidFormats, Title: "Budget", Background: "#fff"}, ""},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"title control char", Options{Title: "a\nb"}, errors.ErrCodeInvalidInput},
		{"title too long", Options{Title: strings.Repeat("x", 201)}, errors.ErrCodeInvalidInput},
		{"negative scale", Options{Scale: -1}, errors.ErrCodeInvalidInput},
		{"scale too large", Options{Scale: 11}, errors.ErrCodeInvalidInput},
		{"bad background", Options{Background: "nope"}, errors.ErrCodeInvalidInput},
		{"named background", Options{Background: "white"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("Validate() code = %q, want %q (err = %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestOptionsWants(t *testing.T) {
	opts := Options{Formats: []string{"svg", "json"}}
	if !opts.Wants("json") {
		t.Error("Wants(json) = false")
	}
	if opts.Wants("png") {
		t.Error("Wants(png) = true")
	}
}

func TestGenerateLayout(t *testing.T) {
	cp := GenerateLayout(testProps())

	if cp.Parent.Radius != 190 {
		t.Errorf("Radius = %v, want 190", cp.Parent.Radius)
	}
	if len(cp.Elements) != 3 {
		t.Fatalf("len(Elements) = %d, want 3", len(cp.Elements))
	}
	if got := CountLabels(cp); got != 3 {
		t.Errorf("CountLabels = %d, want 3", got)
	}
}

func TestRunnerExecute(t *testing.T) {
	result, err := testRunner().Execute(context.Background(), testProps(), Options{
		Formats: []string{FormatSVG, FormatJSON},
		Title:   "Budget",
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	svg := string(result.Artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("svg artifact starts with %.20q", svg)
	}
	if !strings.Contains(svg, "<title>Budget</title>") {
		t.Error("svg artifact should carry the title")
	}

	var decoded map[string]any
	if err := json.Unmarshal(result.Artifacts[FormatJSON], &decoded); err != nil {
		t.Fatalf("json artifact does not decode: %v", err)
	}
	if decoded["title"] != "Budget" {
		t.Errorf("json title = %v, want Budget", decoded["title"])
	}

	if result.Stats.SliceCount != 3 || result.Stats.LabelCount != 3 {
		t.Errorf("Stats = %+v, want 3 slices and 3 labels", result.Stats)
	}
	if result.Stats.Radius != 190 {
		t.Errorf("Stats.Radius = %v, want 190", result.Stats.Radius)
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	_, err := testRunner().Execute(context.Background(), testProps(), Options{Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Execute() error = %v, want INVALID_FORMAT", err)
	}
}

func TestRunnerContext(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	expired, cancel2 := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel2()

	tests := []struct {
		name string
		ctx  context.Context
		want errors.Code
	}{
		{"cancelled", cancelled, errors.ErrCodeInternal},
		{"deadline", expired, errors.ErrCodeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testRunner().Execute(tt.ctx, testProps(), Options{})
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("Execute() code = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFormatUnsupported(t *testing.T) {
	_, err := RenderFormat(context.Background(), GenerateLayout(testProps()), "gif", Options{})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("RenderFormat(gif) error = %v, want UNSUPPORTED", err)
	}
}

func TestRunnerHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	layoutHooks := &recordingLayoutHooks{}
	renderHooks := &recordingRenderHooks{}
	observability.SetLayoutHooks(layoutHooks)
	observability.SetRenderHooks(renderHooks)

	_, err := testRunner().Execute(context.Background(), testProps(), Options{
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if layoutHooks.started != 3 || layoutHooks.completed != 3 {
		t.Errorf("layout hooks saw %d records and %d slices, want 3 and 3", layoutHooks.started, layoutHooks.completed)
	}
	if got := strings.Join(renderHooks.artifacts, ","); got != "svg,json" {
		t.Errorf("artifacts = %s, want svg,json", got)
	}
	if renderHooks.completed != 1 {
		t.Errorf("OnRenderComplete called %d times, want 1", renderHooks.completed)
	}
}

func TestParse(t *testing.T) {
	props, err := Parse([]byte(`{"data": [{"x": "a", "y": 1}, {"x": "b", "y": 3}]}`), "json")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(props.Data) != 2 || props.Data[1].Y != 3 {
		t.Errorf("Data = %+v", props.Data)
	}

	if _, err := Parse([]byte(`{}`), "xml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Parse(xml) error = %v, want INVALID_FORMAT", err)
	}
}

type recordingLayoutHooks struct {
	observability.NoopLayoutHooks
	started, completed int
}

func (h *recordingLayoutHooks) OnLayoutStart(_ context.Context, n int) { h.started = n }
func (h *recordingLayoutHooks) OnLayoutComplete(_ context.Context, n int, _ time.Duration, _ error) {
	h.completed = n
}

type recordingRenderHooks struct {
	observability.NoopRenderHooks
	artifacts []string
	completed int
}

func (h *recordingRenderHooks) OnArtifact(_ context.Context, format string, _ int, _ time.Duration, _ error) {
	h.artifacts = append(h.artifacts, format)
}

func (h *recordingRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.completed++
}
