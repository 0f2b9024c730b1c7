package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/observability"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

// Runner encapsulates pipeline execution with logging and observability hooks.
// Both CLI and API use it to avoid duplicating stage wiring.
//
// The Runner is stateless except for its logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, props pie.Props, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	layoutStart := time.Now()
	cp, err := r.Layout(ctx, props)
	if err != nil {
		return nil, err
	}

	result := &Result{Layout: cp}
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.SliceCount = len(cp.Parent.Slices)
	result.Stats.LabelCount = CountLabels(cp)
	result.Stats.Radius = cp.Parent.Radius

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, cp, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// Load reads a chart file and logs what it found.
func (r *Runner) Load(ctx context.Context, path string) (pie.Props, error) {
	if err := checkContext(ctx); err != nil {
		return pie.Props{}, err
	}
	props, err := Load(path)
	if err != nil {
		return pie.Props{}, err
	}
	r.Logger.Debug("loaded chart", "path", path, "records", len(props.Data))
	return props, nil
}

// Layout computes child props and emits layout hooks.
func (r *Runner) Layout(ctx context.Context, props pie.Props) (pie.ChildProps, error) {
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, len(props.Data))
	start := time.Now()

	if err := checkContext(ctx); err != nil {
		hooks.OnLayoutComplete(ctx, 0, time.Since(start), err)
		return pie.ChildProps{}, err
	}

	cp := GenerateLayout(props)
	duration := time.Since(start)
	hooks.OnLayoutComplete(ctx, len(cp.Parent.Slices), duration, nil)

	r.Logger.Info("computed layout",
		"slices", len(cp.Parent.Slices),
		"radius", cp.Parent.Radius,
		"duration", duration)
	if n := len(cp.Parent.Slices) - len(cp.Elements); n > 0 {
		r.Logger.Warn("duplicate event keys collapsed elements", "lost", n)
	}
	return cp, nil
}

// Render generates all requested artifacts and emits render hooks.
func (r *Runner) Render(ctx context.Context, cp pie.ChildProps, opts Options) (map[string][]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := checkContext(ctx); err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, err
		}

		formatStart := time.Now()
		data, err := RenderFormat(ctx, cp, format, opts)
		hooks.OnArtifact(ctx, format, len(data), time.Since(formatStart), err)
		if err != nil {
			// A killed converter reports an exec error; surface the deadline instead.
			if cerr := checkContext(ctx); cerr != nil {
				err = cerr
			} else if !errors.Is(err, errors.ErrCodeUnsupported) {
				err = errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
			}
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, err
		}
		artifacts[format] = data
		r.Logger.Debug("rendered artifact", "format", format, "bytes", len(data))
	}

	duration := time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, duration, nil)
	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", duration)
	return artifacts, nil
}

// checkContext maps a finished context to a structured error.
func checkContext(ctx context.Context) error {
	err := ctx.Err()
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, err, "pipeline timed out")
	default:
		return errors.Wrap(errors.ErrCodeInternal, err, "pipeline cancelled")
	}
}
