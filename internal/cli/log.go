package cli

import (
	"context"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/piechart/pkg/errors"
)

const logTimeFormat = "15:04:05.00"

// Log output formats accepted by --log-format.
const (
	LogFormatText   = "text"
	LogFormatLogfmt = "logfmt"
	LogFormatJSON   = "json"
)

var logFormats = map[string]log.Formatter{
	LogFormatText:   log.TextFormatter,
	LogFormatLogfmt: log.LogfmtFormatter,
	LogFormatJSON:   log.JSONFormatter,
}

// newLogger creates a text logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// logFormatter resolves a --log-format value.
func logFormatter(name string) (log.Formatter, error) {
	f, ok := logFormats[name]
	if !ok {
		return f, errors.ValidateFormat(name, logFormatNames())
	}
	return f, nil
}

// SetLogFormat switches the logger to the named output format.
func (c *CLI) SetLogFormat(name string) error {
	f, err := logFormatter(name)
	if err != nil {
		return err
	}
	c.Logger.SetFormatter(f)
	return nil
}

// progress logs the completion of one operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs "msg (12ms)" and records the elapsed time as a field.
func (p *progress) done(msg string) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg+" ("+elapsed.String()+")", "elapsed", elapsed)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the request-scoped logger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logFormatNames lists the accepted --log-format values for help text.
func logFormatNames() []string {
	names := make([]string, 0, len(logFormats))
	for name := range logFormats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
