// Package errors provides the structured errors of piechart's outer layers.
//
// The layout core never fails: malformed input yields degenerate geometry.
// Everything around it (chart files, the pipeline, the CLI and the HTTP API)
// reports failures as an [*Error] with a machine-readable [Code], a message
// fit for users and, for chart validation, the paths of the offending
// fields:
//
//	err := errors.New(errors.ErrCodeInvalidChart, "data[2].fill: %q is not a color", v).
//	    WithFields("data[2].fill")
//
//	errors.GetCode(err)     // INVALID_CHART
//	errors.UserMessage(err) // data[2].fill: "nope" is not a color
//	errors.Fields(err)      // [data[2].fill]
//
// # Error Codes
//
//   - INVALID_*: the request or chart file is malformed
//   - *_NOT_FOUND: a file or resource is missing
//   - RENDER_FAILED, TIMEOUT: producing an artifact failed
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// [Is] matches a code anywhere in the chain, so a RENDER_FAILED wrapping a
// TIMEOUT answers to both. [GetCode] returns the outermost code, which is
// what the CLI and HTTP API report.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Input validation
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidChart   Code = "INVALID_CHART"
	ErrCodeInvalidTheme   Code = "INVALID_THEME"
	ErrCodeInvalidPalette Code = "INVALID_PALETTE"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Missing resources
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Artifact production
	ErrCodeRenderFailed Code = "RENDER_FAILED"
	ErrCodeTimeout      Code = "TIMEOUT"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error

	// Fields lists chart field paths (e.g. "style.data.fill") the error is about.
	Fields []string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// WithFields records the chart field paths the error is about and returns e.
func (e *Error) WithFields(paths ...string) *Error {
	e.Fields = append(e.Fields, paths...)
	return e
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Fields collects the field paths of every *Error in err's chain,
// outermost first.
func Fields(err error) []string {
	var out []string
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		out = append(out, e.Fields...)
		err = e.Cause
	}
	return out
}

// UserMessage returns the message of the outermost *Error without its code
// prefix or cause, or err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
