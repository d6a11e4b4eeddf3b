// Package errors provides structured error types for the graphderiv
// service boundary.
//
// Core packages return plain sentinel or typed errors. The CLI and the
// HTTP API convert them with [FromCore] into an [*Error] carrying a
// machine-readable [Code], and [HTTPStatus] maps the code to a response
// status.
//
// # Error Codes
//
//   - INVALID_INPUT: malformed request or parameters
//   - INVALID_GRAPH: the temporal graph violates a structural rule
//   - INVALID_WINDOW: the window (t, Δ) does not fit the lifetime
//   - INVALID_DELTA: Δ is outside [1, τ]
//   - NOT_FOUND: a referenced file or resource does not exist
//   - INTERNAL_ERROR: anything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "missing graph")
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "render %s", name)
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/matzehuels/graphderiv/pkg/generate"
	"github.com/matzehuels/graphderiv/pkg/temporal"
)

// Code represents a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidGraph  Code = "INVALID_GRAPH"
	ErrCodeInvalidWindow Code = "INVALID_WINDOW"
	ErrCodeInvalidDelta  Code = "INVALID_DELTA"
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// FromCore classifies an error returned by the core packages. Errors that
// already carry a code are returned unchanged; nil stays nil. The message
// of the result is the original error text.
func FromCore(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: classify(err), Message: err.Error(), Cause: err}
}

func classify(err error) Code {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, temporal.ErrInvalidWindow), errors.Is(err, temporal.ErrOutOfRange):
		return ErrCodeInvalidWindow
	case errors.Is(err, temporal.ErrInvalidDelta):
		return ErrCodeInvalidDelta
	case errors.Is(err, temporal.ErrDuplicateVertex),
		errors.Is(err, temporal.ErrUnknownVertex),
		errors.Is(err, temporal.ErrSelfLoop),
		errors.Is(err, temporal.ErrParallelEdge):
		return ErrCodeInvalidGraph
	case errors.Is(err, generate.ErrNegativeVertices),
		errors.Is(err, generate.ErrNegativeSnapshots),
		errors.Is(err, generate.ErrProbability),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return ErrCodeInvalidInput
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound
	default:
		return ErrCodeInternal
	}
}

// HTTPStatus maps an error code to the HTTP status used in API responses.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeInvalidGraph, ErrCodeInvalidWindow, ErrCodeInvalidDelta:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
