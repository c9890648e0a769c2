// Package errors provides structured error types for the kbsvg generator.
//
// Error codes separate the two failure kinds the tool recognizes:
// missing input files (FILE_NOT_FOUND) and everything that goes wrong
// after the files were found (INVALID_CONFIG, GENERATION_FAILED). The
// CLI maps both to a non-zero exit status; no partial output is ever
// written.
//
//	err := errors.New(errors.ErrCodeFileNotFound, "layout file %s does not exist", path)
//	if errors.Is(err, errors.ErrCodeFileNotFound) {
//	    // print usage hint
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// ErrCodeFileNotFound reports a missing input file (layout or vial).
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	// ErrCodeInvalidConfig reports a layout document that was read but
	// could not be decoded.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	// ErrCodeInvalidFormat reports an unsupported output format flag.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	// ErrCodeGeneration reports any other failure during rendering or
	// writing the output document.
	ErrCodeGeneration Code = "GENERATION_FAILED"
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
