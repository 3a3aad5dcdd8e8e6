// Package errors provides structured error types for the docxwrap application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the conversion pipeline
//   - Machine-readable error codes for programmatic handling
//   - One fixed user-facing message per failure kind
//   - Error wrapping with context preservation
//
// # Error Codes
//
// A conversion session fails in one of a small number of terminal ways: I/O
// plumbing, image processing, the extraction tool missing from the
// environment, or a source that yields no pages. Skeleton integrity defects
// get their own code because they indicate a broken build of the tool itself,
// not bad user input.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeImage, "parse svg %s", name)
//	if errors.Is(err, errors.ErrCodeImage) {
//	    // Handle image-processing failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, cause, "copy %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for each terminal failure kind.
const (
	// ErrCodeIO covers filesystem and subprocess plumbing failures.
	ErrCodeIO Code = "IO_ERROR"

	// ErrCodeImage covers unparseable or unrenderable vector input.
	ErrCodeImage Code = "IMAGE_ERROR"

	// ErrCodeExtractorNotFound means the page-extraction tool is not installed.
	ErrCodeExtractorNotFound Code = "EXTRACTOR_NOT_FOUND"

	// ErrCodeSourceInvalid means the source document produced no usable pages.
	ErrCodeSourceInvalid Code = "SOURCE_INVALID"

	// ErrCodeSkeleton means a skeleton placeholder was missing or duplicated.
	// This is a defect in the shipped template, not a user error.
	ErrCodeSkeleton Code = "SKELETON_CORRUPT"

	// ErrCodeInvalidInput covers CLI argument validation failures.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
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
