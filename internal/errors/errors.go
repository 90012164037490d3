// Package errors provides sentinel and structured errors for the cepress CLI.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes. Every failure exits with ExitGeneralError.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates the command failed.
	ExitGeneralError = 1
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the path the error refers to (optional).
	Location string

	// Field is the configuration field name (optional).
	Field string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error returns "type: message", with the field appended when set.
func (e *DetailError) Error() string {
	msg := e.Type + ": " + e.Message
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	return msg
}

// KeyVals returns the location, field and hint that are set, as logger
// key-value pairs.
func (e *DetailError) KeyVals() []any {
	var kv []any
	if e.Location != "" {
		kv = append(kv, "location", e.Location)
	}
	if e.Field != "" {
		kv = append(kv, "field", e.Field)
	}
	if e.Hint != "" {
		kv = append(kv, "hint", e.Hint)
	}
	return kv
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewAlreadyExistsError creates an error for a path that must not exist yet.
func NewAlreadyExistsError(location string) error {
	return &DetailError{
		Type:     "target exists",
		Message:  fmt.Sprintf("directory %q already exists", location),
		Location: location,
		Hint:     "Choose a different project name or remove the existing directory.",
		Cause:    ErrAlreadyExists,
	}
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the process exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitGeneralError
}
