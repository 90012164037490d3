package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid project name or configuration.
	ErrValidation = errors.New("validation error")

	// ErrAlreadyExists indicates the target project directory already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrConnectivity indicates the package registry could not be reached.
	ErrConnectivity = errors.New("connectivity error")

	// ErrCancelled indicates the user aborted the interactive prompts.
	ErrCancelled = errors.New("cancelled")

	// ErrToolFailed indicates an external tool exited with an error.
	ErrToolFailed = errors.New("external tool failed")
)
