//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrAlreadyExists)
	assert.NotEqual(t, ErrValidation, ErrConnectivity)
	assert.NotEqual(t, ErrCancelled, ErrToolFailed)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid project name",
		Location: "./My App",
		Field:    "projectName",
		Hint:     "Use dashes",
	}

	assert.Equal(t, "validation failed: invalid project name (projectName)", detail.Error())
	assert.Equal(t, "target exists: x", (&DetailError{Type: "target exists", Message: "x"}).Error())
}

func TestDetailErrorKeyVals(t *testing.T) {
	detail := &DetailError{Location: "./My App", Field: "projectName", Hint: "Use dashes"}
	assert.Equal(t, []any{"location", "./My App", "field", "projectName", "hint", "Use dashes"}, detail.KeyVals())

	assert.Empty(t, (&DetailError{Type: "t", Message: "m"}).KeyVals())
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad name", "", "projectName", "Use dashes")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "projectName", detail.Field)
}

func TestNewAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("my-app")

	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.Contains(t, err.Error(), `"my-app" already exists`)
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, ExitSuccess},
		{"plain error is general", errors.New("boom"), ExitGeneralError},
		{"exit error keeps code", NewExitError(errors.New("boom"), 3), 3},
		{"wrapped exit error", fmt.Errorf("outer: %w", NewExitError(ErrValidation, ExitGeneralError)), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	err := NewExitError(ErrAlreadyExists, ExitGeneralError)
	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.Equal(t, "already exists", err.Error())
}
