package cmd

import (
	"errors"

	"github.com/cepress/cli/internal/cmdtypes"
)

func asExitError(err error) *cmdtypes.ExitError {
	var exitErr *cmdtypes.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return nil
}
