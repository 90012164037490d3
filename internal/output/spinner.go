package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action while a spinner labelled title is shown.
// Without a terminal on stdout the action runs directly. When ctx is
// cancelled first, the context error is returned without waiting for the
// action to finish.
func RunWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if !IsTTY() {
		return action(ctx)
	}

	done := make(chan error, 1)
	go func() {
		done <- action(ctx)
	}()

	var actionErr error
	err := spinner.New().
		Title(title).
		Action(func() {
			select {
			case actionErr = <-done:
			case <-ctx.Done():
				actionErr = ctx.Err()
			}
		}).
		Run()
	if err != nil {
		return fmt.Errorf("running spinner: %w", err)
	}

	return actionErr
}
