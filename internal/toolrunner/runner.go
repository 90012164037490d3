// Package toolrunner runs external tools inside a generated project.
package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/cepress/cli/internal/output"
)

// Runner executes commands with exec.CommandContext.
type Runner struct {
	// Stdout receives the command output. If nil, output is discarded.
	Stdout io.Writer
}

// New creates a runner that discards command output.
func New() *Runner {
	return &Runner{}
}

// Run executes name with args in dir. Stderr is captured and included in
// the returned error.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmdline := strings.TrimSpace(name + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stdout = r.stdout()
	cmd.Stderr = &stderr

	output.Debug("running command", "cmd", cmdline, "dir", dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				return fmt.Errorf("%s failed with exit code %d", cmdline, exitErr.ExitCode())
			}
			return fmt.Errorf("%s failed with exit code %d: %s", cmdline, exitErr.ExitCode(), msg)
		}
		return fmt.Errorf("%s: %w", cmdline, err)
	}

	return nil
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return io.Discard
}
