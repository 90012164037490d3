package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cepress/cli/internal/testutil"
)

// execute runs the root command with args and an isolated home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	testutil.IsolateHome(t)

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

// configPath returns a config file location inside a fresh temp dir.
func configPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)

	exitErr := asExitError(err)
	require.NotNil(t, exitErr, "expected an ExitError, got %T", err)
	require.Equal(t, code, exitErr.Code)
}
