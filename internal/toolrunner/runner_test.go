package toolrunner

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRun_Success(t *testing.T) {
	requireSh(t)

	dir := t.TempDir()
	var out bytes.Buffer
	r := &Runner{Stdout: &out}

	err := r.Run(context.Background(), dir, "sh", "-c", "echo hello > marker && echo done")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "marker"))
	assert.Equal(t, "done\n", out.String())
}

func TestRun_FailureIncludesStderr(t *testing.T) {
	requireSh(t)

	err := New().Run(context.Background(), t.TempDir(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit code 3")
	assert.Contains(t, err.Error(), "boom")
}

func TestRun_MissingBinary(t *testing.T) {
	err := New().Run(context.Background(), os.TempDir(), "cepress-no-such-binary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cepress-no-such-binary")
}

func TestRun_CancelledContext(t *testing.T) {
	requireSh(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New().Run(ctx, t.TempDir(), "sh", "-c", "sleep 5")
	assert.Error(t, err)
}
