// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// IsolateHome points HOME at a fresh temporary directory and clears the
// CEPRESS_* variables that would leak the developer's configuration into a
// test. It returns the new home directory.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"CEPRESS_CONFIG",
		"CEPRESS_REGISTRY_URL",
		"CEPRESS_REGISTRY_TIMEOUT",
		"CEPRESS_REGISTRY_OFFLINE",
		"CEPRESS_LOG_TIMESTAMPS",
	} {
		t.Setenv(key, "")
	}
	return home
}

// ReadFile returns the content of root/rel, failing the test on error.
// rel uses forward slashes.
func ReadFile(t *testing.T, root, rel string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(content)
}

// ListFiles returns every regular file below root as a sorted list of
// slash-separated relative paths.
func ListFiles(t *testing.T, root string) []string {
	t.Helper()

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", root, err)
	}

	sort.Strings(files)
	return files
}
