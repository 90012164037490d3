package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ConfigEnv overrides the config file location.
const ConfigEnv = "CEPRESS_CONFIG"

// DefaultConfigFile returns ~/.cepress/config.yaml.
func DefaultConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".cepress", "config.yaml"), nil
}

// Locate returns the config file to read or write.
// An empty path falls back to $CEPRESS_CONFIG, then to DefaultConfigFile.
// A leading "~" is expanded to the home directory; "~user" is left alone.
func Locate(path string) (string, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return DefaultConfigFile()
	}
	return expandHome(path)
}

// Exists reports whether anything is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	return filepath.Join(home, rest), nil
}
