package output

import (
	"fmt"
	"slices"
	"strings"
)

// Format selects how a plan is printed.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// Formats lists every accepted format.
var Formats = []Format{FormatTable, FormatYAML, FormatJSON}

// ParseFormat maps a flag value onto a Format, case-insensitively.
// "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("unknown output format %q", s)
	}
	return f, nil
}

// FormatNames returns the accepted formats as a comma-separated list.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
