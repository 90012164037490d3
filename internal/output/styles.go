package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for every ANSI 256 color used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, packages.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "rewritten" file status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers and the welcome line.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles. Map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, paths, packages).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs and commands the user should run.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, hints).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Styles groups the styles used by composite renderers.
type Styles struct {
	Bold  lipgloss.Style
	Muted lipgloss.Style
	Title lipgloss.Style
}

// GetStyles returns the composite renderer styles.
func GetStyles() Styles {
	return Styles{
		Bold:  lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(ColorDimGray),
		Title: lipgloss.NewStyle().Bold(true).Foreground(ColorBlue),
	}
}

// File statuses reported for generated files.
const (
	StatusCreated   = "created"
	StatusRewritten = "rewritten"
)

// statusStyle returns the lipgloss style for a file status.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusRewritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width of the path column before the
// status suffix.
const minPathColumnWidth = 40

// FormatFileLine renders a project path with a right-aligned, color-coded
// status suffix.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("f:")
	styledPath := StyleNoun.Render(path)
	styledStatus := statusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// summaryLabelWidth aligns the value column of summary lines.
const summaryLabelWidth = 14

// FormatSummaryLine renders an aligned "label  value" pair used in the
// configuration summary.
func FormatSummaryLine(label, value string) string {
	if value == "" {
		return "  " + StyleDim.Render(label)
	}
	return "  " + StyleDim.Render(fmt.Sprintf("%-*s", summaryLabelWidth, label)) + StyleNoun.Render(value)
}

// FormatNextSteps renders the numbered follow-up commands shown after a
// successful run.
func FormatNextSteps(steps []string) string {
	var b strings.Builder
	b.WriteString(StyleSummary.Render("Next steps:"))
	b.WriteString("\n")
	for i, s := range steps {
		fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render(fmt.Sprintf("%d.", i+1)), StyleAction.Render(s))
	}
	return b.String()
}
