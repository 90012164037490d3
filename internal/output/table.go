package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// FileEntry is one file shown in a plan table or a created file tree.
type FileEntry struct {
	Path        string
	Description string

	// Template is the embedded template the file is rendered from.
	// Empty for files that are not template output.
	Template string
}

// RenderPlanTable renders planned files as a PATH / TEMPLATE / DESCRIPTION table.
func RenderPlanTable(entries []FileEntry) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	muted := GetStyles().Muted
	plain := lipgloss.NewStyle()

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers("PATH", "TEMPLATE", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 1:
				return muted
			default:
				return plain
			}
		})

	for _, e := range entries {
		tmpl := e.Template
		if tmpl == "" {
			tmpl = "-"
		}
		tbl.Row(e.Path, tmpl, e.Description)
	}

	return tbl.String()
}
