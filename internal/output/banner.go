package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `________________
__  ____/_  ___/
_  /    _____ \
/ /___  ____/ /
\____/  /____/`

const (
	bannerTitle    = "CEPRESS CLI 🚀"
	bannerSubtitle = "Fast Express.js Starter Kit"
)

// Banner renders the startup banner centered for the given width.
func Banner(width int) string {
	art := lipgloss.NewStyle().Foreground(ColorCyan)
	title := lipgloss.NewStyle().Bold(true)
	subtitle := lipgloss.NewStyle().Foreground(ColorDimGray)

	var b strings.Builder
	b.WriteString(art.Render(center(bannerArt, width)))
	b.WriteString("\n\n")
	b.WriteString(title.Render(center(bannerTitle, width)))
	b.WriteString("\n")
	b.WriteString(subtitle.Render(center(bannerSubtitle, width)))
	b.WriteString("\n")
	return b.String()
}

// center left-pads every line of text so the widest line is centered.
func center(text string, width int) string {
	lines := strings.Split(text, "\n")

	widest := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > widest {
			widest = w
		}
	}

	pad := (width - widest) / 2
	if pad < 0 {
		pad = 0
	}

	prefix := strings.Repeat(" ", pad)
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
