package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	oerrors "github.com/cepress/cli/internal/errors"
	"github.com/cepress/cli/internal/output"
	"github.com/cepress/cli/internal/templates"
)

// PrintError logs err in a user-friendly format. Structured errors print
// their location and hint as key-value pairs.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Message), detail.KeyVals()...)
		return
	}
	output.Error(msg, "error", err)
}

// WriteSummary writes the aligned configuration summary shown before
// generation.
func WriteSummary(w io.Writer, cfg templates.Configuration, targetDir string) {
	fmt.Fprintln(w, output.StyleSummary.Render("Configuration:"))
	fmt.Fprintln(w, output.FormatSummaryLine("Project", cfg.ProjectName))
	fmt.Fprintln(w, output.FormatSummaryLine("Directory", targetDir))
	fmt.Fprintln(w, output.FormatSummaryLine("Database", cfg.Database.Label()))
	fmt.Fprintln(w, output.FormatSummaryLine("ORM", ormLabel(cfg)))
	fmt.Fprintln(w, output.FormatSummaryLine("Auth", string(cfg.Auth)))
	fmt.Fprintln(w, output.FormatSummaryLine("Swagger", enabled(cfg.Swagger)))
	fmt.Fprintln(w, output.FormatSummaryLine("Validation", string(cfg.Validation)))
	fmt.Fprintln(w, output.FormatSummaryLine("Models", string(cfg.Models)))
	fmt.Fprintln(w)
}

func ormLabel(cfg templates.Configuration) string {
	if cfg.UsePrisma {
		return "Prisma"
	}
	return "Sequelize"
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

// FileEntries pairs every written file with its plan entry. Files the plan
// does not know keep an empty description.
func FileEntries(files []string, plan []templates.PlannedFile) []output.FileEntry {
	byPath := make(map[string]templates.PlannedFile, len(plan))
	for _, p := range plan {
		byPath[p.Path] = p
	}

	entries := make([]output.FileEntry, 0, len(files))
	for _, f := range files {
		p := byPath[f]
		entries = append(entries, output.FileEntry{Path: f, Description: p.Description, Template: p.Template})
	}
	return entries
}

// WriteFileStatus writes one status line per generated file.
func WriteFileStatus(w io.Writer, result *templates.GenerateResult) {
	for _, f := range result.Files {
		status := output.StatusCreated
		if slices.Contains(result.Rewritten, f) {
			status = output.StatusRewritten
		}
		fmt.Fprintln(w, output.FormatFileLine(f, status))
	}
}

// PlanEntries converts a plan into table entries.
func PlanEntries(plan []templates.PlannedFile) []output.FileEntry {
	entries := make([]output.FileEntry, 0, len(plan))
	for _, p := range plan {
		entries = append(entries, output.FileEntry{Path: p.Path, Description: p.Description, Template: p.Template})
	}
	return entries
}

// NextSteps returns the commands suggested after a successful run.
func NextSteps(cfg templates.Configuration, targetDir string) []string {
	steps := []string{
		"cd " + filepath.Clean(targetDir),
		"npm install",
		"cp .env.example .env and adjust DATABASE_URL",
	}
	if cfg.UsePrisma {
		steps = append(steps, "npx prisma migrate dev --name init")
	}
	return append(steps, "npm run dev")
}
