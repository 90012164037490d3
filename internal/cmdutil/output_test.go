package cmdutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/cepress/cli/internal/errors"
	"github.com/cepress/cli/internal/output"
	"github.com/cepress/cli/internal/templates"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{Timestamps: output.BoolPtr(false)})
	output.SetLogWriter(&buf)
	return &buf
}

func TestPrintError_DetailError(t *testing.T) {
	buf := captureLog(t)

	PrintError("create failed", oerrors.NewAlreadyExistsError("blog-api"))

	out := buf.String()
	assert.Contains(t, out, "create failed")
	assert.Contains(t, out, `directory "blog-api" already exists`)
	assert.Contains(t, out, "location=blog-api")
	assert.Contains(t, out, "hint=")
}

func TestPrintError_PlainError(t *testing.T) {
	buf := captureLog(t)

	PrintError("create failed", errors.New("disk full"))

	assert.Contains(t, buf.String(), "create failed")
	assert.Contains(t, buf.String(), "disk full")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	cfg := templates.Configuration{
		ProjectName: "shop",
		Database:    templates.PostgreSQL,
		UsePrisma:   true,
		Auth:        templates.AuthJWT,
		Swagger:     true,
		Validation:  templates.Zod,
		Models:      templates.UserPost,
	}

	WriteSummary(&buf, cfg, "shop")

	out := buf.String()
	for _, want := range []string{"shop", "PostgreSQL", "Prisma", "jwt", "enabled", "zod", "user-post"} {
		assert.Contains(t, out, want)
	}
}

func TestFileEntries(t *testing.T) {
	plan := []templates.PlannedFile{
		{Path: "package.json", Description: "Package manifest"},
		{Path: "src/app.js", Description: "Express app setup", Template: "src/app.js.tmpl"},
	}

	entries := FileEntries([]string{"src/app.js", "package.json", "extra.txt"}, plan)

	assert.Equal(t, []output.FileEntry{
		{Path: "src/app.js", Description: "Express app setup", Template: "src/app.js.tmpl"},
		{Path: "package.json", Description: "Package manifest"},
		{Path: "extra.txt"},
	}, entries)
}

func TestWriteFileStatus(t *testing.T) {
	var buf bytes.Buffer
	WriteFileStatus(&buf, &templates.GenerateResult{
		Files:     []string{"package.json", ".env.example", "prisma/schema.prisma"},
		Rewritten: []string{".env.example"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "package.json")
	assert.Contains(t, lines[0], output.StatusCreated)
	assert.Contains(t, lines[1], ".env.example")
	assert.Contains(t, lines[1], output.StatusRewritten)
	assert.Contains(t, lines[2], output.StatusCreated)
}

func TestPlanEntries(t *testing.T) {
	plan, err := templates.Plan(templates.DefaultConfiguration("blog"))
	require.NoError(t, err)

	entries := PlanEntries(plan)
	require.Len(t, entries, len(plan))
	assert.Equal(t, "package.json", entries[0].Path)
	assert.Empty(t, entries[0].Template)
	for _, e := range entries[1:] {
		assert.NotEmpty(t, e.Template, e.Path)
	}
}

func TestNextSteps(t *testing.T) {
	sqlite := templates.DefaultConfiguration("blog")
	steps := NextSteps(sqlite, "apps/blog/")
	assert.Equal(t, "cd apps/blog", steps[0])
	assert.Equal(t, "npm run dev", steps[len(steps)-1])
	assert.NotContains(t, steps, "npx prisma migrate dev --name init")

	prisma := templates.Configuration{ProjectName: "shop", Database: templates.MySQL, UsePrisma: true}
	assert.Contains(t, NextSteps(prisma, "shop"), "npx prisma migrate dev --name init")
}
