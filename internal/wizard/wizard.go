// Package wizard asks for the scaffold configuration with interactive forms.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	oerrors "github.com/cepress/cli/internal/errors"
	"github.com/cepress/cli/internal/output"
	"github.com/cepress/cli/internal/templates"
)

// DefaultProjectName is offered when no name was given on the command line.
const DefaultProjectName = "my-cepress-app"

// Field names a question of the wizard.
type Field string

const (
	FieldProjectName Field = "projectName"
	FieldDatabase    Field = "database"
	FieldPrisma      Field = "usePrisma"
	FieldAuth        Field = "auth"
	FieldSwagger     Field = "swagger"
	FieldValidation  Field = "validation"
	FieldModels      Field = "models"
)

// Options configures a wizard run.
type Options struct {
	// Defaults seeds the initial answer of every question.
	Defaults templates.Configuration

	// Fixed marks fields already decided on the command line. They are not asked.
	Fixed map[Field]bool

	// Accessible renders plain prompts for screen readers.
	Accessible bool
}

// question is one step of the wizard.
type question struct {
	field Field

	// when reports whether the question applies given the answers so far.
	when func(templates.Configuration) bool

	// build creates the form field bound to cfg.
	build func(cfg *templates.Configuration) huh.Field
}

// Run asks every question that is neither fixed nor inapplicable and returns
// the normalized, validated configuration.
// Each question runs as its own form so later questions can depend on
// earlier answers.
func Run(ctx context.Context, opts Options) (templates.Configuration, error) {
	cfg := opts.Defaults
	if cfg.ProjectName == "" {
		cfg.ProjectName = DefaultProjectName
	}

	theme := newTheme()

	for _, q := range questions() {
		if !shouldAsk(q, opts, cfg) {
			continue
		}

		form := huh.NewForm(huh.NewGroup(q.build(&cfg))).
			WithTheme(theme).
			WithAccessible(opts.Accessible)

		if err := form.RunWithContext(ctx); err != nil {
			return templates.Configuration{}, formError(err)
		}
		output.Debug("wizard answer", "field", string(q.field))
	}

	cfg.ProjectName = strings.TrimSpace(cfg.ProjectName)
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return templates.Configuration{}, err
	}
	return cfg, nil
}

func shouldAsk(q question, opts Options, cfg templates.Configuration) bool {
	if opts.Fixed[q.field] {
		return false
	}
	return q.when == nil || q.when(cfg)
}

func questions() []question {
	return []question{
		{field: FieldProjectName, build: projectNameField},
		{field: FieldDatabase, build: databaseField},
		{
			field: FieldPrisma,
			when:  func(c templates.Configuration) bool { return c.Database.SupportsPrisma() },
			build: prismaField,
		},
		{field: FieldAuth, build: authField},
		{field: FieldSwagger, build: swaggerField},
		{field: FieldValidation, build: validationField},
		{field: FieldModels, build: modelsField},
	}
}

func projectNameField(cfg *templates.Configuration) huh.Field {
	return huh.NewInput().
		Title("Project name").
		Placeholder(DefaultProjectName).
		Value(&cfg.ProjectName).
		Validate(validateProjectName)
}

// validateProjectName returns a short message suitable for inline display.
func validateProjectName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("project name cannot be empty")
	}
	if err := templates.ValidateProjectName(name); err != nil {
		return errors.New("only letters, digits, dash and underscore are allowed")
	}
	return nil
}

func databaseField(cfg *templates.Configuration) huh.Field {
	return huh.NewSelect[templates.Database]().
		Title("Database").
		Options(databaseOptions()...).
		Value(&cfg.Database)
}

func databaseOptions() []huh.Option[templates.Database] {
	return []huh.Option[templates.Database]{
		huh.NewOption("SQLite (default, no setup needed)", templates.SQLite),
		huh.NewOption("PostgreSQL", templates.PostgreSQL),
		huh.NewOption("MySQL", templates.MySQL),
	}
}

func prismaField(cfg *templates.Configuration) huh.Field {
	return huh.NewConfirm().
		Title("Use Prisma as the ORM?").
		Affirmative("Yes").
		Negative("No").
		Value(&cfg.UsePrisma)
}

func authField(cfg *templates.Configuration) huh.Field {
	return huh.NewSelect[templates.Auth]().
		Title("Authentication").
		Options(authOptions()...).
		Value(&cfg.Auth)
}

func authOptions() []huh.Option[templates.Auth] {
	return []huh.Option[templates.Auth]{
		huh.NewOption("No auth", templates.AuthNone),
		huh.NewOption("JWT auth (register/login with hashed passwords)", templates.AuthJWT),
	}
}

func swaggerField(cfg *templates.Configuration) huh.Field {
	return huh.NewSelect[bool]().
		Title("API documentation").
		Options(swaggerOptions()...).
		Value(&cfg.Swagger)
}

func swaggerOptions() []huh.Option[bool] {
	return []huh.Option[bool]{
		huh.NewOption("No Swagger", false),
		huh.NewOption("Swagger (OpenAPI 3.0 docs via swagger-ui-express)", true),
	}
}

func validationField(cfg *templates.Configuration) huh.Field {
	return huh.NewSelect[templates.Validation]().
		Title("Validation").
		Options(huh.NewOption("Zod (default)", templates.Zod)).
		Value(&cfg.Validation)
}

func modelsField(cfg *templates.Configuration) huh.Field {
	return huh.NewSelect[templates.Models]().
		Title("Example models").
		Options(modelsOptions()...).
		Value(&cfg.Models)
}

func modelsOptions() []huh.Option[templates.Models] {
	return []huh.Option[templates.Models]{
		huh.NewOption("User + Post (related)", templates.UserPost),
		huh.NewOption("Empty (no models)", templates.NoModels),
	}
}

// formError maps a form failure to the CLI error taxonomy.
func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: setup aborted", oerrors.ErrCancelled)
	}
	return fmt.Errorf("wizard: %w", err)
}

func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(output.ColorDimGray)
	t.Focused.Title = t.Focused.Title.Foreground(output.ColorCyan).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(output.ColorDimGray)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(output.ColorBoldRed)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(output.ColorBoldRed)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(output.ColorCyan).SetString("▸ ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(output.ColorGreen)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(output.ColorCyan)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(output.ColorDimGray)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("0")).
		Background(output.ColorCyan)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
