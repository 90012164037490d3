// Package cmdutil provides shared command utilities for the scaffold commands.
// It centralizes the scaffold flag group, configuration assembly and
// user-facing output helpers.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/cepress/cli/internal/config"
	"github.com/cepress/cli/internal/templates"
	"github.com/cepress/cli/internal/wizard"
)

// ScaffoldFlags holds the flags that choose the project configuration
// (root create command and plan).
type ScaffoldFlags struct {
	Database   string
	Prisma     bool
	Auth       string
	Swagger    bool
	Validation string
	Models     string
}

// flagFields maps flag names to the wizard question they answer.
var flagFields = map[string]wizard.Field{
	"database":   wizard.FieldDatabase,
	"prisma":     wizard.FieldPrisma,
	"auth":       wizard.FieldAuth,
	"swagger":    wizard.FieldSwagger,
	"validation": wizard.FieldValidation,
	"models":     wizard.FieldModels,
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Database, "database", "",
		"Database engine: sqlite, postgresql, mysql (default: from config)")
	cmd.Flags().BoolVar(&f.Prisma, "prisma", false,
		"Use Prisma instead of Sequelize (postgresql and mysql only)")
	cmd.Flags().StringVar(&f.Auth, "auth", "",
		"Authentication: none, jwt (default: from config)")
	cmd.Flags().BoolVar(&f.Swagger, "swagger", false,
		"Generate Swagger API documentation")
	cmd.Flags().StringVar(&f.Validation, "validation", "",
		"Request validation library: zod (default: from config)")
	cmd.Flags().StringVar(&f.Models, "models", "",
		"Example models: user-post, empty (default: from config)")
}

// Resolve builds a configuration from the flags the user set, falling back to
// the configured defaults. It also reports which fields were decided by a flag.
func (f *ScaffoldFlags) Resolve(cmd *cobra.Command, projectName string, defaults config.DefaultsConfig) (templates.Configuration, map[wizard.Field]bool) {
	cfg := templates.Configuration{
		ProjectName: projectName,
		Database:    templates.Database(defaults.Database),
		UsePrisma:   defaults.Prisma,
		Auth:        templates.Auth(defaults.Auth),
		Swagger:     defaults.Swagger,
		Validation:  templates.Validation(defaults.Validation),
		Models:      templates.Models(defaults.Models),
	}

	fixed := make(map[wizard.Field]bool)
	if projectName != "" {
		fixed[wizard.FieldProjectName] = true
	}

	for name, field := range flagFields {
		if !cmd.Flags().Changed(name) {
			continue
		}
		fixed[field] = true

		switch name {
		case "database":
			cfg.Database = templates.Database(f.Database)
		case "prisma":
			cfg.UsePrisma = f.Prisma
		case "auth":
			cfg.Auth = templates.Auth(f.Auth)
		case "swagger":
			cfg.Swagger = f.Swagger
		case "validation":
			cfg.Validation = templates.Validation(f.Validation)
		case "models":
			cfg.Models = templates.Models(f.Models)
		}
	}

	return cfg, fixed
}
