// Package manifest builds the package.json of a generated project.
package manifest

import "github.com/cepress/cli/internal/templates"

// Requirement is an npm package the generated project depends on.
type Requirement struct {
	// Name is the npm package name.
	Name string

	// Dev marks a devDependency.
	Dev bool
}

var (
	baseRequirements = []Requirement{
		{Name: "express"},
		{Name: "cors"},
		{Name: "helmet"},
		{Name: "dotenv"},
		{Name: "nodemon", Dev: true},
	}

	driverRequirements = map[templates.Database][]Requirement{
		templates.SQLite:     {{Name: "sqlite3"}, {Name: "sequelize"}},
		templates.PostgreSQL: {{Name: "pg"}, {Name: "pg-hstore"}, {Name: "sequelize"}},
		templates.MySQL:      {{Name: "mysql2"}, {Name: "sequelize"}},
	}

	prismaRequirements = []Requirement{
		{Name: "@prisma/client"},
		{Name: "prisma", Dev: true},
	}

	jwtRequirements = []Requirement{
		{Name: "jsonwebtoken"},
		{Name: "bcryptjs"},
	}

	zodRequirements = []Requirement{
		{Name: "zod"},
	}

	swaggerRequirements = []Requirement{
		{Name: "swagger-ui-express"},
		{Name: "swagger-jsdoc"},
	}
)

// Requirements returns the packages a configuration depends on.
// The Sequelize driver set and the Prisma pair are mutually exclusive.
func Requirements(cfg templates.Configuration) []Requirement {
	out := append([]Requirement(nil), baseRequirements...)

	if cfg.UsePrisma {
		out = append(out, prismaRequirements...)
	} else {
		out = append(out, driverRequirements[cfg.Database]...)
	}
	if cfg.JWT() {
		out = append(out, jwtRequirements...)
	}
	if cfg.UsesZod() {
		out = append(out, zodRequirements...)
	}
	if cfg.Swagger {
		out = append(out, swaggerRequirements...)
	}

	return out
}
