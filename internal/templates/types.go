// Package templates provides the project template system for cepress.
package templates

import "fmt"

// Database is the database engine of the generated project.
type Database string

const (
	// SQLite stores data in a local file; the default.
	SQLite Database = "sqlite"

	// PostgreSQL uses a PostgreSQL server.
	PostgreSQL Database = "postgresql"

	// MySQL uses a MySQL server.
	MySQL Database = "mysql"
)

// IsValid checks if the database is one of the supported engines.
func (d Database) IsValid() bool {
	switch d {
	case SQLite, PostgreSQL, MySQL:
		return true
	default:
		return false
	}
}

// SupportsPrisma reports whether the Prisma setup path is available.
func (d Database) SupportsPrisma() bool {
	return d == PostgreSQL || d == MySQL
}

// Dialect returns the Sequelize dialect name for the engine.
func (d Database) Dialect() string {
	if d == PostgreSQL {
		return "postgres"
	}
	return string(d)
}

// IsSQLite reports whether the engine is sqlite.
func (d Database) IsSQLite() bool { return d == SQLite }

// Label returns the human-readable engine name.
func (d Database) Label() string {
	switch d {
	case PostgreSQL:
		return "PostgreSQL"
	case MySQL:
		return "MySQL"
	default:
		return "SQLite"
	}
}

// Auth is the authentication strategy of the generated project.
type Auth string

const (
	// AuthNone generates no authentication.
	AuthNone Auth = "none"

	// AuthJWT generates register/login with hashed passwords and JWT guards.
	AuthJWT Auth = "jwt"
)

// IsValid checks if the auth strategy is supported.
func (a Auth) IsValid() bool {
	return a == AuthNone || a == AuthJWT
}

// Validation is the request validation library.
type Validation string

// Zod is currently the only validation library.
const Zod Validation = "zod"

// IsValid checks if the validation library is supported.
func (v Validation) IsValid() bool {
	return v == Zod
}

// Models selects the example data models.
type Models string

const (
	// UserPost generates related User and Post models.
	UserPost Models = "user-post"

	// NoModels generates no example models.
	NoModels Models = "empty"
)

// IsValid checks if the model selection is supported.
func (m Models) IsValid() bool {
	return m == UserPost || m == NoModels
}

// Configuration is the finalized set of scaffold choices.
// It is produced once per run and treated as immutable afterwards.
type Configuration struct {
	// ProjectName is used as the directory name and the manifest name.
	ProjectName string `json:"projectName" yaml:"projectName"`

	// Database is the database engine.
	Database Database `json:"database" yaml:"database"`

	// UsePrisma selects Prisma instead of Sequelize. Never true for sqlite.
	UsePrisma bool `json:"usePrisma" yaml:"usePrisma"`

	// Auth is the authentication strategy.
	Auth Auth `json:"auth" yaml:"auth"`

	// Swagger enables the API documentation route.
	Swagger bool `json:"swagger" yaml:"swagger"`

	// Validation is the request validation library.
	Validation Validation `json:"validation" yaml:"validation"`

	// Models selects the example data models.
	Models Models `json:"models" yaml:"models"`
}

// DefaultConfiguration returns the configuration used when every prompt is
// answered with its default.
func DefaultConfiguration(projectName string) Configuration {
	return Configuration{
		ProjectName: projectName,
		Database:    SQLite,
		Auth:        AuthNone,
		Validation:  Zod,
		Models:      UserPost,
	}
}

// JWT reports whether JWT authentication is enabled.
func (c Configuration) JWT() bool { return c.Auth == AuthJWT }

// UsesZod reports whether zod request validation is enabled.
func (c Configuration) UsesZod() bool { return c.Validation == Zod }

// HasModels reports whether the User and Post example models are enabled.
func (c Configuration) HasModels() bool { return c.Models == UserPost }

// ORM returns the ORM flavour of the generated code.
func (c Configuration) ORM() string {
	if c.UsePrisma {
		return "prisma"
	}
	return "sequelize"
}

// String returns a compact description used in debug logs.
func (c Configuration) String() string {
	return fmt.Sprintf("%s database=%s orm=%s auth=%s swagger=%t validation=%s models=%s",
		c.ProjectName, c.Database, c.ORM(), c.Auth, c.Swagger, c.Validation, c.Models)
}

// Phase groups files by the composition step that writes them.
type Phase int

const (
	// PhaseBase files are written by the main composition pass.
	PhaseBase Phase = iota

	// PhasePrisma files are written by the Prisma setup pass.
	PhasePrisma
)

// GenerateOptions configures project generation behavior.
type GenerateOptions struct {
	// TargetDir is the directory to create. It must not exist.
	TargetDir string

	// Config is the scaffold configuration.
	Config Configuration

	// SkipGenerate skips the `prisma generate` subprocess.
	SkipGenerate bool
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files is the list of files written, relative to TargetDir, in write order.
	Files []string

	// Rewritten lists the files of Files that were written more than once.
	Rewritten []string

	// Config is the effective configuration after normalization.
	Config Configuration

	// TargetDir is the directory where files were created.
	TargetDir string
}
