package templates

import (
	"fmt"
	"regexp"

	oerrors "github.com/cepress/cli/internal/errors"
)

// projectNameRegex matches names usable as both a directory and a package name.
var projectNameRegex = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// ValidateProjectName checks if a project name is valid.
func ValidateProjectName(name string) error {
	if name == "" {
		return oerrors.NewValidationError(
			"project name cannot be empty", "", "projectName",
			"Pass a name such as my-cepress-app.")
	}

	if !projectNameRegex.MatchString(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid project name %q: only letters, digits, dash and underscore are allowed", name),
			"", "projectName",
			"Replace spaces and other characters with - or _.")
	}

	return nil
}

// Normalize fills empty fields with their defaults and drops choices that
// the selected database cannot honor.
func (c Configuration) Normalize() Configuration {
	if c.Database == "" {
		c.Database = SQLite
	}
	if c.Auth == "" {
		c.Auth = AuthNone
	}
	if c.Validation == "" {
		c.Validation = Zod
	}
	if c.Models == "" {
		c.Models = UserPost
	}
	if !c.Database.SupportsPrisma() {
		c.UsePrisma = false
	}
	return c
}

// Validate checks every field of the configuration.
func (c Configuration) Validate() error {
	if err := ValidateProjectName(c.ProjectName); err != nil {
		return err
	}

	switch {
	case !c.Database.IsValid():
		return invalidChoice("database", string(c.Database), "sqlite, postgresql, mysql")
	case !c.Auth.IsValid():
		return invalidChoice("auth", string(c.Auth), "none, jwt")
	case !c.Validation.IsValid():
		return invalidChoice("validation", string(c.Validation), "zod")
	case !c.Models.IsValid():
		return invalidChoice("models", string(c.Models), "user-post, empty")
	}

	if c.UsePrisma && !c.Database.SupportsPrisma() {
		return oerrors.NewValidationError(
			fmt.Sprintf("prisma is not available for %s", c.Database),
			"", "usePrisma",
			"Prisma setup is offered for postgresql and mysql only.")
	}

	return nil
}

func invalidChoice(field, value, valid string) error {
	return oerrors.NewValidationError(
		fmt.Sprintf("unknown %s %q", field, value),
		"", field,
		fmt.Sprintf("Valid values: %s", valid))
}
