package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cepress/cli/internal/templates"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a loaded configuration.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.Registry.URL != "" {
		u, err := url.Parse(cfg.Registry.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "registry.url",
				Message: "must be an absolute http or https URL",
			})
		}
	}

	if cfg.Registry.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "registry.timeout",
			Message: "must not be negative",
		})
	}

	d := cfg.Defaults
	if d.Database != "" && !templates.Database(d.Database).IsValid() {
		errs = append(errs, ValidationError{Field: "defaults.database", Message: "must be one of sqlite, postgresql, mysql"})
	}
	if d.Auth != "" && !templates.Auth(d.Auth).IsValid() {
		errs = append(errs, ValidationError{Field: "defaults.auth", Message: "must be one of none, jwt"})
	}
	if d.Validation != "" && !templates.Validation(d.Validation).IsValid() {
		errs = append(errs, ValidationError{Field: "defaults.validation", Message: "must be zod"})
	}
	if d.Models != "" && !templates.Models(d.Models).IsValid() {
		errs = append(errs, ValidationError{Field: "defaults.models", Message: "must be one of user-post, empty"})
	}

	for pkg, version := range cfg.Versions {
		if strings.TrimSpace(version) == "" {
			errs = append(errs, ValidationError{
				Field:   "versions." + pkg,
				Message: "must not be empty",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateFile validates a configuration file at the given path.
func ValidateFile(path string) error {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	return Validate(cfg)
}
