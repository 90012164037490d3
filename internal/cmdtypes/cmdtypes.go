// Package cmdtypes provides shared types for the cmd package and its helpers.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmdutil.
package cmdtypes

import (
	"github.com/cepress/cli/internal/config"
	oerrors "github.com/cepress/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every command
// constructor.
type GlobalConfig struct {
	Config       *config.Config
	ConfigPath   string // resolved --config path
	Registry     string // resolved registry URL
	RegistryFlag string // raw --registry flag value
	Verbose      bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess      = oerrors.ExitSuccess
	ExitGeneralError = oerrors.ExitGeneralError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// Defaults returns the loaded scaffold defaults, or the built-in ones when no
// configuration was loaded.
func (g *GlobalConfig) Defaults() config.DefaultsConfig {
	if g == nil || g.Config == nil {
		return config.DefaultConfig().Defaults
	}
	return g.Config.Defaults
}

// NewExitError creates an ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return oerrors.NewExitError(err, code)
}
