package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cepress/cli/internal/cmdtypes"
	"github.com/cepress/cli/internal/config"
)

func newConfigVetCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the cepress configuration file",
		Long: `Validate the cepress configuration file.

Checks the registry URL and timeout, the default scaffold choices and the
version overrides of ~/.cepress/config.yaml, or the file given with --config.`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, g)
		},
	}
}

func runConfigVet(c *cobra.Command, g *cmdtypes.GlobalConfig) error {
	expandedPath, err := config.Locate(g.ConfigPath)
	if err != nil {
		return err
	}

	exists, err := config.Exists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return cmdtypes.NewExitError(
			fmt.Errorf("config file not found: %s", expandedPath),
			cmdtypes.ExitGeneralError,
		)
	}

	if err := config.ValidateFile(expandedPath); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", expandedPath)
			for _, e := range validationErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err, Printed: true}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", expandedPath)
	return nil
}
