package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cepress/cli/internal/cmdtypes"
	"github.com/cepress/cli/internal/config"
)

// configHeader is written above the generated configuration.
const configHeader = "# cepress CLI configuration\n# Flags override environment variables (CEPRESS_*), which override this file.\n\n"

func newConfigInitCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new cepress configuration file",
		Long: `Create a new cepress configuration file with default values.

The configuration file is created at ~/.cepress/config.yaml by default.
Use --config flag to specify a different location.`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, g, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(c *cobra.Command, g *cmdtypes.GlobalConfig, force bool) error {
	expandedPath, err := config.Locate(g.ConfigPath)
	if err != nil {
		return err
	}

	exists, err := config.Exists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return cmdtypes.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", expandedPath),
			cmdtypes.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", expandedPath)
	return nil
}
