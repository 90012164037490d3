package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cepress/cli/internal/cmdtypes"
	"github.com/cepress/cli/internal/config"
)

func newConfigShowCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying the config file, CEPRESS_*
environment variables and built-in defaults.`,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg := g.Config
			if cfg == nil {
				cfg = config.DefaultConfig()
			}
			if g.Registry != "" {
				resolved := *cfg
				resolved.Registry.URL = g.Registry
				cfg = &resolved
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}

			fmt.Fprintf(c.OutOrStdout(), "# %s\n", g.ConfigPath)
			_, err = c.OutOrStdout().Write(data)
			return err
		},
	}
}
