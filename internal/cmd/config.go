package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cepress/cli/internal/cmdtypes"
)

// newConfigCmd creates the config command group.
func newConfigCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the cepress CLI.`,
	}

	c.AddCommand(newConfigInitCmd(g))
	c.AddCommand(newConfigVetCmd(g))
	c.AddCommand(newConfigShowCmd(g))

	return c
}
