package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cepress/cli/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show cepress CLI version information.

Displays the CLI version, commit, build date and Go version.`,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}
