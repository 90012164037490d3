// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cepress/cli/internal/cmdtypes"
	"github.com/cepress/cli/internal/config"
	"github.com/cepress/cli/internal/output"
	"github.com/cepress/cli/internal/version"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	config     string
	registry   string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command. Run without a subcommand it creates
// a new project.
func NewRootCmd() *cobra.Command {
	var (
		flags globalFlags
		g     cmdtypes.GlobalConfig
	)

	rootCmd := newCreateCmd(&g)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return initializeGlobals(cmd, &flags, &g)
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: CEPRESS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.registry, "registry", "", "npm registry URL (env: CEPRESS_REGISTRY_URL)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(newPlanCmd(&g))
	rootCmd.AddCommand(newConfigCmd(&g))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *globalFlags, g *cmdtypes.GlobalConfig) error {
	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: flags.config,
	})
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
	}

	cfg, err := config.NewLoader().LoadWithDefaults(configPath.Value)
	if err != nil {
		// Commands still work on built-in defaults; config vet reports the problem.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}

	registry := config.ResolveRegistry(config.ResolveRegistryOptions{
		FlagValue:   flags.registry,
		ConfigValue: cfg.Registry.URL,
	})

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	info := version.Get()
	output.Debug("cepress started", "version", info.Version)
	config.LogResolvedValues([]config.ResolvedValue{configPath, registry})

	g.Config = cfg
	g.ConfigPath = configPath.Value
	g.Registry = registry.Value
	g.RegistryFlag = flags.registry
	g.Verbose = flags.verbose

	return nil
}
