package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cepress/cli/internal/cmdtypes"
	"github.com/cepress/cli/internal/cmdutil"
	oerrors "github.com/cepress/cli/internal/errors"
	"github.com/cepress/cli/internal/manifest"
	"github.com/cepress/cli/internal/output"
	"github.com/cepress/cli/internal/registry"
	"github.com/cepress/cli/internal/templates"
	"github.com/cepress/cli/internal/toolrunner"
	"github.com/cepress/cli/internal/wizard"
)

// createOptions holds the flags of the project creation command.
type createOptions struct {
	scaffold     cmdutil.ScaffoldFlags
	yes          bool
	dir          string
	offline      bool
	skipGenerate bool
}

func newCreateCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var opts createOptions

	c := &cobra.Command{
		Use:   "cepress [project-name]",
		Short: "Scaffold an Express.js REST API",
		Long: `Create a new Express.js REST API project.

Without flags, cepress asks for every choice interactively. Flags answer
the matching question up front; --yes skips the remaining questions and
uses the configured defaults.

Examples:
  # Interactive
  cepress

  # SQLite project with the default choices
  cepress blog-api --yes

  # PostgreSQL with Prisma, JWT auth and Swagger docs
  cepress shop-api --database postgresql --prisma --auth jwt --swagger --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, &opts, g)
		},
	}

	opts.scaffold.AddTo(c)
	c.Flags().BoolVarP(&opts.yes, "yes", "y", false,
		"Skip the interactive prompts and use defaults for unset choices")
	c.Flags().StringVarP(&opts.dir, "dir", "d", ".",
		"Parent directory of the new project")
	c.Flags().BoolVar(&opts.offline, "offline", false,
		"Do not query the npm registry; use the built-in version table")
	c.Flags().BoolVar(&opts.skipGenerate, "skip-generate", false,
		"Do not run 'npx prisma generate' after writing the Prisma schema")

	return c
}

func runCreate(c *cobra.Command, args []string, opts *createOptions, g *cmdtypes.GlobalConfig) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := c.OutOrStdout()

	projectName := ""
	if len(args) > 0 {
		projectName = args[0]
	}

	interactive := !opts.yes && output.IsInteractive()
	if output.IsTTY() {
		fmt.Fprintln(out, output.Banner(output.TerminalWidth()))
	}

	cfg, fixed := opts.scaffold.Resolve(c, projectName, g.Defaults())

	// Reject an existing target before asking the remaining questions.
	if projectName != "" {
		if err := templates.ValidateProjectName(projectName); err != nil {
			return fail("invalid project name", err)
		}
		if err := checkTarget(filepath.Join(opts.dir, projectName)); err != nil {
			return fail("cannot create project", err)
		}
	}

	if interactive {
		var err error
		cfg, err = wizard.Run(ctx, wizard.Options{Defaults: cfg, Fixed: fixed})
		if err != nil {
			return fail("setup aborted", err)
		}
	} else {
		if projectName == "" {
			return fail("missing project name", oerrors.NewValidationError(
				"project name is required when prompts are disabled", "", "projectName",
				"Pass the name as the first argument: cepress my-app --yes"))
		}
		cfg = cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			return fail("invalid configuration", err)
		}
	}

	targetDir := filepath.Join(opts.dir, cfg.ProjectName)
	cmdutil.WriteSummary(out, cfg, targetDir)

	gen := templates.NewGenerator(
		templates.GenerateOptions{
			TargetDir:    targetDir,
			Config:       cfg,
			SkipGenerate: opts.skipGenerate,
		},
		manifest.NewBuilder(newResolver(g, opts.offline)),
		toolrunner.New(),
	)

	var result *templates.GenerateResult
	err := output.RunWithSpinner(ctx, "Creating project...", func(ctx context.Context) error {
		var genErr error
		result, genErr = gen.Generate(ctx)
		return genErr
	})
	if err != nil {
		return fail("project generation failed", err)
	}

	plan, err := templates.Plan(result.Config)
	if err != nil {
		return fail("project generation failed", err)
	}

	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Created %s in %s",
		output.StyleNoun.Render(cfg.ProjectName), result.TargetDir)))
	fmt.Fprintln(out)
	if g.Verbose {
		cmdutil.WriteFileStatus(out, result)
		fmt.Fprintln(out)
	}
	fmt.Fprint(out, output.RenderFileTree(cfg.ProjectName, cmdutil.FileEntries(result.Files, plan)))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.FormatNextSteps(cmdutil.NextSteps(cfg, targetDir)))

	return nil
}

// newResolver builds the version resolver from the loaded configuration.
func newResolver(g *cmdtypes.GlobalConfig, offline bool) *manifest.Resolver {
	fallbacks := manifest.DefaultFallbacks()
	if g.Config != nil {
		fallbacks = fallbacks.With(g.Config.Versions)
		offline = offline || g.Config.Registry.Offline
	}

	if offline {
		output.Info("registry disabled, using built-in package versions")
		return manifest.NewResolver(nil, fallbacks, 0)
	}

	var timeout time.Duration
	if g.Config != nil {
		timeout = g.Config.Registry.Timeout
	}
	return manifest.NewResolver(registry.NewClient(g.Registry, nil), fallbacks, timeout)
}

// checkTarget rejects an existing entry at dir, and any stat failure other
// than the entry not existing.
func checkTarget(dir string) error {
	_, err := os.Stat(dir)
	if err == nil {
		return oerrors.NewAlreadyExistsError(dir)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("checking target directory: %w", err)
	}
	return nil
}

// fail prints err and returns it as an already reported exit error.
func fail(msg string, err error) error {
	cmdutil.PrintError(msg, err)
	return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err, Printed: true}
}
