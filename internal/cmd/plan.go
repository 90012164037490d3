package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cepress/cli/internal/cmdtypes"
	"github.com/cepress/cli/internal/cmdutil"
	oerrors "github.com/cepress/cli/internal/errors"
	"github.com/cepress/cli/internal/output"
	"github.com/cepress/cli/internal/templates"
	"github.com/cepress/cli/internal/wizard"
)

// planDocument is the yaml/json rendering of a plan.
type planDocument struct {
	Config templates.Configuration `json:"config" yaml:"config"`
	Files  []templates.PlannedFile `json:"files" yaml:"files"`
}

func newPlanCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		scaffold   cmdutil.ScaffoldFlags
		outputFlag string
	)

	c := &cobra.Command{
		Use:   "plan [project-name]",
		Short: "Show the files a configuration generates",
		Long: `Show the files a configuration generates without writing anything.

The configuration comes from the flags and the configured defaults; no
prompts are shown.

Examples:
  # Files of the default configuration
  cepress plan

  # Files of a Prisma project as YAML
  cepress plan shop-api --database mysql --prisma -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPlan(c, args, &scaffold, outputFlag, g)
		},
	}

	scaffold.AddTo(c)
	c.Flags().StringVarP(&outputFlag, "output", "o", "table",
		fmt.Sprintf("Output format (%s)", output.FormatNames()))

	return c
}

func runPlan(c *cobra.Command, args []string, scaffold *cmdutil.ScaffoldFlags, outputFlag string, g *cmdtypes.GlobalConfig) error {
	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return fail("invalid output format", oerrors.NewValidationError(
			err.Error(), "", "output", "Valid formats: "+output.FormatNames()))
	}

	projectName := wizard.DefaultProjectName
	if len(args) > 0 {
		projectName = args[0]
	}

	cfg, _ := scaffold.Resolve(c, projectName, g.Defaults())
	cfg = cfg.Normalize()

	plan, err := templates.Plan(cfg)
	if err != nil {
		return fail("invalid configuration", err)
	}

	out := c.OutOrStdout()
	doc := planDocument{Config: cfg, Files: plan}

	switch format {
	case output.FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshaling plan: %w", err)
		}
		_, err = out.Write(data)
		return err
	case output.FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling plan: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	default:
		fmt.Fprintln(out, output.RenderPlanTable(cmdutil.PlanEntries(plan)))
		return nil
	}
}
