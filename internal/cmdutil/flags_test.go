package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cepress/cli/internal/config"
	"github.com/cepress/cli/internal/templates"
	"github.com/cepress/cli/internal/wizard"
)

func newFlagCmd(t *testing.T, args ...string) (*cobra.Command, *ScaffoldFlags) {
	t.Helper()

	var sf ScaffoldFlags
	cmd := &cobra.Command{Use: "test"}
	sf.AddTo(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &sf
}

func TestScaffoldFlags_AddTo(t *testing.T) {
	cmd, _ := newFlagCmd(t)

	for _, name := range []string{"database", "auth", "validation", "models"} {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "", f.DefValue)
	}
	for _, name := range []string{"prisma", "swagger"} {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "bool", f.Value.Type())
	}
}

func TestScaffoldFlags_ResolveDefaults(t *testing.T) {
	cmd, sf := newFlagCmd(t)

	cfg, fixed := sf.Resolve(cmd, "", config.DefaultConfig().Defaults)

	assert.Equal(t, templates.DefaultConfiguration(""), cfg)
	assert.Empty(t, fixed)
}

func TestScaffoldFlags_ResolveOverrides(t *testing.T) {
	cmd, sf := newFlagCmd(t, "--database", "postgresql", "--prisma", "--swagger=false", "--models", "empty")

	defaults := config.DefaultConfig().Defaults
	defaults.Swagger = true

	cfg, fixed := sf.Resolve(cmd, "shop", defaults)

	assert.Equal(t, "shop", cfg.ProjectName)
	assert.Equal(t, templates.PostgreSQL, cfg.Database)
	assert.True(t, cfg.UsePrisma)
	assert.False(t, cfg.Swagger)
	assert.Equal(t, templates.NoModels, cfg.Models)
	assert.Equal(t, templates.AuthNone, cfg.Auth)

	assert.Equal(t, map[wizard.Field]bool{
		wizard.FieldProjectName: true,
		wizard.FieldDatabase:    true,
		wizard.FieldPrisma:      true,
		wizard.FieldSwagger:     true,
		wizard.FieldModels:      true,
	}, fixed)
}
