package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/cepress/cli/internal/errors"
)

func TestPlan_Table(t *testing.T) {
	out, err := execute(t, "plan", "--config", configPath(t))
	require.NoError(t, err)

	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "package.json")
	assert.Contains(t, out, "src/models/User.js")
}

func TestPlan_JSON(t *testing.T) {
	out, err := execute(t, "plan", "shop", "--database", "mysql", "--prisma", "--models", "empty",
		"-o", "json", "--config", configPath(t))
	require.NoError(t, err)

	var doc struct {
		Config struct {
			ProjectName string `json:"projectName"`
			UsePrisma   bool   `json:"usePrisma"`
		} `json:"config"`
		Files []struct {
			Path string `json:"path"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "shop", doc.Config.ProjectName)
	assert.True(t, doc.Config.UsePrisma)

	var paths []string
	for _, f := range doc.Files {
		paths = append(paths, f.Path)
	}
	assert.Contains(t, paths, "prisma/schema.prisma")
	assert.NotContains(t, paths, "src/models/User.js")
}

func TestPlan_YAML(t *testing.T) {
	out, err := execute(t, "plan", "-o", "yml", "--config", configPath(t))
	require.NoError(t, err)

	assert.Contains(t, out, "projectName: my-cepress-app")
	assert.Contains(t, out, "- path: package.json")
}

func TestPlan_InvalidFormat(t *testing.T) {
	_, err := execute(t, "plan", "-o", "xml", "--config", configPath(t))
	requireExitCode(t, err, oerrors.ExitGeneralError)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}
