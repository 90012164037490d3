package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/cepress/cli/internal/errors"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "my-app", false},
		{"underscore", "my_app", false},
		{"digits", "api2", false},
		{"mixed case", "MyApp", false},
		{"empty", "", true},
		{"space", "My App", true},
		{"slash", "a/b", true},
		{"dot", "my.app", true},
		{"unicode", "café", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfiguration_Normalize(t *testing.T) {
	got := Configuration{ProjectName: "a"}.Normalize()
	assert.Equal(t, DefaultConfiguration("a"), got)

	for _, cfg := range allConfigurations() {
		cfg.UsePrisma = true
		n := cfg.Normalize()
		assert.Equal(t, cfg.Database.SupportsPrisma(), n.UsePrisma, cfg.String())
	}
}

func TestConfiguration_Validate(t *testing.T) {
	valid := DefaultConfiguration("a")

	tests := []struct {
		name    string
		mutate  func(*Configuration)
		wantErr bool
	}{
		{"defaults", func(*Configuration) {}, false},
		{"unknown database", func(c *Configuration) { c.Database = "oracle" }, true},
		{"unknown auth", func(c *Configuration) { c.Auth = "oauth" }, true},
		{"unknown validation", func(c *Configuration) { c.Validation = "joi" }, true},
		{"unknown models", func(c *Configuration) { c.Models = "blog" }, true},
		{"prisma with sqlite", func(c *Configuration) { c.UsePrisma = true }, true},
		{"prisma with mysql", func(c *Configuration) {
			c.Database = MySQL
			c.UsePrisma = true
		}, false},
		{"bad name", func(c *Configuration) { c.ProjectName = "a b" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}
