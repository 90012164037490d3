package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)

	assert.Equal(t, "https://registry.npmjs.org", cfg.Registry.URL)
	assert.Equal(t, 10*time.Second, cfg.Registry.Timeout)
	assert.False(t, cfg.Registry.Offline)

	assert.Equal(t, "sqlite", cfg.Defaults.Database)
	assert.Equal(t, "none", cfg.Defaults.Auth)
	assert.Equal(t, "zod", cfg.Defaults.Validation)
	assert.Equal(t, "user-post", cfg.Defaults.Models)
	assert.False(t, cfg.Defaults.Prisma)
	assert.False(t, cfg.Defaults.Swagger)

	assert.Nil(t, cfg.Log.Timestamps)
	assert.Empty(t, cfg.Versions)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := &Config{
		Registry: RegistryConfig{URL: "https://mirror.example.com"},
		Defaults: DefaultsConfig{Database: "mysql", Swagger: true},
	}

	got := cfg.WithDefaults()

	assert.Equal(t, "https://mirror.example.com", got.Registry.URL)
	assert.Equal(t, DefaultRegistryTimeout, got.Registry.Timeout)
	assert.Equal(t, "mysql", got.Defaults.Database)
	assert.True(t, got.Defaults.Swagger)
	assert.Equal(t, "none", got.Defaults.Auth)
	assert.Equal(t, "user-post", got.Defaults.Models)

	// The receiver is left untouched.
	assert.Zero(t, cfg.Registry.Timeout)
}
