// Package config provides configuration loading and management.
package config

import "time"

// Default values applied when neither the file nor the environment sets a key.
const (
	DefaultRegistryURL     = "https://registry.npmjs.org"
	DefaultRegistryTimeout = 10 * time.Second
)

// RegistryConfig contains package registry settings.
type RegistryConfig struct {
	// URL is the npm registry base URL.
	// Env: CEPRESS_REGISTRY_URL, Default: https://registry.npmjs.org
	URL string `mapstructure:"url" yaml:"url"`

	// Timeout bounds each version lookup. A lookup that times out falls back
	// to the static version table.
	// Env: CEPRESS_REGISTRY_TIMEOUT, Default: 10s
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// Offline skips the registry and uses the static version table only.
	// Env: CEPRESS_REGISTRY_OFFLINE
	Offline bool `mapstructure:"offline" yaml:"offline"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// DefaultsConfig pre-selects answers in the interactive prompts and provides
// values for flags that were not given.
type DefaultsConfig struct {
	Database   string `mapstructure:"database" yaml:"database"`
	Prisma     bool   `mapstructure:"prisma" yaml:"prisma"`
	Auth       string `mapstructure:"auth" yaml:"auth"`
	Swagger    bool   `mapstructure:"swagger" yaml:"swagger"`
	Validation string `mapstructure:"validation" yaml:"validation"`
	Models     string `mapstructure:"models" yaml:"models"`
}

// Config represents the cepress CLI configuration.
// Loaded from ~/.cepress/config.yaml.
type Config struct {
	// Registry contains package registry settings.
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Defaults contains the default scaffold choices.
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`

	// Versions overrides entries of the static fallback version table,
	// keyed by npm package name.
	Versions map[string]string `mapstructure:"versions" yaml:"versions,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `cepress config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			URL:     DefaultRegistryURL,
			Timeout: DefaultRegistryTimeout,
		},
		Defaults: DefaultsConfig{
			Database:   "sqlite",
			Auth:       "none",
			Validation: "zod",
			Models:     "user-post",
		},
	}
}

// WithDefaults returns a copy of c with empty fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.Registry.URL == "" {
		out.Registry.URL = def.Registry.URL
	}
	if out.Registry.Timeout <= 0 {
		out.Registry.Timeout = def.Registry.Timeout
	}
	if out.Defaults.Database == "" {
		out.Defaults.Database = def.Defaults.Database
	}
	if out.Defaults.Auth == "" {
		out.Defaults.Auth = def.Defaults.Auth
	}
	if out.Defaults.Validation == "" {
		out.Defaults.Validation = def.Defaults.Validation
	}
	if out.Defaults.Models == "" {
		out.Defaults.Models = def.Defaults.Models
	}

	return &out
}
