package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for cepress configuration.
const envPrefix = "CEPRESS"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so every env-overridable
	// key needs a default.
	def := DefaultConfig()
	v.SetDefault("registry.url", def.Registry.URL)
	v.SetDefault("registry.timeout", def.Registry.Timeout)
	v.SetDefault("registry.offline", false)
	v.SetDefault("defaults.database", def.Defaults.Database)
	v.SetDefault("defaults.prisma", false)
	v.SetDefault("defaults.auth", def.Defaults.Auth)
	v.SetDefault("defaults.swagger", false)
	v.SetDefault("defaults.validation", def.Defaults.Validation)
	v.SetDefault("defaults.models", def.Defaults.Models)
	_ = v.BindEnv("log.timestamps", "CEPRESS_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// An empty configFile is resolved with Locate.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	path, err := Locate(configFile)
	if err != nil {
		return nil, err
	}

	l.v.SetConfigFile(path)
	l.v.SetConfigType("yaml")

	// A missing file is fine; defaults and env vars still apply.
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}
