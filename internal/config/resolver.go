package config

import (
	"os"

	"github.com/cepress/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records how one configuration key was resolved.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveRegistryOptions contains options for registry resolution.
type ResolveRegistryOptions struct {
	// FlagValue is the --registry flag value (empty if not set).
	FlagValue string
	// ConfigValue is the registry.url value from the config file (empty if not set).
	ConfigValue string
}

// ResolveRegistry resolves the registry URL using precedence:
// (1) --registry flag, (2) CEPRESS_REGISTRY_URL env, (3) registry.url,
// (4) the public npm registry.
func ResolveRegistry(opts ResolveRegistryOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      "registry.url",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("CEPRESS_REGISTRY_URL")

	// The loaded config already carries the env value; only a distinct
	// file value counts as shadowed.
	configValue := opts.ConfigValue
	if configValue == envValue {
		configValue = ""
	}

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = DefaultRegistryURL
		result.Source = SourceDefault
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CEPRESS_CONFIG env, (3) ~/.cepress/config.yaml.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(ConfigEnv)

	defaultPath, err := DefaultConfigFile()
	if err != nil {
		return result, err
	}

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
