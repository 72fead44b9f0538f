package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/signet/internal/constants"
	"github.com/mrz1836/signet/internal/errors"
)

// newViperInstance creates a new Viper instance with the standard signet setup:
// environment variable prefix (SIGNET_), key replacer and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError checks if the error indicates a config file was not found.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

func unmarshalAndValidate(ctx context.Context, v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("digest.provider", cfg.Digest.Provider).
		Dur("digest.timeout", cfg.Digest.Timeout).
		Bool("log.file", cfg.Log.File).
		Str("output.format", cfg.Output.Format).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (SIGNET_* prefix)
//  2. Project config (.signet/config.yaml)
//  3. Global config (~/.signet/config.yaml)
//  4. Built-in defaults
//
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	globalConfigPath, ok := getGlobalConfigPathIfExists()
	if !ok {
		globalConfigPath = ""
	}

	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		projectConfigPath = ""
	}

	return LoadFromPaths(ctx, projectConfigPath, globalConfigPath)
}

// getGlobalConfigPathIfExists returns the global config path if it exists.
// Returns empty string and false if the home directory cannot be determined
// or the config file does not exist.
func getGlobalConfigPathIfExists() (string, bool) {
	globalConfigPath, err := GlobalConfigPath()
	if err != nil {
		return "", false
	}

	if !fileExists(globalConfigPath) {
		return "", false
	}

	return globalConfigPath, true
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadFromPaths loads configuration from specific file paths.
//
// projectConfigPath is the path to project-level config (higher priority).
// globalConfigPath is the path to global config (lower priority).
// Either path can be empty to skip that level.
func LoadFromPaths(ctx context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	// Global config first (lower precedence)
	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	// Project config merges over global
	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(ctx, v)
}

// setDefaults registers every key with viper. Registering a default is also
// what lets AutomaticEnv pick up SIGNET_* overrides during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	// Digest defaults
	v.SetDefault("digest.provider", d.Digest.Provider)
	v.SetDefault("digest.timeout", d.Digest.Timeout.String())

	// Log defaults
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)

	// Output defaults
	v.SetDefault("output.format", d.Output.Format)
}

// viperDecoderOption returns the decode hooks used when unmarshaling,
// so durations may be written as "30s" in YAML and env vars.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
