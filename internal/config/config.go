// Package config provides configuration management for signet with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the cli package)
//  2. Environment variables (SIGNET_* prefix)
//  3. Project config (.signet/config.yaml)
//  4. Global config (~/.signet/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for signet.
type Config struct {
	// Digest contains settings for the message digest step that precedes signing.
	Digest DigestConfig `yaml:"digest" mapstructure:"digest"`

	// Log contains settings for the rotating CLI log file.
	Log LogConfig `yaml:"log" mapstructure:"log"`

	// Output contains settings for command output.
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// DigestConfig contains settings for computing message digests.
type DigestConfig struct {
	// Provider is the registered name of the digest provider.
	// Only "sha256" is built in.
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Timeout bounds a single hash request from the CLI.
	// Zero means no deadline.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// LogConfig contains settings for the CLI log file.
type LogConfig struct {
	// File enables writing logs to ~/.signet/logs/signet.log.
	File bool `yaml:"file" mapstructure:"file"`

	// MaxSizeMB is the size in megabytes at which the log file is rotated.
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is the number of days to keep rotated files.
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`

	// Compress gzips rotated files.
	Compress bool `yaml:"compress" mapstructure:"compress"`
}

// OutputConfig contains settings for command output.
type OutputConfig struct {
	// Format is the default output format: "text" or "json".
	Format string `yaml:"format" mapstructure:"format"`
}
