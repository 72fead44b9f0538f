package config

import (
	"github.com/mrz1836/signet/internal/constants"
)

// DefaultConfig returns a new Config with default values.
// These defaults are the base layer that config files, environment
// variables and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		Digest: DigestConfig{
			Provider: constants.DefaultDigestProvider,
			Timeout:  constants.DefaultDigestTimeout,
		},
		Log: LogConfig{
			File:       true,
			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAgeDays: constants.LogMaxAgeDays,
			Compress:   constants.LogCompress,
		},
		Output: OutputConfig{
			Format: constants.OutputText,
		},
	}
}
