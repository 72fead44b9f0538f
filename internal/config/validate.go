package config

import (
	"github.com/mrz1836/signet/internal/constants"
	"github.com/mrz1836/signet/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - Digest provider must not be empty
//   - Digest timeout must not be negative
//   - Log rotation values must not be negative, and max size must be positive
//     when file logging is enabled
//   - Output format must be "text" or "json"
//
// Whether the digest provider name is registered is checked by the digest
// package when the provider is resolved.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateDigestConfig(&cfg.Digest); err != nil {
		return err
	}

	if err := validateLogConfig(&cfg.Log); err != nil {
		return err
	}

	return validateOutputConfig(&cfg.Output)
}

func validateDigestConfig(cfg *DigestConfig) error {
	if cfg.Provider == "" {
		return errors.Wrap(errors.ErrConfigInvalidDigest,
			"digest.provider must not be empty")
	}

	if cfg.Timeout < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidDigest,
			"digest.timeout cannot be negative, got %s", cfg.Timeout)
	}

	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg.File && cfg.MaxSizeMB <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.max_size_mb must be positive, got %d", cfg.MaxSizeMB)
	}

	if cfg.MaxBackups < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.max_backups cannot be negative, got %d", cfg.MaxBackups)
	}

	if cfg.MaxAgeDays < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.max_age_days cannot be negative, got %d", cfg.MaxAgeDays)
	}

	return nil
}

func validateOutputConfig(cfg *OutputConfig) error {
	switch cfg.Format {
	case constants.OutputText, constants.OutputJSON:
		return nil
	default:
		return errors.Wrapf(errors.ErrInvalidOutputFormat,
			"output.format must be %q or %q, got %q",
			constants.OutputText, constants.OutputJSON, cfg.Format)
	}
}
