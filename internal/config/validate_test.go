package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signeterrors "github.com/mrz1836/signet/internal/errors"
)

func TestValidate_NilConfig(t *testing.T) {
	t.Parallel()

	err := Validate(nil)

	require.Error(t, err)
	require.ErrorIs(t, err, signeterrors.ErrConfigNil)
}

func TestValidate_DefaultConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidateDigestConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "empty provider",
			mutate:  func(c *Config) { c.Digest.Provider = "" },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Digest.Timeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "zero timeout means none",
			mutate:  func(c *Config) { c.Digest.Timeout = 0 },
			wantErr: false,
		},
		{
			name:    "positive timeout",
			mutate:  func(c *Config) { c.Digest.Timeout = 30 * time.Second },
			wantErr: false,
		},
		{
			name:    "unregistered provider name is left to the digest package",
			mutate:  func(c *Config) { c.Digest.Provider = "blake3" },
			wantErr: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			if tc.wantErr {
				require.ErrorIs(t, err, signeterrors.ErrConfigInvalidDigest)
				assert.Contains(t, err.Error(), "digest.")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateLogConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "zero max size with file logging",
			mutate:  func(c *Config) { c.Log.MaxSizeMB = 0 },
			wantErr: true,
		},
		{
			name: "zero max size without file logging",
			mutate: func(c *Config) {
				c.Log.File = false
				c.Log.MaxSizeMB = 0
			},
			wantErr: false,
		},
		{
			name:    "negative backups",
			mutate:  func(c *Config) { c.Log.MaxBackups = -1 },
			wantErr: true,
		},
		{
			name:    "negative age",
			mutate:  func(c *Config) { c.Log.MaxAgeDays = -1 },
			wantErr: true,
		},
		{
			name:    "zero backups keeps every file",
			mutate:  func(c *Config) { c.Log.MaxBackups = 0 },
			wantErr: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			if tc.wantErr {
				require.ErrorIs(t, err, signeterrors.ErrConfigInvalidLog)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateOutputConfig(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"text", "json"} {
		cfg := DefaultConfig()
		cfg.Output.Format = format
		require.NoError(t, Validate(cfg), format)
	}

	for _, format := range []string{"", "yaml", "JSON"} {
		cfg := DefaultConfig()
		cfg.Output.Format = format
		require.ErrorIs(t, Validate(cfg), signeterrors.ErrInvalidOutputFormat, format)
	}
}

// TestValidate_StopsAtFirstError checks that the digest section is reported
// before the log section.
func TestValidate_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Digest.Provider = ""
	cfg.Log.MaxBackups = -1

	err := Validate(cfg)

	require.ErrorIs(t, err, signeterrors.ErrConfigInvalidDigest)
	assert.NotErrorIs(t, err, signeterrors.ErrConfigInvalidLog)
}
