// Package constants provides centralized constant values used throughout signet.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by signet.
const (
	// SignetHome is the hidden directory name where signet stores its
	// configuration and logs. It is created in the user's home directory.
	SignetHome = ".signet"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// EnvPrefix is the prefix for environment variable overrides
// (SIGNET_DIGEST_PROVIDER, SIGNET_OUTPUT_FORMAT, ...).
const EnvPrefix = "SIGNET"

// PrivateKeyEnvVar names the environment variable consulted by
// 'signet sign' when --key is not given.
const PrivateKeyEnvVar = "SIGNET_PRIVATE_KEY"

// Digest defaults.
const (
	// DefaultDigestProvider is the name of the in-process SHA-256 provider.
	DefaultDigestProvider = "sha256"

	// DefaultDigestTimeout is zero: no deadline is applied to hashing.
	DefaultDigestTimeout time.Duration = 0

	// MaxConcurrentDigests bounds how many messages HashAll hashes at once.
	MaxConcurrentDigests = 8
)

// Log file rotation settings.
const (
	// LogMaxSizeMB is the maximum size in megabytes before a log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 5

	// LogMaxAgeDays is the number of days to retain rotated log files.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// FingerprintSize is the number of SHA-256 bytes shown as a public key fingerprint.
const FingerprintSize = 10
