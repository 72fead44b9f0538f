// Package logging provides logging utilities including sensitive data filtering.
// This package contains hooks and utilities for zerolog that keep private key
// material out of console output and log files.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// sensitivePattern is a detector plus its replacement template. Templates may
// reference capture groups so that field names survive redaction.
type sensitivePattern struct {
	re   *regexp.Regexp
	repl string
}

// sensitivePatterns detect secret key material in free text and JSON log lines.
var sensitivePatterns = []sensitivePattern{ //nolint:gochecknoglobals // Package-level patterns for reuse
	// Labeled base64 key material: private_key=..., "seed":"...", SIGNET_PRIVATE_KEY=...
	{
		re:   regexp.MustCompile(`(?i)((?:private[_-]?key|secret[_-]?key|seed)"?\s*[:=]\s*"?)[A-Za-z0-9+/]{40,}={0,2}`),
		repl: "${1}" + RedactedValue,
	},

	// Labeled hex key material.
	{
		re:   regexp.MustCompile(`(?i)((?:private[_-]?key|secret[_-]?key|seed)"?\s*[:=]\s*"?)[0-9a-f]{64,128}`),
		repl: "${1}" + RedactedValue,
	},

	// Bare hex-encoded 64-byte private key.
	{
		re:   regexp.MustCompile(`\b[0-9a-fA-F]{128}\b`),
		repl: RedactedValue,
	},

	// PEM private keys.
	{
		re:   regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]+PRIVATE KEY-----`),
		repl: RedactedValue,
	},

	// Generic secret patterns (secret, password, passphrase with values).
	{
		re:   regexp.MustCompile(`(?i)((?:secret|password|passphrase|passwd)"?\s*[:=]\s*"?)[^\s"']{8,}`),
		repl: "${1}" + RedactedValue,
	},
}

// sensitiveFieldNames contains field names that should always have their values redacted.
// Case-insensitive matching is performed.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // Package-level patterns for reuse
	"private_key",
	"privatekey",
	"private-key",
	"secret_key",
	"secretkey",
	"secret-key",
	"seed",
	"secret",
	"password",
	"passphrase",
}

// SensitiveDataHook is a zerolog hook that flags log entries whose message
// carries key material. zerolog hooks cannot rewrite the message, so the
// actual redaction happens in FilteringWriter and FilterSensitiveValue.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook for filtering sensitive data.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements the zerolog.Hook interface.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData checks if a string contains any sensitive data patterns.
func ContainsSensitiveData(s string) bool {
	for _, p := range sensitivePatterns {
		if p.re.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every match of the sensitive patterns with
// [REDACTED], keeping the field label where there is one.
func FilterSensitiveValue(value string) string {
	result := value
	for _, p := range sensitivePatterns {
		result = p.re.ReplaceAllString(result, p.repl)
	}
	return result
}

// IsSensitiveFieldName checks if a field name indicates sensitive data.
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// RedactIfSensitive returns [REDACTED] if the field name indicates sensitive data,
// otherwise returns the value with any embedded secrets filtered.
//
// Usage:
//
//	log.Debug().Str("key", logging.RedactIfSensitive("private_key", b64)).Msg("loaded key")
func RedactIfSensitive(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter wraps an io.Writer and filters sensitive data from output.
// It is used to wrap log file writers so key material never reaches disk.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a new FilteringWriter that wraps the given writer.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer, filtering sensitive data before writing.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	filtered := FilterSensitiveValue(string(p))
	if _, err = fw.w.Write([]byte(filtered)); err != nil {
		return 0, err
	}
	// Report the original length so callers don't see a short write.
	return len(p), nil
}
