// Package errors provides centralized error handling for signet.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInvalidKeyLength indicates that a private key, public key or seed
	// buffer does not have the exact length the signature scheme requires.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidSignatureLength indicates that a signature buffer is not
	// exactly 64 bytes.
	ErrInvalidSignatureLength = errors.New("invalid signature length")

	// ErrInvalidEncoding indicates that a string is not valid padded
	// standard base64.
	ErrInvalidEncoding = errors.New("invalid base64 encoding")

	// ErrHashComputationFailed indicates that the digest provider was
	// unavailable, was canceled, or returned something other than a
	// 64-character lowercase hex digest.
	ErrHashComputationFailed = errors.New("hash computation failed")

	// ErrEntropyUnavailable indicates that the random source could not
	// produce seed bytes. Key generation panics with this error; it is
	// never returned.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrKeyMismatch indicates that the public half embedded in a 64-byte
	// private key does not match the key derived from its seed.
	ErrKeyMismatch = errors.New("embedded public key does not match seed")

	// ErrSignatureInvalid indicates that a well-formed signature did not
	// verify. Only the CLI uses it, to exit non-zero; library code reports
	// the same outcome as a false result.
	ErrSignatureInvalid = errors.New("signature is not valid")

	// ErrUnknownDigestProvider indicates that the configured digest provider
	// name is not registered.
	ErrUnknownDigestProvider = errors.New("unknown digest provider")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidDigest indicates an invalid digest configuration value.
	ErrConfigInvalidDigest = errors.New("invalid digest configuration")

	// ErrConfigInvalidLog indicates an invalid log configuration value.
	ErrConfigInvalidLog = errors.New("invalid log configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// Commands should silence cobra's error printing when this is returned.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}

// IsInputError reports whether err was caused by malformed caller input
// (bad lengths or bad encoding) as opposed to a provider or environment
// failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidKeyLength) ||
		errors.Is(err, ErrInvalidSignatureLength) ||
		errors.Is(err, ErrInvalidEncoding) ||
		errors.Is(err, ErrKeyMismatch)
}
