package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice (not a map) because wrapped errors need errors.Is traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Keys & Signatures
	// ===================
	{
		err: ErrInvalidKeyLength,
		info: ErrorInfo{
			Message: "The key has the wrong length.",
			Action:  "Private keys are 64 bytes and public keys 32 bytes before base64 encoding. Check for a truncated copy.",
		},
	},
	{
		err: ErrInvalidSignatureLength,
		info: ErrorInfo{
			Message: "The signature has the wrong length.",
			Action:  "Signatures are 64 bytes before base64 encoding. Check for a truncated copy.",
		},
	},
	{
		err: ErrKeyMismatch,
		info: ErrorInfo{
			Message: "The private key is corrupted: its public half does not match its seed.",
			Action:  "Use the private key exactly as printed by 'signet keygen'.",
		},
	},
	{
		err: ErrSignatureInvalid,
		info: ErrorInfo{
			Message: "The signature does not match this message and public key.",
			Action:  "",
		},
	},
	{
		err: ErrEntropyUnavailable,
		info: ErrorInfo{
			Message: "The system random source is unavailable.",
			Action:  "This is an environment failure. Check the host's entropy source.",
		},
	},

	// ===================
	// Encoding & Hashing
	// ===================
	{
		err: ErrInvalidEncoding,
		info: ErrorInfo{
			Message: "The value is not valid base64.",
			Action:  "Use standard base64 with padding and no whitespace or line breaks.",
		},
	},
	{
		err: ErrHashComputationFailed,
		info: ErrorInfo{
			Message: "The message digest could not be computed.",
			Action:  "Check the digest provider configuration and retry.",
		},
	},
	{
		err: ErrUnknownDigestProvider,
		info: ErrorInfo{
			Message: "The configured digest provider does not exist.",
			Action:  "Set digest.provider to 'sha256'.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Ensure config.yaml exists and is valid YAML.",
		},
	},
	{
		err: ErrConfigInvalidDigest,
		info: ErrorInfo{
			Message: "Invalid digest configuration.",
			Action:  "Check the 'digest' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidLog,
		info: ErrorInfo{
			Message: "Invalid log configuration.",
			Action:  "Check the 'log' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrEmptyValue,
		info: ErrorInfo{
			Message: "A required value was not provided.",
			Action:  "Provide the required value and try again.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries a direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
