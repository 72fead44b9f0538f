// Package encoding converts raw key and signature bytes to and from the
// portable text form used everywhere outside the core: standard base64 with
// padding and no line wrapping.
package encoding

import (
	"encoding/base64"

	"github.com/mrz1836/signet/internal/errors"
)

// Encode returns standard base64 encoding of b without newlines.
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Decode parses standard padded base64. Any character outside the alphabet,
// including whitespace and line breaks, or a malformed length or padding
// yields ErrInvalidEncoding. The empty string decodes to an empty slice.
func Decode(s string) ([]byte, error) {
	// DecodeString skips \r and \n; those are rejected here.
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' || s[i] == '\n' {
			return nil, errors.Wrapf(errors.ErrInvalidEncoding, "illegal line break at offset %d", i)
		}
	}

	// Strict rejects non-zero trailing bits so that every accepted string
	// is the unique encoding of its bytes.
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, errors.Join(errors.ErrInvalidEncoding, err)
	}
	return b, nil
}

// DecodeSized decodes s and checks the result has exactly size bytes.
// A length mismatch is reported as lengthErr so callers can keep key and
// signature failures distinct.
func DecodeSized(s string, size int, lengthErr error) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, errors.Wrapf(lengthErr, "want %d bytes, got %d", size, len(b))
	}
	return b, nil
}
