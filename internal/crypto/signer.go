// Package crypto provides detached Ed25519 signing and verification of
// UTF-8 messages, plus the Signer and Verifier interfaces that backends
// implement.
//
// Malformed input (wrong key or signature length) is an error. A well-formed
// signature that does not verify is not: Verify reports it as false.
package crypto

import "context"

// Signer provides signing capabilities.
// Implementations must be deterministic: signing the same message twice produces the same signature.
type Signer interface {
	Verifier

	// Sign returns the 64-byte detached signature of message.
	Sign(ctx context.Context, message string) ([]byte, error)
}

// Verifier provides signature verification capabilities.
// This is a read-only subset of Signer for consumers that only need to verify.
type Verifier interface {
	// Verify reports whether signature is valid for message.
	// It returns an error only for malformed input, never for a mismatch.
	Verify(ctx context.Context, message string, signature []byte) (bool, error)

	// PublicKey returns a copy of the 32-byte verification key.
	PublicKey() []byte
}
