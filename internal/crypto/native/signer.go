// Package native provides Ed25519 signing using standard crypto libraries.
package native

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"

	"github.com/mrz1836/signet/internal/crypto"
	"github.com/mrz1836/signet/internal/errors"
	"github.com/mrz1836/signet/internal/keys"
)

// Signer implements crypto.Signer with a single in-memory keypair.
// It holds no mutable state and is safe for concurrent use.
type Signer struct {
	kp keys.Keypair
}

// NewSigner returns a Signer for kp.
func NewSigner(kp keys.Keypair) *Signer {
	return &Signer{kp: kp}
}

// NewSignerFromPrivateKey rebuilds the keypair from a 64-byte private key
// and returns a Signer for it.
func NewSignerFromPrivateKey(priv []byte) (*Signer, error) {
	kp, err := keys.FromPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	return NewSigner(kp), nil
}

// Sign signs the message using Ed25519.
func (s *Signer) Sign(ctx context.Context, message string) ([]byte, error) {
	sig, err := crypto.Sign(message, s.kp.PrivateKey[:])
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().
		Str("component", "signer").
		Str("fingerprint", s.kp.Fingerprint()).
		Int("message_bytes", len(message)).
		Msg("message signed")
	return sig, nil
}

// Verify checks the signature against the signer's own public key.
func (s *Signer) Verify(_ context.Context, message string, signature []byte) (bool, error) {
	return crypto.Verify(message, signature, s.kp.PublicKey[:])
}

// PublicKey returns a copy of the signer's public key.
func (s *Signer) PublicKey() []byte {
	return s.kp.PublicKeyBytes()
}

// Fingerprint returns the display fingerprint of the signer's public key.
func (s *Signer) Fingerprint() string {
	return s.kp.Fingerprint()
}

// Verifier implements crypto.Verifier for a bare public key.
type Verifier struct {
	pub []byte
}

// NewVerifier validates pub and returns a Verifier for it.
func NewVerifier(pub []byte) (*Verifier, error) {
	if len(pub) != keys.PublicKeySize {
		return nil, errors.Wrapf(errors.ErrInvalidKeyLength,
			"public key: want %d bytes, got %d", keys.PublicKeySize, len(pub))
	}
	return &Verifier{pub: bytes.Clone(pub)}, nil
}

// Verify checks the signature using Ed25519.
func (v *Verifier) Verify(ctx context.Context, message string, signature []byte) (bool, error) {
	ok, err := crypto.Verify(message, signature, v.pub)
	if err != nil {
		return false, err
	}
	zerolog.Ctx(ctx).Debug().
		Str("component", "verifier").
		Str("fingerprint", keys.Fingerprint(v.pub)).
		Bool("valid", ok).
		Msg("signature checked")
	return ok, nil
}

// PublicKey returns a copy of the verification key.
func (v *Verifier) PublicKey() []byte {
	return bytes.Clone(v.pub)
}

// Fingerprint returns the display fingerprint of the verification key.
func (v *Verifier) Fingerprint() string {
	return keys.Fingerprint(v.pub)
}

// Ensure the implementations satisfy the crypto interfaces.
var (
	_ crypto.Signer   = (*Signer)(nil)
	_ crypto.Verifier = (*Verifier)(nil)
)
