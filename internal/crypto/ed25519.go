package crypto

import (
	"crypto/ed25519"

	"github.com/mrz1836/signet/internal/errors"
)

// Sizes of Ed25519 inputs, in bytes.
const (
	PrivateKeySize = ed25519.PrivateKeySize
	PublicKeySize  = ed25519.PublicKeySize
	SignatureSize  = ed25519.SignatureSize
)

// Sign returns the detached Ed25519 signature of the UTF-8 bytes of message.
// privateKey must be exactly 64 bytes (seed || public key); it is never
// truncated or padded.
func Sign(message string, privateKey []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInvalidKeyLength,
			"private key: want %d bytes, got %d", PrivateKeySize, len(privateKey))
	}
	return ed25519.Sign(ed25519.PrivateKey(privateKey), []byte(message)), nil
}

// Verify reports whether signature is a valid detached Ed25519 signature of
// the UTF-8 bytes of message under publicKey.
//
// Lengths are checked first: a signature that is not 64 bytes yields
// ErrInvalidSignatureLength and a public key that is not 32 bytes yields
// ErrInvalidKeyLength. Any cryptographic mismatch returns false, nil.
func Verify(message string, signature, publicKey []byte) (bool, error) {
	if len(signature) != SignatureSize {
		return false, errors.Wrapf(errors.ErrInvalidSignatureLength,
			"signature: want %d bytes, got %d", SignatureSize, len(signature))
	}
	if len(publicKey) != PublicKeySize {
		return false, errors.Wrapf(errors.ErrInvalidKeyLength,
			"public key: want %d bytes, got %d", PublicKeySize, len(publicKey))
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), []byte(message), signature), nil
}
