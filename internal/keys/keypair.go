// Package keys generates Ed25519 signing keypairs.
//
// A Keypair is derived entirely from a 32-byte seed read from an injected
// EntropySource. The 64-byte private key keeps the scheme's layout (seed
// followed by the public key) so downstream code can slice it directly.
package keys

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/mrz1836/signet/internal/constants"
	"github.com/mrz1836/signet/internal/errors"
)

// Sizes of the key material, in bytes.
const (
	SeedSize       = ed25519.SeedSize
	PrivateKeySize = ed25519.PrivateKeySize
	PublicKeySize  = ed25519.PublicKeySize
)

// EntropySource supplies uniformly random bytes. Production code uses
// SystemEntropy; tests inject a deterministic reader.
type EntropySource interface {
	io.Reader
}

// SystemEntropy returns the operating system's cryptographically secure
// random source.
func SystemEntropy() EntropySource {
	return rand.Reader
}

// PrivateKey is the 64-byte Ed25519 secret key: seed || public key.
type PrivateKey [PrivateKeySize]byte

// Slice returns the key as a []byte.
func (k PrivateKey) Slice() []byte { return k[:] }

// PublicKey is the 32-byte Ed25519 verification key.
type PublicKey [PublicKeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// Keypair is an immutable Ed25519 signing keypair.
type Keypair struct {
	PrivateKey PrivateKey
	PublicKey  PublicKey
}

// Generate reads a fresh seed from src and derives a keypair from it.
//
// Entropy failure is fatal: Generate panics with an error wrapping
// errors.ErrEntropyUnavailable instead of returning it.
func Generate(src EntropySource) Keypair {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(src, seed[:]); err != nil {
		panic(errors.Join(errors.ErrEntropyUnavailable, err))
	}
	defer clear(seed[:])

	kp, err := FromSeed(seed[:])
	if err != nil {
		// unreachable: seed is always SeedSize
		panic(err)
	}
	return kp
}

// New generates a keypair from the system entropy source.
func New() Keypair {
	return Generate(SystemEntropy())
}

// FromSeed deterministically derives the keypair for a 32-byte seed.
func FromSeed(seed []byte) (Keypair, error) {
	if len(seed) != SeedSize {
		return Keypair{}, errors.Wrapf(errors.ErrInvalidKeyLength,
			"seed: want %d bytes, got %d", SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	defer clear(priv)

	var kp Keypair
	copy(kp.PrivateKey[:], priv)
	copy(kp.PublicKey[:], priv[SeedSize:])
	return kp, nil
}

// FromPrivateKey rebuilds a keypair from a 64-byte private key. The public
// key is recomputed from the seed half and must match the embedded copy.
func FromPrivateKey(priv []byte) (Keypair, error) {
	if len(priv) != PrivateKeySize {
		return Keypair{}, errors.Wrapf(errors.ErrInvalidKeyLength,
			"private key: want %d bytes, got %d", PrivateKeySize, len(priv))
	}

	kp, err := FromSeed(priv[:SeedSize])
	if err != nil {
		return Keypair{}, err
	}
	if !bytes.Equal(kp.PublicKey[:], priv[SeedSize:]) {
		return Keypair{}, errors.ErrKeyMismatch
	}
	return kp, nil
}

// Seed returns a copy of the 32-byte seed.
func (kp Keypair) Seed() []byte {
	return bytes.Clone(kp.PrivateKey[:SeedSize])
}

// PrivateKeyBytes returns a copy of the 64-byte private key.
func (kp Keypair) PrivateKeyBytes() []byte {
	return bytes.Clone(kp.PrivateKey[:])
}

// PublicKeyBytes returns a copy of the 32-byte public key.
func (kp Keypair) PublicKeyBytes() []byte {
	return bytes.Clone(kp.PublicKey[:])
}

// Fingerprint returns the short display fingerprint of the public key.
func (kp Keypair) Fingerprint() string {
	return Fingerprint(kp.PublicKey[:])
}

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:constants.FingerprintSize])
}
