// Package digest computes SHA-256 digests of UTF-8 text.
//
// The digest itself is delegated to a Provider so it can come from an
// out-of-process or platform service. Hash is the only blocking operation in
// the core: it takes a context, imposes no timeout of its own, and never
// reports a canceled request as a successful digest.
package digest

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrz1836/signet/internal/errors"
)

// HexSize is the length of a hex-encoded SHA-256 digest.
const HexSize = 64

// Provider computes the SHA-256 digest of a UTF-8 message and returns it
// hex-encoded. Implementations may block and should honor ctx.
type Provider interface {
	DigestHex(ctx context.Context, message string) (string, error)
}

// Named is implemented by providers that can report their algorithm name.
type Named interface {
	Name() string
}

// ProviderName returns the name p reports, or "" when p is not Named.
func ProviderName(p Provider) string {
	if n, ok := p.(Named); ok {
		return n.Name()
	}
	return ""
}

// Hash asks p for the digest of message and validates the reply.
//
// All failures wrap errors.ErrHashComputationFailed: a provider error, a
// canceled or expired ctx (checked before and after the call), and any
// reply that is not exactly 64 lowercase hex characters.
func Hash(ctx context.Context, p Provider, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Join(errors.ErrHashComputationFailed, err)
	}
	if p == nil {
		return "", errors.Wrap(errors.ErrHashComputationFailed, "no digest provider")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "digest").Logger()

	sum, err := p.DigestHex(ctx, message)
	if err != nil {
		logger.Debug().Err(err).Int("message_bytes", len(message)).Msg("digest provider failed")
		return "", errors.Join(errors.ErrHashComputationFailed, err)
	}

	// The provider may have answered after the caller gave up.
	if err := ctx.Err(); err != nil {
		return "", errors.Join(errors.ErrHashComputationFailed, err)
	}

	if !isDigestHex(sum) {
		logger.Debug().Int("reply_len", len(sum)).Msg("digest provider returned malformed digest")
		return "", errors.Wrapf(errors.ErrHashComputationFailed,
			"provider returned %d characters, want %d lowercase hex", len(sum), HexSize)
	}
	return sum, nil
}

// isDigestHex reports whether s is exactly HexSize lowercase hex characters.
func isDigestHex(s string) bool {
	if len(s) != HexSize {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
