package digest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Provider computes digests in-process. It never blocks and only
// fails when ctx is already done.
type SHA256Provider struct{}

// DigestHex implements Provider.
func (SHA256Provider) DigestHex(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(message))
	return hex.EncodeToString(sum[:]), nil
}

// Name implements Named.
func (SHA256Provider) Name() string {
	return ProviderSHA256
}

// Ensure SHA256Provider implements Provider and Named.
var (
	_ Provider = SHA256Provider{}
	_ Named    = SHA256Provider{}
)
