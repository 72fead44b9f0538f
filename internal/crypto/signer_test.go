package crypto

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSignerImplementsVerifier verifies that Signer interface embeds Verifier behavior.
func TestSignerImplementsVerifier(_ *testing.T) {
	var _ Verifier = (Signer)(nil)
}

// mockSigner is a simple mock implementation for testing the interface contract.
type mockSigner struct {
	signFunc   func(ctx context.Context, message string) ([]byte, error)
	verifyFunc func(ctx context.Context, message string, signature []byte) (bool, error)
}

func (m *mockSigner) Sign(ctx context.Context, message string) ([]byte, error) {
	if m.signFunc != nil {
		return m.signFunc(ctx, message)
	}
	return []byte("mock-signature"), nil
}

func (m *mockSigner) Verify(ctx context.Context, message string, signature []byte) (bool, error) {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, message, signature)
	}
	return true, nil
}

func (m *mockSigner) PublicKey() []byte { return make([]byte, PublicKeySize) }

func TestSignerInterface(t *testing.T) {
	t.Run("Signer can be used as Verifier", func(t *testing.T) {
		signer := &mockSigner{}
		var verifier Verifier = signer

		ok, err := verifier.Verify(context.Background(), "test message", []byte("sig"))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Len(t, verifier.PublicKey(), PublicKeySize)
	})

	t.Run("mismatch is a false result, not an error", func(t *testing.T) {
		signer := &mockSigner{
			verifyFunc: func(_ context.Context, _ string, _ []byte) (bool, error) {
				return false, nil
			},
		}

		ok, err := signer.Verify(context.Background(), "test message", []byte("bad"))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
