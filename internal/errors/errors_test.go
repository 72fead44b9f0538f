package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signeterrors "github.com/mrz1836/signet/internal/errors"
)

// testError is a custom error type used to test default branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrInvalidKeyLength", signeterrors.ErrInvalidKeyLength, "invalid key length"},
		{"ErrInvalidSignatureLength", signeterrors.ErrInvalidSignatureLength, "invalid signature length"},
		{"ErrInvalidEncoding", signeterrors.ErrInvalidEncoding, "invalid base64 encoding"},
		{"ErrHashComputationFailed", signeterrors.ErrHashComputationFailed, "hash computation failed"},
		{"ErrEntropyUnavailable", signeterrors.ErrEntropyUnavailable, "entropy source unavailable"},
		{"ErrKeyMismatch", signeterrors.ErrKeyMismatch, "embedded public key does not match seed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	allErrors := []error{
		signeterrors.ErrInvalidKeyLength,
		signeterrors.ErrInvalidSignatureLength,
		signeterrors.ErrInvalidEncoding,
		signeterrors.ErrHashComputationFailed,
		signeterrors.ErrEntropyUnavailable,
		signeterrors.ErrKeyMismatch,
		signeterrors.ErrSignatureInvalid,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i == j {
				assert.ErrorIs(t, err1, err2, "error should match itself")
			} else {
				assert.NotErrorIs(t, err1, err2, "different errors should not match")
			}
		}
	}
}

func TestWrap_PreservesErrorChain(t *testing.T) {
	wrapped := signeterrors.Wrap(signeterrors.ErrInvalidEncoding, "decoding signature")

	require.ErrorIs(t, wrapped, signeterrors.ErrInvalidEncoding)
	assert.Equal(t, "decoding signature: invalid base64 encoding", wrapped.Error())
}

func TestWrap_NilError(t *testing.T) {
	assert.NoError(t, signeterrors.Wrap(nil, "should not appear"))
	assert.NoError(t, signeterrors.Wrapf(nil, "should not appear %d", 1))
}

func TestWrap_MultipleWraps(t *testing.T) {
	wrapped1 := signeterrors.Wrap(signeterrors.ErrInvalidKeyLength, "first wrap")
	wrapped2 := signeterrors.Wrap(wrapped1, "second wrap")

	require.ErrorIs(t, wrapped2, signeterrors.ErrInvalidKeyLength)
	assert.Equal(t, "second wrap: first wrap: invalid key length", wrapped2.Error())
}

func TestWrapf_MessageFormat(t *testing.T) {
	wrapped := signeterrors.Wrapf(signeterrors.ErrInvalidKeyLength, "private key: want %d bytes, got %d", 64, 10)
	require.ErrorIs(t, wrapped, signeterrors.ErrInvalidKeyLength)
	assert.Equal(t, "private key: want 64 bytes, got 10: invalid key length", wrapped.Error())
}

func TestJoin(t *testing.T) {
	t.Run("both sentinel and cause match", func(t *testing.T) {
		err := signeterrors.Join(signeterrors.ErrHashComputationFailed, context.Canceled)

		require.ErrorIs(t, err, signeterrors.ErrHashComputationFailed)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, "hash computation failed: context canceled", err.Error())
	})

	t.Run("nil cause returns sentinel", func(t *testing.T) {
		err := signeterrors.Join(signeterrors.ErrHashComputationFailed, nil)
		assert.Equal(t, signeterrors.ErrHashComputationFailed, err)
	})
}

func TestIsInputError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"key length", signeterrors.ErrInvalidKeyLength, true},
		{"signature length", fmt.Errorf("verify: %w", signeterrors.ErrInvalidSignatureLength), true},
		{"encoding", signeterrors.ErrInvalidEncoding, true},
		{"key mismatch", signeterrors.ErrKeyMismatch, true},
		{"hash failure", signeterrors.ErrHashComputationFailed, false},
		{"nil", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, signeterrors.IsInputError(tc.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	t.Run("sentinel", func(t *testing.T) {
		assert.Equal(t, "The value is not valid base64.", signeterrors.UserMessage(signeterrors.ErrInvalidEncoding))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := signeterrors.Wrap(signeterrors.ErrInvalidSignatureLength, "verify")
		assert.Equal(t, "The signature has the wrong length.", signeterrors.UserMessage(err))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, signeterrors.UserMessage(nil))
	})

	t.Run("unknown error keeps its message", func(t *testing.T) {
		assert.Equal(t, "something odd", signeterrors.UserMessage(testError{msg: "something odd"}))
	})
}

func TestActionable(t *testing.T) {
	msg, action := signeterrors.Actionable(signeterrors.ErrInvalidKeyLength)
	assert.Equal(t, "The key has the wrong length.", msg)
	assert.Contains(t, action, "64 bytes")

	msg, action = signeterrors.Actionable(signeterrors.ErrSignatureInvalid)
	assert.NotEmpty(t, msg)
	assert.Empty(t, action)

	msg, action = signeterrors.Actionable(nil)
	assert.Empty(t, msg)
	assert.Empty(t, action)

	msg, action = signeterrors.Actionable(testError{msg: "custom"})
	assert.Equal(t, "custom", msg)
	assert.Empty(t, action)
}

func TestExitCode2Error(t *testing.T) {
	inner := signeterrors.ErrInvalidOutputFormat
	exitErr := signeterrors.NewExitCode2Error(inner)

	assert.Equal(t, inner.Error(), exitErr.Error())
	require.ErrorIs(t, exitErr, inner)
	assert.True(t, signeterrors.IsExitCode2Error(exitErr))
	assert.True(t, signeterrors.IsExitCode2Error(fmt.Errorf("wrapped: %w", exitErr)))
	assert.False(t, signeterrors.IsExitCode2Error(inner))
	assert.False(t, signeterrors.IsExitCode2Error(nil))
}
