package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	signeterrors "github.com/mrz1836/signet/internal/errors"
)

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidOutputFormat("text"))
	assert.True(t, IsValidOutputFormat("json"))
	assert.False(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat(""))
	assert.Equal(t, []string{"text", "json"}, ValidOutputFormats())
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"exit code 2 wrapper", signeterrors.NewExitCode2Error(fmt.Errorf("boom")), ExitInvalidInput},
		{"invalid output format", signeterrors.ErrInvalidOutputFormat, ExitInvalidInput},
		{"bad base64", signeterrors.Wrap(signeterrors.ErrInvalidEncoding, "signature"), ExitInvalidInput},
		{"bad key length", signeterrors.ErrInvalidKeyLength, ExitInvalidInput},
		{"bad signature length", signeterrors.ErrInvalidSignatureLength, ExitInvalidInput},
		{"key mismatch", signeterrors.ErrKeyMismatch, ExitInvalidInput},
		{"missing value", signeterrors.ErrEmptyValue, ExitInvalidInput},
		{"unknown flag", fmt.Errorf("unknown flag: --nope"), ExitInvalidInput},
		{"wrong arg count", fmt.Errorf("accepts 1 arg(s), received 0"), ExitInvalidInput},
		{"missing args", fmt.Errorf("requires at least 1 arg(s), only received 0"), ExitInvalidInput},
		{"required flag", fmt.Errorf(`required flag(s) "pub" not set`), ExitInvalidInput},
		{"signature did not verify", signeterrors.ErrSignatureInvalid, ExitError},
		{"hash failure", signeterrors.Join(signeterrors.ErrHashComputationFailed, context.Canceled), ExitError},
		{"unknown provider", signeterrors.ErrUnknownDigestProvider, ExitError},
		{"json wrapped input error", fmt.Errorf("%w: %w", signeterrors.ErrJSONErrorOutput,
			signeterrors.NewExitCode2Error(signeterrors.ErrInvalidEncoding)), ExitInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
