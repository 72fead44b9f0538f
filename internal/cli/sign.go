package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/signet/internal/constants"
	"github.com/mrz1836/signet/internal/crypto/native"
	"github.com/mrz1836/signet/internal/digest"
	"github.com/mrz1836/signet/internal/encoding"
	"github.com/mrz1836/signet/internal/errors"
	"github.com/mrz1836/signet/internal/keys"
	"github.com/mrz1836/signet/internal/logging"
)

// Where a private key was read from.
const (
	keySourceFlag = "flag"
	keySourceEnv  = "env"
)

// signResponse is the JSON result of 'signet sign'.
type signResponse struct {
	Message     string `json:"message"`
	Digest      string `json:"digest"`
	Signature   string `json:"signature"`
	PublicKey   string `json:"public_key"`
	Fingerprint string `json:"fingerprint"`
}

// AddSignCommand adds the sign command to the root command.
func AddSignCommand(root *cobra.Command, a *app) {
	root.AddCommand(newSignCmd(a))
}

func newSignCmd(a *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with a private key",
		Long: `Sign the UTF-8 bytes of a message with an Ed25519 private key.

The private key is the 64-byte base64 value printed by 'signet keygen'. It is
read from --key, or from the ` + constants.PrivateKeyEnvVar + ` environment variable
so that it does not appear in the shell history.

The SHA-256 digest of the message is printed alongside the signature for
display. The signature covers the message itself, not the digest.

Examples:
  signet sign --key <private key> "Hello"
  ` + constants.PrivateKeyEnvVar + `=<private key> signet sign "Hello"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSign(cmd, a, key, args[0])
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "base64 private key (default $"+constants.PrivateKeyEnvVar+")")

	return cmd
}

func runSign(cmd *cobra.Command, a *app, keyFlag, message string) error {
	out := a.output(cmd)

	encoded, source := privateKeyInput(keyFlag)
	logKeyInput(zerolog.Ctx(cmd.Context()), source, encoded)

	priv, err := decodePrivateKey(encoded)
	if err != nil {
		return out.Fail(errors.NewExitCode2Error(err))
	}

	signer, err := native.NewSignerFromPrivateKey(priv)
	clear(priv)
	if err != nil {
		return out.Fail(errors.NewExitCode2Error(errors.Wrap(err, "private key")))
	}

	provider, err := a.digestProvider()
	if err != nil {
		return out.Fail(err)
	}

	ctx, cancel := a.digestContext(cmd.Context())
	defer cancel()

	sum, err := digest.Hash(ctx, provider, message)
	if err != nil {
		return out.Fail(fmt.Errorf("sign: %w", err))
	}

	sig, err := signer.Sign(ctx, message)
	if err != nil {
		return out.Fail(fmt.Errorf("sign: %w", err))
	}

	resp := signResponse{
		Message:     message,
		Digest:      sum,
		Signature:   encoding.Encode(sig),
		PublicKey:   encoding.Encode(signer.PublicKey()),
		Fingerprint: signer.Fingerprint(),
	}

	return out.Emit(resp, func(w io.Writer) {
		printField(w, "digest", resp.Digest)
		printField(w, "signature", resp.Signature)
		printField(w, "public key", resp.PublicKey)
		printField(w, "fingerprint", resp.Fingerprint)
	})
}

// privateKeyInput returns the encoded private key from the flag value,
// falling back to the environment, and where it came from.
func privateKeyInput(keyFlag string) (encoded, source string) {
	if keyFlag != "" {
		return keyFlag, keySourceFlag
	}
	return os.Getenv(constants.PrivateKeyEnvVar), keySourceEnv
}

// logKeyInput records where the private key came from. The key itself is
// always redacted.
func logKeyInput(logger *zerolog.Logger, source, encoded string) {
	logger.Debug().
		Str("key_source", source).
		Int("key_chars", len(encoded)).
		Str("private_key", logging.RedactIfSensitive("private_key", encoded)).
		Msg("private key input")
}

// decodePrivateKey decodes a base64 64-byte private key.
func decodePrivateKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, errors.Wrapf(errors.ErrEmptyValue,
			"private key: pass --key or set %s", constants.PrivateKeyEnvVar)
	}

	priv, err := encoding.DecodeSized(encoded, keys.PrivateKeySize, errors.ErrInvalidKeyLength)
	if err != nil {
		return nil, errors.Wrap(err, "private key")
	}
	return priv, nil
}
