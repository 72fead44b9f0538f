package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/signet/internal/crypto/native"
	"github.com/mrz1836/signet/internal/encoding"
	"github.com/mrz1836/signet/internal/errors"
)

// verifyResponse is the JSON result of 'signet verify'.
type verifyResponse struct {
	Message     string `json:"message"`
	Valid       bool   `json:"valid"`
	Fingerprint string `json:"fingerprint"`
}

// AddVerifyCommand adds the verify command to the root command.
func AddVerifyCommand(root *cobra.Command, a *app) {
	root.AddCommand(newVerifyCmd(a))
}

func newVerifyCmd(a *app) *cobra.Command {
	var sig, pub string

	cmd := &cobra.Command{
		Use:   "verify <message>",
		Short: "Check a detached signature",
		Long: `Check that a base64 signature over the UTF-8 bytes of a message was
made by the private key matching a base64 public key.

Prints "valid" or "invalid". An invalid signature exits with status 1; a
malformed signature or key (bad base64, wrong length) exits with status 2.

Examples:
  signet verify --sig <signature> --pub <public key> "Hello"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, a, sig, pub, args[0])
		},
	}

	cmd.Flags().StringVarP(&sig, "sig", "s", "", "base64 signature")
	cmd.Flags().StringVarP(&pub, "pub", "p", "", "base64 public key")
	_ = cmd.MarkFlagRequired("sig")
	_ = cmd.MarkFlagRequired("pub")

	return cmd
}

func runVerify(cmd *cobra.Command, a *app, sigB64, pubB64, message string) error {
	out := a.output(cmd)

	sig, err := encoding.Decode(sigB64)
	if err != nil {
		return out.Fail(errors.NewExitCode2Error(errors.Wrap(err, "signature")))
	}

	pub, err := encoding.Decode(pubB64)
	if err != nil {
		return out.Fail(errors.NewExitCode2Error(errors.Wrap(err, "public key")))
	}

	verifier, err := native.NewVerifier(pub)
	if err != nil {
		return out.Fail(errors.NewExitCode2Error(err))
	}

	ok, err := verifier.Verify(cmd.Context(), message, sig)
	if err != nil {
		return out.Fail(errors.NewExitCode2Error(err))
	}

	resp := verifyResponse{
		Message:     message,
		Valid:       ok,
		Fingerprint: verifier.Fingerprint(),
	}

	if emitErr := out.Emit(resp, func(w io.Writer) {
		if ok {
			_, _ = fmt.Fprintln(w, "valid")
		} else {
			_, _ = fmt.Fprintln(w, "invalid")
		}
	}); emitErr != nil {
		return emitErr
	}

	if !ok {
		return errors.ErrSignatureInvalid
	}
	return nil
}
