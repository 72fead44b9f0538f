package cli

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/signet/internal/encoding"
	"github.com/mrz1836/signet/internal/keys"
)

// keygenResponse is the JSON result of 'signet keygen'.
type keygenResponse struct {
	PrivateKey  string `json:"private_key"`
	PublicKey   string `json:"public_key"`
	Fingerprint string `json:"fingerprint"`
}

// AddKeygenCommand adds the keygen command to the root command.
func AddKeygenCommand(root *cobra.Command, a *app) {
	root.AddCommand(newKeygenCmd(a))
}

func newKeygenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new Ed25519 keypair",
		Long: `Generate a new Ed25519 keypair from the system random source.

The private key is 64 bytes (seed followed by public key) and the public key
32 bytes, both printed as standard base64. Keep the private key secret; it is
never written to the log.

Examples:
  signet keygen
  signet keygen --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runKeygen(cmd, a)
		},
	}
}

func runKeygen(cmd *cobra.Command, a *app) error {
	out := a.output(cmd)

	kp := keys.Generate(a.entropy())

	resp := keygenResponse{
		PrivateKey:  encoding.Encode(kp.PrivateKeyBytes()),
		PublicKey:   encoding.Encode(kp.PublicKeyBytes()),
		Fingerprint: kp.Fingerprint(),
	}

	zerolog.Ctx(cmd.Context()).Debug().
		Str("fingerprint", resp.Fingerprint).
		Msg("keypair generated")

	return out.Emit(resp, func(w io.Writer) {
		printField(w, "private key", resp.PrivateKey)
		printField(w, "public key", resp.PublicKey)
		printField(w, "fingerprint", resp.Fingerprint)
	})
}
