package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/signet/internal/digest"
)

// hashEntry pairs a message with its digest.
type hashEntry struct {
	Message string `json:"message"`
	Digest  string `json:"digest"`
}

// hashResponse is the JSON result of 'signet hash'.
type hashResponse struct {
	Algorithm string      `json:"algorithm,omitempty"`
	Digests   []hashEntry `json:"digests"`
}

// AddHashCommand adds the hash command to the root command.
func AddHashCommand(root *cobra.Command, a *app) {
	root.AddCommand(newHashCmd(a))
}

func newHashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <message>...",
		Short: "Print the SHA-256 digest of each message",
		Long: `Print the SHA-256 digest of each message's UTF-8 bytes as 64 lowercase
hex characters, one per line in argument order.

Messages are hashed concurrently. If any digest fails, nothing is printed and
the first failure is reported. digest.timeout bounds the whole batch.

Examples:
  signet hash "Hello"
  signet hash "first" "second" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd, a, args)
		},
	}
}

func runHash(cmd *cobra.Command, a *app, messages []string) error {
	out := a.output(cmd)

	provider, err := a.digestProvider()
	if err != nil {
		return out.Fail(err)
	}

	ctx, cancel := a.digestContext(cmd.Context())
	defer cancel()

	sums, err := digest.HashAll(ctx, provider, messages)
	if err != nil {
		return out.Fail(fmt.Errorf("hash: %w", err))
	}

	zerolog.Ctx(ctx).Debug().Int("messages", len(messages)).Msg("messages hashed")

	resp := hashResponse{
		Algorithm: digest.ProviderName(provider),
		Digests:   make([]hashEntry, len(messages)),
	}
	for i, msg := range messages {
		resp.Digests[i] = hashEntry{Message: msg, Digest: sums[i]}
	}

	return out.Emit(resp, func(w io.Writer) {
		for _, e := range resp.Digests {
			_, _ = fmt.Fprintln(w, e.Digest)
		}
	})
}
