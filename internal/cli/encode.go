package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/signet/internal/encoding"
	"github.com/mrz1836/signet/internal/errors"
)

// codecResponse is the JSON result of 'signet encode' and 'signet decode'.
type codecResponse struct {
	Text   string `json:"text"`
	Base64 string `json:"base64"`
}

// AddEncodeCommands adds the encode and decode commands to the root command.
func AddEncodeCommands(root *cobra.Command, a *app) {
	root.AddCommand(newEncodeCmd(a), newDecodeCmd(a))
}

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode UTF-8 text as standard base64",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := codecResponse{Text: args[0], Base64: encoding.Encode([]byte(args[0]))}
			return a.output(cmd).Emit(resp, func(w io.Writer) {
				_, _ = fmt.Fprintln(w, resp.Base64)
			})
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <base64>",
		Short: "Decode standard base64 to text",
		Long: `Decode standard padded base64. Whitespace, line breaks, URL-safe
characters and missing padding are rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.output(cmd)

			b, err := encoding.Decode(args[0])
			if err != nil {
				return out.Fail(errors.NewExitCode2Error(err))
			}

			resp := codecResponse{Text: string(b), Base64: args[0]}
			return out.Emit(resp, func(w io.Writer) {
				_, _ = fmt.Fprintln(w, resp.Text)
			})
		},
	}
}
