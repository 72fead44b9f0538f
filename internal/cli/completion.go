package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/signet/internal/errors"
)

// Sentinel errors for the completion command.
var (
	errUnsupportedShell = stderrors.New("unsupported shell")
	errNoShellDetected  = stderrors.New("could not detect shell from $SHELL; pass the shell name")
)

// completionGenerators maps shell names to cobra's script generators.
//
//nolint:gochecknoglobals // Static table
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	},
	"zsh": func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	},
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// AddCompletionCommand replaces cobra's default completion command with one
// that can detect the shell from $SHELL.
func AddCompletionCommand(root *cobra.Command) {
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(&cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate shell completions",
		Long: `Generate a shell completion script for signet.

Supported shells: ` + strings.Join(supportedShells(), ", ") + `. Without an argument
the shell is taken from $SHELL.

Examples:
  source <(signet completion bash)
  signet completion zsh > ~/.zsh/completions/_signet
  signet completion fish | source`,
		Args:                  cobra.MaximumNArgs(1),
		ValidArgs:             supportedShells(),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) == 1 {
				shell = args[0]
			}
			return runCompletion(cmd, shell)
		},
	})
}

func runCompletion(cmd *cobra.Command, shell string) error {
	if shell == "" {
		shell = detectShell()
		if shell == "" {
			return errors.NewExitCode2Error(errNoShellDetected)
		}
	}

	generate, ok := completionGenerators[shell]
	if !ok {
		return errors.NewExitCode2Error(fmt.Errorf("%s (supported: %s): %w",
			shell, strings.Join(supportedShells(), ", "), errUnsupportedShell))
	}
	return generate(cmd.Root(), cmd.OutOrStdout())
}

// detectShell returns the supported shell named by $SHELL, or "".
func detectShell() string {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return ""
	}
	name := filepath.Base(shellPath)
	if _, ok := completionGenerators[name]; ok {
		return name
	}
	return ""
}

func supportedShells() []string {
	names := make([]string, 0, len(completionGenerators))
	for name := range completionGenerators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
