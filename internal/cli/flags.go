package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/signet/internal/config"
	"github.com/mrz1836/signet/internal/constants"
	"github.com/mrz1836/signet/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error, including a signature that does not verify.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input: bad flags, bad base64, wrong lengths.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = constants.OutputText
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = constants.OutputJSON
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Output specifies the output format (text or json).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds the logging flags to Viper so they can also be set
// from the environment (SIGNET_VERBOSE, SIGNET_QUIET), then copies the
// effective values back into flags.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command, flags *GlobalFlags) error {
	// Root().PersistentFlags() finds flags defined on the root command
	// even when called from a subcommand.
	rootFlags := cmd.Root().PersistentFlags()

	if err := v.BindPFlag("verbose", rootFlags.Lookup("verbose")); err != nil {
		return err
	}
	if err := v.BindPFlag("quiet", rootFlags.Lookup("quiet")); err != nil {
		return err
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	flags.Verbose = v.GetBool("verbose")
	flags.Quiet = v.GetBool("quiet") && !flags.Verbose
	return nil
}

// resolveOutputFormat picks the output format: an explicit --output wins,
// otherwise output.format from configuration (which already reflects
// SIGNET_OUTPUT_FORMAT and the config files).
func resolveOutputFormat(cmd *cobra.Command, flags *GlobalFlags, cfg *config.Config) string {
	if f := cmd.Root().PersistentFlags().Lookup("output"); f != nil && f.Changed {
		return flags.Output
	}
	if cfg != nil && cfg.Output.Format != "" {
		return cfg.Output.Format
	}
	return flags.Output
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, ExitInvalidInput (2) for user input
// errors (invalid flags, malformed keys or signatures), and ExitError (1) for
// all other errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.IsExitCode2Error(err) {
		return ExitInvalidInput
	}

	if errors.IsInputError(err) ||
		stderrors.Is(err, errors.ErrInvalidOutputFormat) ||
		stderrors.Is(err, errors.ErrEmptyValue) {
		return ExitInvalidInput
	}

	// Cobra flag parsing errors (mutually exclusive flags, unknown flags, etc.)
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

// isInvalidInputError checks if an error message indicates invalid user input.
// This catches Cobra's built-in flag and argument validation errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
		"accepts ",
		"requires at least",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
