// Package cli provides the command-line interface for signet.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/signet/internal/config"
	"github.com/mrz1836/signet/internal/digest"
	"github.com/mrz1836/signet/internal/errors"
	"github.com/mrz1836/signet/internal/keys"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// Deps holds the injectable collaborators of the command tree.
// Zero values select the production implementations.
type Deps struct {
	// Entropy feeds key generation. Defaults to keys.SystemEntropy().
	Entropy keys.EntropySource
	// Digest overrides the provider named by digest.provider in configuration.
	Digest digest.Provider
}

// globalLogger stores the initialized logger for use by subcommands.
// It is set during PersistentPreRunE and should be accessed via GetLogger.
var (
	globalLogger   = zerolog.Nop() //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex    //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// Until the root command's PersistentPreRunE has run it returns a logger
// that discards output.
// Commands log through zerolog.Ctx(cmd.Context()), which carries the same
// logger; Execute reads it after the command context is gone.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// app is the per-invocation state shared by all subcommands.
type app struct {
	flags  *GlobalFlags
	deps   Deps
	cfg    *config.Config
	format string
}

// output returns a result writer for cmd in the resolved output format.
func (a *app) output(cmd *cobra.Command) *commandOutput {
	return newOutput(cmd.OutOrStdout(), a.format)
}

// entropy returns the key generation entropy source.
func (a *app) entropy() keys.EntropySource {
	if a.deps.Entropy != nil {
		return a.deps.Entropy
	}
	return keys.SystemEntropy()
}

// digestProvider returns the injected provider or the one named in configuration.
func (a *app) digestProvider() (digest.Provider, error) {
	if a.deps.Digest != nil {
		return a.deps.Digest, nil
	}
	return digest.ProviderByName(a.cfg.Digest.Provider)
}

// digestContext applies digest.timeout to ctx. A zero timeout leaves ctx as is.
func (a *app) digestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg == nil || a.cfg.Digest.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.Digest.Timeout)
}

// newRootCmd creates the root command for the signet CLI with production dependencies.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	return newRootCmdWithDeps(flags, info, Deps{})
}

// newRootCmdWithDeps creates the root command for the signet CLI.
// This function-based approach avoids package-level command globals,
// which keeps the tree testable.
func newRootCmdWithDeps(flags *GlobalFlags, info BuildInfo, deps Deps) *cobra.Command {
	v := viper.New()
	a := &app{flags: flags, deps: deps}

	cmd := &cobra.Command{
		Use:   "signet",
		Short: "signet - Ed25519 message signing",
		Long: `signet generates Ed25519 keypairs, hashes messages with SHA-256, and
creates and checks detached signatures. Keys and signatures are exchanged as
standard base64 with padding.

Typical flow:
  signet keygen
  signet sign --key <private key> "Hello"
  signet verify --sig <signature> --pub <public key> "Hello"`,
		Version: formatVersion(info),
		// RunE shows help when no subcommand is given, after
		// PersistentPreRunE has validated the flags.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.prepare(cmd, v)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddKeygenCommand(cmd, a)
	AddHashCommand(cmd, a)
	AddSignCommand(cmd, a)
	AddVerifyCommand(cmd, a)
	AddEncodeCommands(cmd, a)
	AddConfigCommand(cmd, a)
	AddCompletionCommand(cmd)

	return cmd
}

// prepare binds flags, loads configuration and installs the logger on the
// command context. It runs before every subcommand.
func (a *app) prepare(cmd *cobra.Command, v *viper.Viper) error {
	if err := BindGlobalFlags(v, cmd, a.flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Configuration is loaded before the file logger exists, so its debug
	// output goes to the console only.
	bootLogger := buildLogger(selectOutput(), selectLevel(a.flags.Verbose, a.flags.Quiet))
	cfg, err := config.Load(bootLogger.WithContext(ctx))
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.format = resolveOutputFormat(cmd, a.flags, cfg)
	if !IsValidOutputFormat(a.format) {
		return errors.NewExitCode2Error(fmt.Errorf("%w: %q must be one of %v",
			errors.ErrInvalidOutputFormat, a.format, ValidOutputFormats()))
	}

	logger := InitLogger(a.flags.Verbose, a.flags.Quiet, cfg.Log)
	globalLoggerMu.Lock()
	globalLogger = logger
	globalLoggerMu.Unlock()

	cmd.SetContext(logger.WithContext(ctx))
	return nil
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// reportError prints err with its user-facing hint. Errors already written
// as JSON, and a signature that simply did not verify, are not repeated.
func reportError(w io.Writer, err error) {
	if err == nil ||
		stderrors.Is(err, errors.ErrJSONErrorOutput) ||
		stderrors.Is(err, errors.ErrSignatureInvalid) {
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
	if _, action := errors.Actionable(err); action != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", action)
	}
}

// Execute runs the root command with the provided context and build info.
// The returned error is meant for ExitCodeForError; it has already been
// reported to stderr.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	err := cmd.ExecuteContext(ctx)
	logCommandFailure(GetLogger(), err)
	reportError(cmd.ErrOrStderr(), err)
	return err
}

// logCommandFailure records a failed command and its exit status at debug
// level. Failures before PersistentPreRunE go to the no-op logger and are
// dropped.
func logCommandFailure(logger zerolog.Logger, err error) {
	if err == nil {
		return
	}
	logger.Debug().Err(err).Int("exit_code", ExitCodeForError(err)).Msg("command failed")
}
