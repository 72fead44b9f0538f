package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/signet/internal/config"
	"github.com/mrz1836/signet/internal/logging"
)

// logFileWriter holds the log file writer so it can be closed on shutdown.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// logFileMu protects logFileWriter.
var logFileMu sync.Mutex //nolint:gochecknoglobals // Protects logFileWriter

// InitLogger creates and configures a zerolog.Logger based on verbosity flags
// and the log section of the configuration.
//
// Log levels are set as follows:
//   - verbose=true: Debug level (most detailed)
//   - quiet=true: Warn level (errors and warnings only)
//   - default: Info level (normal operation)
//
// Console output is a human-readable writer on a TTY and JSON on stderr
// otherwise. When logCfg.File is set, entries are also written to
// ~/.signet/logs/signet.log with rotation. If the log file cannot be
// created, the logger continues with console-only output.
//
// Every entry passes through the sensitive data hook, and both the console
// and the file copy through a filtering writer, so key material is redacted
// on every sink.
func InitLogger(verbose, quiet bool, logCfg config.LogConfig) zerolog.Logger {
	console := selectOutput()

	var writer io.Writer = console
	if logCfg.File {
		if fw, err := createLogFileWriter(logCfg); err == nil {
			setLogFileWriter(fw)
			writer = zerolog.MultiLevelWriter(console, fw)
		}
	}

	return buildLogger(writer, selectLevel(verbose, quiet))
}

// InitLoggerWithWriter creates and configures a zerolog.Logger with a custom writer.
// This is primarily intended for testing purposes.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	return buildLogger(w, selectLevel(verbose, quiet))
}

func buildLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		Hook(logging.NewSensitiveDataHook()).
		With().Timestamp().
		Logger()
}

func setLogFileWriter(w io.WriteCloser) {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
	}
	logFileWriter = w
}

// CloseLogFile closes the log file writer if it was opened.
// This should be called during application shutdown.
func CloseLogFile() {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

// selectLevel determines the appropriate log level based on flags.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectOutput determines the console writer based on terminal
// capabilities and NO_COLOR.
func selectOutput() io.Writer {
	pretty := term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == ""
	return consoleWriter(os.Stderr, pretty)
}

// consoleWriter returns a redacting writer on out: human-readable when
// pretty is set, raw JSON lines otherwise. Redaction runs on the JSON line,
// before the console writer adds colors.
func consoleWriter(out io.Writer, pretty bool) io.Writer {
	if pretty {
		return logging.NewFilteringWriter(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
		})
	}
	return logging.NewFilteringWriter(out)
}

// filteringWriteCloser wraps a WriteCloser with sensitive data filtering.
type filteringWriteCloser struct {
	filter *logging.FilteringWriter
	closer io.Closer
}

// Write implements io.Writer by delegating to the filtering writer.
func (fwc *filteringWriteCloser) Write(p []byte) (n int, err error) {
	return fwc.filter.Write(p)
}

// Close implements io.Closer by delegating to the underlying closer.
func (fwc *filteringWriteCloser) Close() error {
	return fwc.closer.Close()
}

// createLogFileWriter creates the rotating file writer for the CLI log,
// wrapped with a filtering writer.
func createLogFileWriter(logCfg config.LogConfig) (io.WriteCloser, error) {
	logPath, err := config.LogFilePath()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logCfg.MaxSizeMB,
		MaxBackups: logCfg.MaxBackups,
		MaxAge:     logCfg.MaxAgeDays,
		Compress:   logCfg.Compress,
	}

	return &filteringWriteCloser{
		filter: logging.NewFilteringWriter(lj),
		closer: lj,
	}, nil
}
