// Package main provides the entry point for the signet CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/signet/internal/cli"
	"github.com/mrz1836/signet/internal/signal"
)

// Set at build time via -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "" //nolint:gochecknoglobals // ldflags target
	commit  = "" //nolint:gochecknoglobals // ldflags target
	date    = "" //nolint:gochecknoglobals // ldflags target
)

func main() {
	os.Exit(run())
}

func run() int {
	h := signal.NewHandler(context.Background())
	defer h.Stop()
	defer cli.CloseLogFile()

	err := cli.Execute(h.Context(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if code := h.ExitCode(); code != 0 {
		return code
	}
	return cli.ExitCodeForError(err)
}
