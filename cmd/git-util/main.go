// Package main provides the entry point for the git-util CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/git-util/internal/cli"
	"github.com/mrz1836/git-util/internal/signal"
)

// Set at build time via ldflags.
//
//nolint:gochecknoglobals // ldflags targets
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	h := signal.NewHandler(context.Background())
	defer h.Stop()
	defer cli.CloseLogFile()

	err := cli.Execute(h.Context(), cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if code := h.ExitCode(); code != 0 {
		return code
	}
	return cli.ExitCodeForError(err)
}
