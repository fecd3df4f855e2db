// Package main is the entry point for the styledid CLI.
package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/yaklabco/styledid/internal/cli"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(info.String()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			// The reporter has already explained check failures.
			if cli.IsSilent(err) {
				return
			}
			fang.DefaultErrorHandler(w, styles, err)
		}),
	)
	return cli.ExitCode(err)
}
