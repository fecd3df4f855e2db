// Package cli provides the Cobra command structure for styledid.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/styledid/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String formats the version for --version output.
func (b BuildInfo) String() string {
	if b.Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, b.Commit, b.Date)
}

// NewRootCommand creates the root styledid command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "styledid",
		Short: "Stable componentIds and displayNames for styled-components",
		Long: `styledid rewrites styled-components declarations in JavaScript and
TypeScript sources so that each component carries a deterministic
componentId and a human-readable displayName.

Component ids are derived from the package name and the file's path inside
its package, so server and client builds agree on class names and snapshots
stay stable across machines.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newTransformCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
