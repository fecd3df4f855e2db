// Package runner transforms many files concurrently: it discovers sources,
// feeds them through a worker pool to the styled plugin, and writes, diffs
// or merely reports the results depending on the run mode.
package runner

import (
	"github.com/yaklabco/styledid/pkg/fsutil"
)

// Mode selects what happens to a transformed file.
type Mode string

const (
	// ModeCheck only reports which files would change.
	ModeCheck Mode = "check"

	// ModeDiff computes a unified diff per changed file.
	ModeDiff Mode = "diff"

	// ModeWrite rewrites changed files in place.
	ModeWrite Mode = "write"

	// ModeOutDir writes every processed file under OutDir, mirroring its
	// position relative to WorkingDir.
	ModeOutDir Mode = "out-dir"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// glob patterns. If empty, the process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered sources. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns, relative to WorkingDir, used to skip
	// files or directories. "**" crosses directory boundaries.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Mode selects the per-file action. Empty means ModeCheck.
	Mode Mode

	// OutDir is the output root for ModeOutDir.
	OutDir string

	// Backups controls sidecar backups in ModeWrite.
	Backups fsutil.BackupConfig
}

// DefaultExtensions returns the default set of source file extensions.
func DefaultExtensions() []string {
	return []string{".js", ".jsx", ".ts", ".tsx"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) effectiveMode() Mode {
	if o.Mode == "" {
		return ModeCheck
	}
	return o.Mode
}
