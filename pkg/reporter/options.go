package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/styledid/pkg/analysis"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSites lists every rewritten call site in text output. When false
	// only files with problems are listed.
	ShowSites bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses compact/minified output where applicable.
	Compact bool

	// SortBy orders the summary tables.
	SortBy analysis.SortField

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		ShowSites:   true,
		ShowSummary: true,
		Compact:     false,
		SortBy:      analysis.SortByCount,
	}
}

func (o Options) analysisOptions() analysis.Options {
	sortBy := o.SortBy
	if sortBy == "" {
		sortBy = analysis.SortByCount
	}
	return analysis.Options{
		IncludeSites:  true,
		IncludeByFile: true,
		IncludeByName: true,
		SortBy:        sortBy,
		SortDesc:      true,
		WorkingDir:    o.WorkingDir,
	}
}
