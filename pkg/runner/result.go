package runner

import (
	"errors"

	"github.com/yaklabco/styledid/pkg/fix"
	"github.com/yaklabco/styledid/pkg/styled"
)

// Sentinel errors for per-file failures, matched with errors.Is.
var (
	// ErrFileNotFound indicates a path that does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a file that could not be read or written.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates the rewritten output could not be stored.
	ErrWriteFailure = errors.New("write failed")

	// ErrConcurrentModification indicates the file changed on disk between
	// reading and writing; the write is abandoned.
	ErrConcurrentModification = errors.New("file modified during processing")
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// RelPath is Path relative to the run's working directory.
	RelPath string

	// Result is the rewrite result. Nil when the file was skipped or failed
	// before transformation.
	Result *styled.Result

	// Diff is set in ModeDiff when the file changed.
	Diff *fix.Diff

	// Written is set when output was stored; WrittenTo names the destination.
	Written   bool
	WrittenTo string

	// Backup is the backup path created before an in-place write.
	Backup string

	// Skipped is set when the plugin declined the path.
	Skipped bool

	// Error is set if the file could not be processed.
	Error error
}

// Changed reports whether the file's output differs from its input.
func (o FileOutcome) Changed() bool {
	return o.Result.Changed()
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesProcessed  int `json:"filesProcessed"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	FilesChanged    int `json:"filesChanged"`
	FilesWritten    int `json:"filesWritten"`
	ParseFailures   int `json:"parseFailures"`
	SitesTotal      int `json:"sitesTotal"`
	SitesSkipped    int `json:"sitesSkipped"`
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasChanges reports whether any file would change or did change.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.Skipped:
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Written {
		r.Stats.FilesWritten++
	}

	res := outcome.Result
	if res == nil {
		return
	}
	if res.ParseFailed {
		r.Stats.ParseFailures++
	}
	if res.Changed() {
		r.Stats.FilesChanged++
	}
	r.Stats.SitesTotal += len(res.Sites)
	r.Stats.SitesSkipped += len(res.Skipped)
}
