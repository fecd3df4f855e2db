package cli

import (
	"errors"

	"github.com/yaklabco/styledid/pkg/runner"
)

// Exit codes for styledid.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitChanges indicates --check found files that would be rewritten.
	ExitChanges = 1

	// ExitFileErrors indicates one or more files could not be processed.
	ExitFileErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

var (
	// ErrChangesFound is returned by --check when some file would change.
	ErrChangesFound = errors.New("files would be rewritten")

	// ErrFilesFailed is returned when some files could not be processed.
	ErrFilesFailed = errors.New("some files could not be processed")

	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("invalid configuration")

	// ErrUsage wraps invalid flag combinations.
	ErrUsage = errors.New("invalid usage")
)

// ExitCodeFromResult determines the exit code for a finished run. File
// errors take precedence over pending changes.
func ExitCodeFromResult(result *runner.Result, check bool) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasErrors() {
		return ExitFileErrors
	}
	if check && result.HasChanges() {
		return ExitChanges
	}
	return ExitSuccess
}

// errorForCode returns the sentinel matching an exit code from
// ExitCodeFromResult, or nil for ExitSuccess.
func errorForCode(code int) error {
	switch code {
	case ExitChanges:
		return ErrChangesFound
	case ExitFileErrors:
		return ErrFilesFailed
	default:
		return nil
	}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesFound):
		return ExitChanges
	case errors.Is(err, ErrFilesFailed):
		return ExitFileErrors
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}

// IsSilent reports whether err only carries an exit status whose cause was
// already shown by the reporter.
func IsSilent(err error) bool {
	return errors.Is(err, ErrChangesFound) || errors.Is(err, ErrFilesFailed)
}
