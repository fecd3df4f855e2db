package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/styledid/internal/logging"
	"github.com/yaklabco/styledid/pkg/fix"
	"github.com/yaklabco/styledid/pkg/fsutil"
)

// processFile runs one file through read, transform and the mode's output
// step. Failures are reported in the outcome, never returned.
func (r *Runner) processFile(ctx context.Context, path string, opts Options, workDir string) FileOutcome {
	outcome := FileOutcome{Path: path, RelPath: relTo(workDir, path)}
	logger := logging.FromContext(ctx).With(logging.FieldPath, outcome.RelPath)

	if !r.plugin.ShouldProcess(path) {
		outcome.Skipped = true
		return outcome
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = categorize(err)
		return outcome
	}

	result, err := r.plugin.Transform(ctx, path, content)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Result = result

	if result.ParseFailed {
		logger.Debug("passing through unparsable file", logging.FieldDialect, result.Dialect)
	}
	for _, skipped := range result.Skipped {
		logger.Debug("left call site untouched", logging.FieldLine, skipped.Line, logging.FieldReason, skipped.Reason())
	}

	switch opts.effectiveMode() {
	case ModeCheck:
	case ModeDiff:
		outcome.Diff = fix.Unified(outcome.RelPath, content, result.Output)
	case ModeWrite:
		if result.Changed() {
			outcome.Error = r.writeInPlace(ctx, &outcome, info, result.Output, opts)
		}
	case ModeOutDir:
		dest, err := fsutil.WriteMirrored(ctx, workDir, opts.OutDir, path, result.Output, info.Mode.Perm())
		if err != nil {
			outcome.Error = fmt.Errorf("%w: %s: %w", ErrWriteFailure, outcome.RelPath, err)
			break
		}
		outcome.Written, outcome.WrittenTo = true, dest
	default:
		outcome.Error = fmt.Errorf("unknown mode %q", opts.Mode)
	}

	if outcome.Written {
		logger.Debug("wrote file", logging.FieldOutput, outcome.WrittenTo, logging.FieldSites, len(result.Sites))
	}
	return outcome
}

func (r *Runner) writeInPlace(ctx context.Context, outcome *FileOutcome, info *fsutil.FileInfo, output []byte, opts Options) error {
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return categorize(err)
	}
	if modified {
		return fmt.Errorf("%w: %s", ErrConcurrentModification, outcome.RelPath)
	}

	backup, err := fsutil.CreateBackup(ctx, outcome.Path, opts.Backups)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, outcome.RelPath, err)
	}
	outcome.Backup = backup

	if err := fsutil.WriteAtomic(ctx, outcome.Path, output, info.Mode.Perm()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, outcome.RelPath, err)
	}
	outcome.Written, outcome.WrittenTo = true, outcome.Path
	return nil
}

// categorize maps filesystem errors onto the runner's sentinels.
func categorize(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
