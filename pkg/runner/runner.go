package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/styledid/pkg/styled"
)

// Runner orchestrates multi-file transformation with a styled.Plugin.
// A Runner is safe for concurrent use; the watcher calls ProcessFiles while
// a previous batch may still be reporting.
type Runner struct {
	plugin *styled.Plugin
}

// New creates a Runner around plugin.
func New(plugin *styled.Plugin) *Runner {
	return &Runner{plugin: plugin}
}

// Plugin returns the plugin the runner transforms with.
func (r *Runner) Plugin() *styled.Plugin {
	return r.plugin
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are ordered by path. Per-file failures are reported in the
// result; the returned error is reserved for discovery failures and
// cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	return r.ProcessFiles(ctx, files, opts)
}

// ProcessFiles transforms the given absolute paths without discovery.
func (r *Runner) ProcessFiles(ctx context.Context, files []string, opts Options) (*Result, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	if opts.effectiveMode() == ModeOutDir && opts.OutDir == "" {
		return nil, fmt.Errorf("mode %s requires an output directory", ModeOutDir)
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan int)
	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))

	var group errgroup.Group
	for range jobs {
		group.Go(func() error {
			for i := range workCh {
				outcomes[i] = r.processFile(ctx, files[i], opts, workDir)
				done[i] = true
			}
			return nil
		})
	}

	group.Go(func() error {
		defer close(workCh)
		for i := range files {
			select {
			case <-ctx.Done():
				return nil
			case workCh <- i:
			}
		}
		return nil
	})

	_ = group.Wait()

	for i := range files {
		if done[i] {
			result.accumulate(outcomes[i])
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

func relTo(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
