package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/styledid/internal/logging"
	"github.com/yaklabco/styledid/pkg/config"
	"github.com/yaklabco/styledid/pkg/reporter"
	"github.com/yaklabco/styledid/pkg/runner"
	"github.com/yaklabco/styledid/pkg/watch"
)

type watchFlags struct {
	rewrite  rewriteFlags
	format   string
	debounce time.Duration
}

func newWatchCommand() *cobra.Command {
	var cfg config.Config
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Transform sources again whenever they change",
		Long: `Watch a directory tree and re-run the transform for every source file
that is created or modified.

Rewriting files in place is not supported while watching, since each save
would trigger another rewrite of the same file. Write into a separate tree
with --out-dir, or review changes with --format diff.

Examples:
  styledid watch src --out-dir build/src
  styledid watch --format diff`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&cfg.OutDir, "out-dir", "o", "", "write transformed files under this directory")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, table, json, diff, summary")
	cmd.Flags().DurationVar(&flags.debounce, "debounce", watch.DefaultDebounce, "quiet period before changes are processed")
	addRewriteFlags(cmd, &flags.rewrite)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, cfg *config.Config, flags *watchFlags) error {
	if err := formatFlag(cmd, flags.format, cfg); err != nil {
		return err
	}
	flags.rewrite.apply(cmd, cfg)

	sess, err := loadSession(cmd, cfg)
	if err != nil {
		return err
	}
	format := reporter.Format(sess.cfg.Format)

	mode, err := selectMode(sess.cfg, format)
	if err != nil {
		return err
	}

	baseDir := sess.workDir
	if len(args) == 1 {
		baseDir = args[0]
	}

	opts, err := sess.runOptions([]string{baseDir}, mode)
	if err != nil {
		return err
	}
	rep, err := sess.newReporter(cmd, format, false)
	if err != nil {
		return err
	}

	// Initial pass over the whole tree.
	result, err := sess.runner.Run(sess.ctx, opts)
	if err != nil {
		return fmt.Errorf("initial transform failed: %w", err)
	}
	if _, err := rep.Report(sess.ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	var ignoreDirs []string
	if opts.OutDir != "" {
		ignoreDirs = append(ignoreDirs, opts.OutDir)
	}

	watcher, err := watch.New(watch.Config{
		BaseDir:    baseDir,
		Extensions: runner.DefaultExtensions(),
		Ignore:     sess.cfg.Ignore,
		IgnoreDirs: ignoreDirs,
		Debounce:   flags.debounce,
		OnChange: func(ctx context.Context, changed []string) error {
			ctx = logging.WithFields(ctx, logging.FieldEvent, "change")
			result, err := sess.runner.ProcessFiles(ctx, changed, opts)
			if err != nil {
				return err
			}
			_, err = rep.Report(ctx, result)
			return err
		},
	})
	if err != nil {
		return err
	}

	sess.logger.Info("watching for changes", logging.FieldPath, watcher.BaseDir())
	fmt.Fprintln(cmd.ErrOrStderr(), "Press Ctrl+C to stop.")

	if err := watcher.Run(sess.ctx); err != nil {
		return err
	}
	if sess.ctx.Err() != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Stopped watching.")
	}
	return nil
}
