package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/styledid/internal/logging"
	"github.com/yaklabco/styledid/pkg/config"
	"github.com/yaklabco/styledid/pkg/reporter"
)

type transformFlags struct {
	rewrite rewriteFlags
	format  string
	diff    bool
	compact bool
}

func newTransformCommand() *cobra.Command {
	var cfg config.Config
	flags := &transformFlags{}

	cmd := &cobra.Command{
		Use:     "transform [paths...]",
		Aliases: []string{"run"},
		Short:   "Inject componentId and displayName into styled components",
		Long:    transformLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().BoolVarP(&cfg.Write, "write", "w", false, "rewrite files in place")
	cmd.Flags().StringVarP(&cfg.OutDir, "out-dir", "o", "", "write transformed files under this directory")
	cmd.Flags().BoolVar(&cfg.Check, "check", false, "exit non-zero when any file would change")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a unified diff (same as --format diff)")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation with --write")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, table, json, diff, summary")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	addRewriteFlags(cmd, &flags.rewrite)

	cmd.MarkFlagsMutuallyExclusive("write", "out-dir", "check")
	cmd.MarkFlagsMutuallyExclusive("diff", "format")

	return cmd
}

const transformLongDescription = `Rewrite styled-components declarations so every component carries a
stable componentId and a readable displayName.

By default all .js, .jsx, .ts and .tsx files under the current directory are
transformed and the result is only reported. Use --write to rewrite files in
place, or --out-dir to write transformed copies into a mirrored tree.

Examples:
  styledid transform                      # Report what would change
  styledid transform src/ --diff          # Show changes as a unified diff
  styledid transform --write              # Rewrite files in place
  styledid transform --out-dir build/src  # Write transformed copies
  styledid transform --check              # Fail in CI when files would change
  styledid transform --format json        # Machine-readable report`

func runTransform(cmd *cobra.Command, args []string, cfg *config.Config, flags *transformFlags) error {
	if flags.diff {
		cfg.Format = config.FormatDiff
	} else if err := formatFlag(cmd, flags.format, cfg); err != nil {
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
	opts, err := sess.runOptions(args, mode)
	if err != nil {
		return err
	}

	sess.logger.Debug("starting transform",
		"paths", opts.Paths,
		"mode", opts.Mode,
		"jobs", opts.Jobs,
	)

	result, err := sess.runner.Run(sess.ctx, opts)
	if err != nil {
		return fmt.Errorf("transform run failed: %w", err)
	}

	rep, err := sess.newReporter(cmd, format, flags.compact)
	if err != nil {
		return err
	}
	if _, err := rep.Report(sess.ctx, result); err != nil {
		sess.logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	return errorForCode(ExitCodeFromResult(result, sess.cfg.Check))
}
