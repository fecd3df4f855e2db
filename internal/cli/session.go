package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/styledid/internal/configloader"
	"github.com/yaklabco/styledid/internal/logging"
	"github.com/yaklabco/styledid/pkg/config"
	"github.com/yaklabco/styledid/pkg/fsutil"
	"github.com/yaklabco/styledid/pkg/reporter"
	"github.com/yaklabco/styledid/pkg/runner"
	"github.com/yaklabco/styledid/pkg/styled"
)

// session is the resolved state shared by commands that run the pipeline.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	workDir string
	runner  *runner.Runner
	logger  *log.Logger
}

// rewriteFlags are the flags that feed the config layer on top of files and
// the environment.
type rewriteFlags struct {
	namespace     string
	pkg           string
	ignore        []string
	noSSR         bool
	noDisplayName bool
	noFileName    bool
}

func addRewriteFlags(cmd *cobra.Command, flags *rewriteFlags) {
	cmd.Flags().StringVar(&flags.namespace, "namespace", "", "prefix for every componentId")
	cmd.Flags().StringVar(&flags.pkg, "package", "", "import source of the styled factory")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.noSSR, "no-ssr", false, "do not inject componentId")
	cmd.Flags().BoolVar(&flags.noDisplayName, "no-display-name", false, "do not inject displayName")
	cmd.Flags().BoolVar(&flags.noFileName, "no-file-name", false, "do not prefix display names with the file name")
}

// apply copies explicitly set flags onto cfg.
func (f *rewriteFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	cfg.Namespace = f.namespace
	cfg.Package = f.pkg
	cfg.Ignore = f.ignore
	if cmd.Flags().Changed("no-ssr") {
		cfg.SSR = config.Bool(!f.noSSR)
	}
	if cmd.Flags().Changed("no-display-name") {
		cfg.DisplayName = config.Bool(!f.noDisplayName)
	}
	if cmd.Flags().Changed("no-file-name") {
		cfg.FileName = config.Bool(!f.noFileName)
	}
}

// loadSession resolves configuration layers and builds the runner.
func loadSession(cmd *cobra.Command, cliCfg *config.Config) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	plugin, err := styled.NewPlugin(cfg.PluginConfig())
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	logger.Debug("configuration loaded",
		"ssr", config.BoolValue(cfg.SSR, true),
		"display_name", config.BoolValue(cfg.DisplayName, true),
		"namespace", cfg.Namespace,
		"jobs", cfg.Jobs,
	)

	return &session{
		ctx:     ctx,
		cfg:     cfg,
		workDir: workDir,
		runner:  runner.New(plugin),
		logger:  logger,
	}, nil
}

// runOptions builds runner options for paths in mode.
func (s *session) runOptions(paths []string, mode runner.Mode) (runner.Options, error) {
	opts := runner.Options{
		Paths:        paths,
		WorkingDir:   s.workDir,
		ExcludeGlobs: s.cfg.Ignore,
		Jobs:         s.cfg.Jobs,
		Mode:         mode,
		Backups: fsutil.BackupConfig{
			Enabled: s.cfg.BackupsEnabled(),
			Mode:    fsutil.BackupMode(s.cfg.Backups.Mode),
		},
	}
	if s.cfg.OutDir != "" {
		outDir, err := filepath.Abs(s.cfg.OutDir)
		if err != nil {
			return runner.Options{}, fmt.Errorf("resolve output directory: %w", err)
		}
		opts.OutDir = outDir
	}
	return opts, nil
}

// newReporter builds a reporter writing to the command's streams.
func (s *session) newReporter(cmd *cobra.Command, format reporter.Format, compact bool) (reporter.Reporter, error) {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	opts := reporter.DefaultOptions()
	opts.Writer = cmd.OutOrStdout()
	opts.ErrorWriter = cmd.ErrOrStderr()
	opts.Format = format
	opts.Color = colorMode
	opts.Compact = compact
	opts.WorkingDir = s.workDir

	rep, err := reporter.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create reporter: %w", err)
	}
	return rep, nil
}

// formatFlag validates an explicitly set --format value and records it on
// cfg, leaving config files and the environment in charge otherwise.
func formatFlag(cmd *cobra.Command, name string, cfg *config.Config) error {
	if !cmd.Flags().Changed("format") {
		return nil
	}
	format, err := reporter.ParseFormat(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	cfg.Format = config.OutputFormat(format)
	return nil
}

// selectMode picks the runner mode from the mutually exclusive output
// flags and the report format.
func selectMode(cfg *config.Config, format reporter.Format) (runner.Mode, error) {
	switch {
	case cfg.OutDir != "":
		if format == reporter.FormatDiff {
			return "", fmt.Errorf("%w: diff output cannot be combined with --out-dir", ErrUsage)
		}
		return runner.ModeOutDir, nil
	case cfg.Write:
		if format == reporter.FormatDiff {
			return "", fmt.Errorf("%w: diff output cannot be combined with --write", ErrUsage)
		}
		return runner.ModeWrite, nil
	case format == reporter.FormatDiff:
		return runner.ModeDiff, nil
	default:
		return runner.ModeCheck, nil
	}
}
