package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/styledid/internal/configloader"
	"github.com/yaklabco/styledid/internal/logging"
	"github.com/yaklabco/styledid/pkg/config"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force     bool
	format    string
	output    string
	namespace string
}

// confirmFunc asks whether an existing file may be replaced.
type confirmFunc func(path string) (bool, error)

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a styledid configuration file",
		Long: `Create a commented .styledid.yml in the current directory with every
setting at its default value.

Examples:
  styledid init                        Create .styledid.yml
  styledid init --format toml          Create .styledid.toml instead
  styledid init --namespace app        Prefix every componentId with "app"
  styledid init --output custom.yml    Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirm := terminalConfirm(cmd.InOrStdin(), cmd.ErrOrStderr())
			return runInit(flags, confirm)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "output format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .styledid.yml or .styledid.toml)")
	cmd.Flags().StringVar(&flags.namespace, "namespace", "", "componentId namespace written into the file")

	return cmd
}

func runInit(flags *initFlags, confirm confirmFunc) error {
	logger := logging.NewInteractive()

	if flags.format != "yaml" && flags.format != "toml" {
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == "toml" {
			outputPath = ".styledid.toml"
		} else {
			outputPath = ".styledid.yml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	overwrite := flags.force
	if _, err := os.Stat(absPath); err == nil && !overwrite {
		ok, err := confirm(outputPath)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		overwrite = true
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	opts := config.TemplateOptions{
		Format:    flags.format,
		Namespace: flags.namespace,
	}
	if err := configloader.WriteTemplate(absPath, opts, overwrite); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'styledid transform' to see what would change")

	return nil
}

// terminalConfirm prompts on an interactive stdin and declines otherwise.
func terminalConfirm(in io.Reader, out io.Writer) confirmFunc {
	return func(path string) (bool, error) {
		file, ok := in.(*os.File)
		if !ok || !term.IsTerminal(int(file.Fd())) {
			return false, nil
		}

		fmt.Fprintf(out, "%s already exists. Overwrite? [y/N] ", path)
		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
