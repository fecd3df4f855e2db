package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/yaklabco/styledid/internal/ui/pretty"
	"github.com/yaklabco/styledid/pkg/config"
	"github.com/yaklabco/styledid/pkg/fsutil"
	"github.com/yaklabco/styledid/pkg/styled"
)

type inspectFlags struct {
	rewrite rewriteFlags
	dump    bool
	output  bool
}

func newInspectCommand() *cobra.Command {
	var cfg config.Config
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show how a single file would be transformed",
		Long: `Show the styled bindings, rewritten call sites and skipped sites of one
file without writing anything.

Examples:
  styledid inspect src/Button.js
  styledid inspect src/Button.js --output   # Also print the transformed source
  styledid inspect src/Button.js --dump     # Dump the full result structure`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], &cfg, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dump, "dump", false, "dump the raw transform result")
	cmd.Flags().BoolVar(&flags.output, "output", false, "print the transformed source")
	addRewriteFlags(cmd, &flags.rewrite)

	return cmd
}

func runInspect(cmd *cobra.Command, path string, cfg *config.Config, flags *inspectFlags) error {
	flags.rewrite.apply(cmd, cfg)

	sess, err := loadSession(cmd, cfg)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	content, _, err := fsutil.ReadFile(sess.ctx, absPath)
	if err != nil {
		return err
	}

	plugin := sess.runner.Plugin()
	result, err := plugin.Transform(sess.ctx, absPath, content)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flags.dump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		dumper.Fdump(out, result)
		return nil
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	writeInspection(out, styles, path, plugin.ShouldProcess(absPath), result)
	if flags.output && result.Changed() {
		fmt.Fprintf(out, "\n%s\n%s", styles.Bold.Render("Output:"), result.Output)
	}
	return nil
}

func writeInspection(w io.Writer, styles *pretty.Styles, path string, selected bool, result *styled.Result) {
	fmt.Fprintln(w, styles.FormatFileHeader(path, len(result.Sites)))
	fmt.Fprintf(w, "  %s %s\n", styles.Dim.Render("dialect:"), result.Dialect)
	if !selected {
		fmt.Fprintf(w, "  %s\n", styles.Warning.Render("excluded by filter/exclude patterns; the runner would skip this file"))
	}
	if result.ParseFailed {
		fmt.Fprintf(w, "  %s\n", styles.Error.Render("could not be parsed; left unchanged"))
		return
	}

	fmt.Fprintf(w, "  %s %s\n", styles.Dim.Render("bindings:"), bindingList(result.Bindings.Plain))
	if len(result.Bindings.Namespaced) > 0 {
		fmt.Fprintf(w, "  %s %s\n", styles.Dim.Render("namespaces:"), bindingList(result.Bindings.Namespaced))
	}

	if len(result.Sites) > 0 {
		fmt.Fprintln(w)
	}
	for _, site := range result.Sites {
		fmt.Fprint(w, styles.FormatSite(path, site))
	}
	for _, skipped := range result.Skipped {
		fmt.Fprint(w, styles.FormatSkipped(path, skipped))
	}
}

func bindingList(set map[string]struct{}) string {
	if len(set) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
