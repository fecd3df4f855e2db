package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/styledid/internal/ui/pretty"
	"github.com/yaklabco/styledid/pkg/fix"
	"github.com/yaklabco/styledid/pkg/runner"
)

// DiffReporter prints the unified diff of every changed file followed by a
// shortstat line.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Only outcomes of a runner.ModeDiff run carry
// diffs; other outcomes contribute nothing but their errors.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var files, additions, deletions int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.RelPath),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		diff := file.Diff
		if !diff.HasChanges() {
			continue
		}

		files++
		additions += diff.Added
		deletions += diff.Removed
		r.writeDiff(diff)
	}

	if files > 0 && r.opts.ShowSummary {
		r.writeSummary(files, additions, deletions)
	}

	return files, nil
}

func (r *DiffReporter) writeDiff(diff *fix.Diff) {
	path := strings.TrimPrefix(diff.Path, "/")
	fmt.Fprintln(r.bw, r.styles.DiffHeader.Render(diff.Header()))
	fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("--- a/"+path))
	fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+++ b/"+path))

	for _, hunk := range diff.Hunks {
		fmt.Fprintln(r.bw, r.styles.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OldStart, hunk.OldLines, hunk.NewStart, hunk.NewLines)))
		for _, line := range hunk.Lines {
			switch line.Op {
			case fix.OpInsert:
				fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+"+line.Text))
			case fix.OpDelete:
				fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("-"+line.Text))
			case fix.OpEqual:
				fmt.Fprintln(r.bw, r.styles.DiffContext.Render(" "+line.Text))
			}
		}
	}

	fmt.Fprintln(r.bw)
}

// writeSummary writes a git-style shortstat line.
func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	parts := []string{quantity(files, "file") + " changed"}
	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(quantity(additions, "insertion")+"(+)"))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(quantity(deletions, "deletion")+"(-)"))
	}
	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}

// quantity renders "1 file" or "3 files".
func quantity(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
