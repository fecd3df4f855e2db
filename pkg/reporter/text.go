package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/styledid/internal/ui/pretty"
	"github.com/yaklabco/styledid/pkg/runner"
)

// TextReporter lists rewritten components per file as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to process."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		r.reportFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return result.Stats.FilesChanged, nil
}

func (r *TextReporter) reportFile(file runner.FileOutcome) {
	path := file.RelPath
	if path == "" {
		path = file.Path
	}

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return
	}

	res := file.Result
	if res == nil {
		return
	}

	if res.ParseFailed {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Warning.Render("could not be parsed; left unchanged"),
		)
		return
	}

	showSites := r.opts.ShowSites && len(res.Sites) > 0
	if !showSites && len(res.Skipped) == 0 {
		return
	}

	header := r.styles.FormatFileHeader(path, len(res.Sites))
	if file.Written && file.WrittenTo != file.Path {
		header += r.styles.Dim.Render(" -> " + file.WrittenTo)
	}
	fmt.Fprintln(r.bw, header)

	if showSites {
		for _, site := range res.Sites {
			fmt.Fprint(r.bw, r.styles.FormatSite(path, site))
		}
	}
	for _, skipped := range res.Skipped {
		fmt.Fprint(r.bw, r.styles.FormatSkipped(path, skipped))
	}

	// Blank line between files
	fmt.Fprintln(r.bw)
}
