package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/styledid/internal/ui/pretty"
	"github.com/yaklabco/styledid/pkg/analysis"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	tableWidth         = 90 // Width of table separators (same for both tables).
	nameColWidth       = 50 // Width of the display name column.
	fileColWidth       = 60 // Width of the file path column (wider for relative paths).
	numColWidth        = 7  // Width of numeric columns.
	statusColWidth     = 12 // Width of the status column.
	maxNameLength      = 48 // Maximum characters for a display name before truncation.
	maxFilePathLength  = 58 // Maximum characters for file path before truncation.
	totalPartsCapacity = 3  // Expected number of parts in total summary line.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if len(report.ByFile) == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No styled components found"))
		return nil
	}

	r.renderFileTable(report.ByFile)
	if len(report.ByName) > 0 {
		fmt.Fprintln(r.out)
		r.renderNameTable(report.ByName)
	}

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	// Header - pad first, then style
	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Sites", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Skipped", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Status", statusColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		status, style := r.fileStatus(file)
		fmt.Fprintf(r.out, "%s %s %s %s\n",
			padRight(path, fileColWidth),
			padLeft(strconv.Itoa(file.Sites), numColWidth),
			padLeft(strconv.Itoa(file.Skipped), numColWidth),
			style(padLeft(status, statusColWidth)),
		)
	}
}

func (r *SummaryRenderer) fileStatus(file analysis.FileAnalysis) (string, func(...string) string) {
	switch {
	case file.Error != "":
		return "error", r.styles.Error.Render
	case file.ParseFailed:
		return "unparsable", r.styles.Warning.Render
	case file.Written:
		return "written", r.styles.Success.Render
	case file.Changed:
		return "changed", r.styles.SummaryValue.Render
	default:
		return "unchanged", r.styles.Dim.Render
	}
}

func (r *SummaryRenderer) renderNameTable(names []analysis.NameAnalysis) {
	fmt.Fprintln(r.out, r.styles.Bold.Render("Display Names"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("Display Name", nameColWidth)),
		r.styles.TableHeader.Render(padLeft("Sites", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Files", numColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, name := range names {
		displayName := name.DisplayName
		if len(displayName) > maxNameLength {
			displayName = displayName[:maxNameLength] + "…"
		}

		// Pad first, then style
		paddedName := padRight(displayName, nameColWidth)
		if name.Duplicate() {
			paddedName = r.styles.TableSkipRow.Render(paddedName)
		}

		fmt.Fprintf(r.out, "%s %s %s\n",
			paddedName,
			padLeft(strconv.Itoa(name.Sites), numColWidth),
			padLeft(strconv.Itoa(len(name.Files)), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	parts := make([]string, 0, totalPartsCapacity)

	componentWord := "components"
	if totals.Sites == 1 {
		componentWord = "component"
	}
	parts = append(parts, fmt.Sprintf("%d %s", totals.Sites, componentWord))

	var detailParts []string
	if totals.SkippedSites > 0 {
		detailParts = append(detailParts, r.styles.Warning.Render(fmt.Sprintf("%d skipped", totals.SkippedSites)))
	}
	if totals.DuplicateNames > 0 {
		detailParts = append(detailParts, r.styles.Warning.Render(fmt.Sprintf("%d duplicate names", totals.DuplicateNames)))
	}
	if len(detailParts) > 0 {
		parts[0] = fmt.Sprintf("%d %s (%s)", totals.Sites, componentWord, strings.Join(detailParts, ", "))
	}

	fileWord := "files"
	if totals.FilesChanged == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("in %d %s", totals.FilesChanged, fileWord))

	if totals.FilesErrored > 0 {
		parts[len(parts)-1] += ", " + r.styles.Error.Render(fmt.Sprintf("%d failed", totals.FilesErrored))
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+strings.Join(parts, " "))
}
