package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/styledid/pkg/analysis"
)

// Table formatting constants.
const (
	mergedSymbol      = "+"
	tablePadding      = 2
	tableColumnCount  = 5 // FILE, LINE, DISPLAY NAME, COMPONENT ID, MERGED
	mergedColumnWidth = 3 // width for merged indicator column
	minFileWidth      = 20
	minLineWidth      = 4
	minNameWidth      = 24
	minIDWidth        = 16
	heavySeparator    = "="
	lightSeparator    = "-"
	defaultTermWidth  = 100
)

// TableRow represents a single row in the site table.
type TableRow struct {
	File        string
	Line        int
	DisplayName string
	ComponentID string
	Merged      bool

	// Skipped rows carry the reason in place of a name.
	Skipped bool
	Reason  string
}

// TableFormatter formats call sites as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable formats the report's sites as a table grouped by file.
func (t *TableFormatter) FormatTable(report *analysis.Report) string {
	if report == nil {
		return ""
	}

	fileGroups := collectRows(report)
	if len(fileGroups) == 0 {
		return ""
	}

	colWidths := t.calculateColumnWidths(fileGroups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	for i, group := range fileGroups {
		if i > 0 {
			builder.WriteString(t.formatSeparator(colWidths, lightSeparator))
			builder.WriteString("\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, colWidths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// collectRows groups site and skip rows by file, keeping report order.
func collectRows(report *analysis.Report) [][]TableRow {
	index := make(map[string]int)
	var groups [][]TableRow

	add := func(row TableRow) {
		i, ok := index[row.File]
		if !ok {
			i = len(groups)
			index[row.File] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], row)
	}

	for _, site := range report.Sites {
		add(SiteToTableRow(site))
	}
	for _, skipped := range report.Skipped {
		add(TableRow{File: skipped.FilePath, Line: skipped.Line, Skipped: true, Reason: skipped.Reason})
	}

	return groups
}

// SiteToTableRow converts a report site to a table row.
func SiteToTableRow(site analysis.SiteEntry) TableRow {
	return TableRow{
		File:        site.FilePath,
		Line:        site.Line,
		DisplayName: site.DisplayName,
		ComponentID: site.ComponentID,
		Merged:      len(site.MergedKeys) > 0,
	}
}

type columnWidths struct {
	file int
	line int
	name int
	id   int
}

func (row TableRow) nameCell() string {
	if row.Skipped {
		return "skipped: " + row.Reason
	}
	return row.DisplayName
}

// calculateColumnWidths determines optimal column widths based on content.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file: minFileWidth,
		line: minLineWidth,
		name: minNameWidth,
		id:   minIDWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, len(row.File))
			widths.line = max(widths.line, len(strconv.Itoa(row.Line)))
			widths.name = max(widths.name, len(row.nameCell()))
			widths.id = max(widths.id, len(row.ComponentID))
		}
	}

	// Constrain to terminal width: names shrink first, then paths.
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.name = max(minNameWidth, widths.name-excess)

		totalWidth = t.calculateTotalWidth(widths)
		if totalWidth > t.termWidth {
			excess = totalWidth - t.termWidth
			widths.file = max(minFileWidth, widths.file-excess)
		}
	}

	return widths
}

func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.file + widths.line + widths.name + widths.id +
		(tablePadding * tableColumnCount) + mergedColumnWidth
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %*s  %-*s  %-*s   ",
		widths.file, "FILE",
		widths.line, "LINE",
		widths.name, "DISPLAY NAME",
		widths.id, "COMPONENT ID",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.calculateTotalWidth(widths)))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	file := truncateFilePath(row.File, widths.file)
	name := truncateString(row.nameCell(), widths.name)
	id := truncateString(row.ComponentID, widths.id)

	merged := " "
	if row.Merged {
		merged = t.styles.TableMerged.Render(mergedSymbol)
	}

	content := fmt.Sprintf(" %-*s  %*d  %-*s  %-*s  %s",
		widths.file, file,
		widths.line, row.Line,
		widths.name, name,
		widths.id, id,
		merged,
	)

	return t.rowStyle(row).Render(content)
}

func (t *TableFormatter) rowStyle(row TableRow) lipgloss.Style {
	if row.Skipped {
		return t.styles.TableSkipRow
	}
	return lipgloss.NewStyle()
}

func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(
			fmt.Sprintf(" Legend: %s = merged with existing config", mergedSymbol),
		)
	}

	skipSample := t.styles.TableSkipRow.Render(" skipped ")
	mergedSample := t.styles.TableMerged.Render(mergedSymbol)

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s = left untouched  %s = merged with existing config", skipSample, mergedSample),
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(totals analysis.Totals, duration string) string {
	parts := []string{fmt.Sprintf("%d files processed", totals.Files)}

	parts = append(parts, fmt.Sprintf("%d components", totals.Sites))

	if totals.SkippedSites > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d skipped", totals.SkippedSites)))
	}
	if totals.FilesErrored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d failed", totals.FilesErrored)))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
