package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/styledid/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 components in 2 files, 1 skipped, 2 files changed (12 files processed)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	processed := s.Dim.Render(fmt.Sprintf(" (%d %s processed)", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)))

	if stats.SitesTotal == 0 && stats.SitesSkipped == 0 && stats.FilesErrored == 0 {
		return s.Success.Render("No styled components found") + processed + "\n"
	}

	var parts []string

	if stats.SitesTotal > 0 {
		parts = append(parts, fmt.Sprintf("%d %s in %d %s",
			stats.SitesTotal, plural(stats.SitesTotal, "component", "components"),
			stats.FilesChanged, plural(stats.FilesChanged, wordFile, wordFiles)))
	}

	if stats.SitesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.SitesSkipped)))
	}

	if stats.ParseFailures > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d unparsable", stats.ParseFailures)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s failed", stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	if stats.FilesWritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s written", stats.FilesWritten, plural(stats.FilesWritten, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + processed + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files processed:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesChanged > 0 {
		builder.WriteString("  Files changed:     " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesChanged)) + "\n")
	}
	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Components:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.SitesTotal)) + "\n")

	if stats.SitesSkipped > 0 {
		builder.WriteString("    Skipped:         " +
			s.Warning.Render(strconv.Itoa(stats.SitesSkipped)) + "\n")
	}
	if stats.ParseFailures > 0 {
		builder.WriteString("    Unparsable:      " +
			s.Warning.Render(strconv.Itoa(stats.ParseFailures)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Rewrite failed for some files"))
	case stats.SitesSkipped > 0 || stats.ParseFailures > 0:
		builder.WriteString(s.Warning.Render("Rewrite completed with skipped sites"))
	default:
		builder.WriteString(s.Success.Render("Rewrite completed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
