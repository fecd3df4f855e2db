package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/styledid/internal/ui/pretty"
	"github.com/yaklabco/styledid/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 10,
		FilesChanged:   3,
		SitesTotal:     15,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files processed:   10")
	assert.Contains(t, result, "Files changed:     3")
	assert.Contains(t, result, "Components:        15")
	assert.NotContains(t, result, "Files written:")
	assert.Contains(t, result, "Rewrite completed")
}

func TestFormatSummary_Status(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{name: "failed files", stats: runner.Stats{FilesErrored: 1, SitesSkipped: 2}, want: "Rewrite failed for some files"},
		{name: "skipped sites", stats: runner.Stats{SitesSkipped: 2}, want: "Rewrite completed with skipped sites"},
		{name: "parse failures", stats: runner.Stats{ParseFailures: 1}, want: "Rewrite completed with skipped sites"},
		{name: "clean", stats: runner.Stats{SitesTotal: 4}, want: "Rewrite completed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, styles.FormatSummary(tt.stats), tt.want)
		})
	}
}

func TestFormatSummary_WithWrittenFiles(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesProcessed: 4, FilesChanged: 2, FilesWritten: 2, SitesTotal: 3})

	assert.Contains(t, result, "Files written:     2")
}

func TestFormatSummaryOneLine_NothingFound(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 5})

	assert.Equal(t, "No styled components found (5 files processed)\n", result)
}

func TestFormatSummaryOneLine_WithSites(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 12,
		FilesChanged:   2,
		FilesWritten:   2,
		SitesTotal:     5,
		SitesSkipped:   1,
		ParseFailures:  1,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Equal(t,
		"5 components in 2 files, 1 skipped, 1 unparsable, 2 files written (12 files processed)\n",
		result)
}

func TestFormatSummaryOneLine_Singular(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 1, FilesChanged: 1, SitesTotal: 1})

	assert.Equal(t, "1 component in 1 file (1 file processed)\n", result)
}

func TestFormatSummaryOneLine_Errors(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 3, FilesErrored: 2})

	assert.Contains(t, result, "2 files failed")
	assert.NotContains(t, result, "No styled components")
}
