package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/styledid/internal/ui/pretty"
	"github.com/yaklabco/styledid/pkg/analysis"
)

func sampleReport() *analysis.Report {
	return &analysis.Report{
		Sites: []analysis.SiteEntry{
			{FilePath: "src/Button.js", Line: 2, ComponentID: "sc-abc-0", DisplayName: "Button"},
			{FilePath: "src/Button.js", Line: 9, ComponentID: "sc-abc-1", DisplayName: "Button__Label", MergedKeys: []string{"attrs"}},
			{FilePath: "src/Card.js", Line: 4, ComponentID: "sc-def-0", DisplayName: "Card"},
		},
		Skipped: []analysis.SkipEntry{
			{FilePath: "src/Button.js", Line: 12, Reason: "malformed withConfig call"},
		},
	}
}

func TestTableFormatter_FormatTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 0)
	out := formatter.FormatTable(sampleReport())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9, out)

	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[0], "DISPLAY NAME")
	assert.Contains(t, lines[0], "COMPONENT ID")
	assert.True(t, strings.HasPrefix(lines[1], "==="))

	assert.Contains(t, lines[2], "Button")
	assert.Contains(t, lines[3], "Button__Label")
	assert.True(t, strings.HasSuffix(lines[3], "+"), "merged sites are marked")
	assert.Contains(t, lines[4], "skipped: malformed withConfig call")
	assert.True(t, strings.HasPrefix(lines[5], "---"), "files are separated")
	assert.Contains(t, lines[6], "sc-def-0")
	assert.True(t, strings.HasPrefix(lines[7], "==="))
	assert.Contains(t, lines[8], "Legend")
}

func TestTableFormatter_Empty(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 80)
	assert.Empty(t, formatter.FormatTable(nil))
	assert.Empty(t, formatter.FormatTable(&analysis.Report{}))
}

func TestTableFormatter_TruncatesLongPaths(t *testing.T) {
	t.Parallel()

	report := &analysis.Report{
		Sites: []analysis.SiteEntry{{
			FilePath:    strings.Repeat("deep/", 40) + "Button.js",
			Line:        1,
			ComponentID: "sc-abc-0",
			DisplayName: "Button",
		}},
	}

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 80)
	out := formatter.FormatTable(report)
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "Button.js")
}

func TestTableFormatter_FormatTableSummary(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), false, 0)
	got := formatter.FormatTableSummary(analysis.Totals{Files: 4, Sites: 6, SkippedSites: 1}, "12ms")
	assert.Equal(t, " 4 files processed | 6 components | 1 skipped | 12ms", got)
}
