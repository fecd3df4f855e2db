package pretty_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/styledid/internal/ui/pretty"
)

// allStyles lists every renderer so additions to Styles get covered.
func allStyles(s *pretty.Styles) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"Error":          s.Error,
		"Warning":        s.Warning,
		"Info":           s.Info,
		"FilePath":       s.FilePath,
		"Location":       s.Location,
		"DisplayName":    s.DisplayName,
		"ComponentID":    s.ComponentID,
		"Shape":          s.Shape,
		"Merged":         s.Merged,
		"DiffHeader":     s.DiffHeader,
		"DiffHunk":       s.DiffHunk,
		"DiffAdd":        s.DiffAdd,
		"DiffRemove":     s.DiffRemove,
		"DiffContext":    s.DiffContext,
		"SummaryTitle":   s.SummaryTitle,
		"SummaryValue":   s.SummaryValue,
		"Success":        s.Success,
		"Failure":        s.Failure,
		"TableHeader":    s.TableHeader,
		"TableSkipRow":   s.TableSkipRow,
		"TableMerged":    s.TableMerged,
		"TableLegend":    s.TableLegend,
		"TableSeparator": s.TableSeparator,
		"Dim":            s.Dim,
		"Bold":           s.Bold,
	}
}

func TestNewStyles_ColorDisabledRendersPlain(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	for name, style := range allStyles(styles) {
		assert.Equal(t, "Button__Title", style.Render("Button__Title"), "%s should not add formatting", name)
	}
}

func TestNewStyles_ColorEnabledKeepsText(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss drops ANSI codes without a TTY, so only the text is checked.
	for name, style := range allStyles(styles) {
		assert.Contains(t, style.Render("sc-abc-0"), "sc-abc-0", name)
	}
	assert.True(t, styles.Error.GetBold())
	assert.True(t, styles.Merged.GetItalic())
	assert.False(t, pretty.NewStyles(false).Error.GetBold())
}

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		writer  io.Writer
		noColor string
		want    bool
	}{
		{name: "always", mode: "always", writer: &bytes.Buffer{}, want: true},
		{name: "always ignores NO_COLOR", mode: "always", writer: &bytes.Buffer{}, noColor: "1", want: true},
		{name: "never", mode: "never", writer: os.Stdout, want: false},
		{name: "auto non-tty", mode: "auto", writer: &bytes.Buffer{}, want: false},
		{name: "auto with NO_COLOR", mode: "auto", writer: os.Stdout, noColor: "1", want: false},
		{name: "empty mode is auto", mode: "", writer: &bytes.Buffer{}, want: false},
		{name: "unknown mode is auto", mode: "rainbow", writer: &bytes.Buffer{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			assert.Equal(t, tt.want, pretty.IsColorEnabled(tt.mode, tt.writer))
		})
	}
}
