// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Site components
	FilePath    lipgloss.Style
	Location    lipgloss.Style
	DisplayName lipgloss.Style
	ComponentID lipgloss.Style
	Shape       lipgloss.Style
	Merged      lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSkipRow   lipgloss.Style
	TableMerged    lipgloss.Style
	TableLegend    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newStyles(palette{})
	}
	return newStyles(ansiPalette())
}

// palette holds the ANSI colors styles are built from. The zero palette
// renders everything plain.
type palette struct {
	enabled bool
	red     lipgloss.Color
	green   lipgloss.Color
	yellow  lipgloss.Color
	blue    lipgloss.Color
	magenta lipgloss.Color
	cyan    lipgloss.Color
	white   lipgloss.Color
	grey    lipgloss.Color
}

func ansiPalette() palette {
	return palette{
		enabled: true,
		red:     "9",
		green:   "10",
		yellow:  "11",
		blue:    "12",
		magenta: "13",
		cyan:    "14",
		white:   "7",
		grey:    "8",
	}
}

func (p palette) fg(c lipgloss.Color) lipgloss.Style {
	if !p.enabled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

func (p palette) bold(style lipgloss.Style) lipgloss.Style {
	if !p.enabled {
		return style
	}
	return style.Bold(true)
}

func (p palette) italic(style lipgloss.Style) lipgloss.Style {
	if !p.enabled {
		return style
	}
	return style.Italic(true)
}

func newStyles(p palette) *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:   p.bold(p.fg(p.red)),
		Warning: p.bold(p.fg(p.yellow)),
		Info:    p.bold(p.fg(p.blue)),

		FilePath:    p.bold(plain),
		Location:    p.fg(p.grey),
		DisplayName: p.fg(p.magenta),
		ComponentID: p.fg(p.cyan),
		Shape:       p.fg(p.grey),
		Merged:      p.italic(p.fg(p.grey)),

		DiffHeader:  p.bold(plain),
		DiffHunk:    p.fg(p.cyan),
		DiffAdd:     p.fg(p.green),
		DiffRemove:  p.fg(p.red),
		DiffContext: p.fg(p.grey),

		SummaryTitle: p.bold(plain),
		SummaryValue: plain,
		Success:      p.bold(p.fg(p.green)),
		Failure:      p.bold(p.fg(p.red)),

		TableHeader:    p.bold(p.fg(p.white)),
		TableSkipRow:   p.fg(p.yellow),
		TableMerged:    p.fg(p.green),
		TableLegend:    p.italic(p.fg(p.grey)),
		TableSeparator: p.fg(p.grey),

		Dim:  p.fg(p.grey),
		Bold: p.bold(plain),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
