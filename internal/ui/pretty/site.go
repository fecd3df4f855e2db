package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/styledid/pkg/styled"
)

// FormatSite formats one rewritten call site for terminal output:
//
//	path:line  displayName  componentId  (shape)
func (s *Styles) FormatSite(path string, site styled.Site) string {
	var builder strings.Builder

	location := s.FilePath.Render(path) + s.Location.Render(fmt.Sprintf(":%d", site.Line))

	name := site.DisplayName
	if name == "" {
		name = "-"
	}
	id := site.ComponentID
	if id == "" {
		id = "-"
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.DisplayName.Render(name),
		s.ComponentID.Render(id),
		s.Shape.Render("("+site.Shape.String()+")"),
	))

	if len(site.MergedKeys) > 0 {
		builder.WriteString("    " + s.Dim.Render("Merged:") + " " +
			s.Merged.Render(strings.Join(site.MergedKeys, ", ")) + "\n")
	}

	return builder.String()
}

// FormatSkipped formats a call site that was left untouched.
func (s *Styles) FormatSkipped(path string, skipped styled.SkippedSite) string {
	return fmt.Sprintf("  %s  %s  %s\n",
		s.FilePath.Render(path)+s.Location.Render(fmt.Sprintf(":%d", skipped.Line)),
		s.Warning.Render("skipped"),
		skipped.Reason(),
	)
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, siteCount int) string {
	header := s.FilePath.Render(path)
	if siteCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", siteCount, plural(siteCount, "component", "components")))
	}
	return header
}
