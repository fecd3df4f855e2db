package reporter

import (
	"fmt"
	"strings"

	"github.com/yaklabco/styledid/pkg/config"
)

// Format names an output format. It shares its values with the
// configuration layer so a resolved config selects a reporter directly.
type Format = config.OutputFormat

// Output formats supported by the reporter.
const (
	FormatText    = config.FormatText
	FormatTable   = config.FormatTable
	FormatJSON    = config.FormatJSON
	FormatDiff    = config.FormatDiff
	FormatSummary = config.FormatSummary
)

// ParseFormat parses a format name case-insensitively. The empty string
// selects FormatText.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatText, nil
	}
	if format := Format(name); format.IsValid() {
		return format, nil
	}

	valid := make([]string, 0, len(config.Formats()))
	for _, f := range config.Formats() {
		valid = append(valid, string(f))
	}
	return "", fmt.Errorf("unknown format %q; valid formats: %s", name, strings.Join(valid, ", "))
}
