package configloader

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/styledid/pkg/config"
)

// ValidationError is one problem found in a configuration.
type ValidationError struct {
	Field    string // dotted key, e.g. "backups.mode"
	Value    any
	Message  string
	FilePath string // config file the value came from, when known
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FilePath, e.Field, e.Message} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ": ")
}

// ValidationResult collects the errors that reject a configuration and
// the warnings that only get reported.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether no errors were found.
func (r *ValidationResult) Valid() bool { return len(r.Errors) == 0 }

// HasWarnings reports whether any warnings were found.
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Message: message})
}

// namespacePattern keeps the generated componentId a valid CSS class name.
var namespacePattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// Validate checks cfg for values the rewriter cannot use.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	for _, p := range [...]struct{ field, pattern string }{
		{"match", cfg.Match},
		{"filter", cfg.Filter},
		{"exclude", cfg.Exclude},
	} {
		if _, err := regexp.Compile(p.pattern); err != nil {
			result.fail(p.field, p.pattern, "invalid pattern: %v", err)
		}
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: %s", cfg.Format, joinFormats())
	}
	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if cfg.Backups.Mode != "" && !IsValidBackupMode(cfg.Backups.Mode) {
		result.fail("backups.mode", cfg.Backups.Mode, "invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}
	if !namespacePattern.MatchString(cfg.Namespace) {
		result.fail("namespace", cfg.Namespace, "namespace may only contain letters, digits, '-' and '_'")
	}
	if cfg.Write && cfg.OutDir != "" {
		result.fail("out_dir", cfg.OutDir, "--write and --out-dir are mutually exclusive")
	}
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(filepath.ToSlash(pattern), '/'); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	if !config.BoolValue(cfg.SSR, true) && !config.BoolValue(cfg.DisplayName, true) {
		result.warn("ssr", "ssr and display_name are both disabled; no file will change")
	}

	return result
}

func joinFormats() string {
	names := make([]string, 0, len(config.Formats()))
	for _, f := range config.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// ValidateWithFile is Validate with every finding attributed to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// IsValidBackupMode reports whether mode is "sidecar" or "none".
func IsValidBackupMode(mode string) bool {
	return mode == "sidecar" || mode == "none"
}
