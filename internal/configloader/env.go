package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/styledid/pkg/config"
)

const envVarPrefix = "STYLEDID_"

// envBinding ties one STYLEDID_* variable to the config field it sets.
type envBinding struct {
	field string
	help  string
	apply func(cfg *config.Config, raw string) error
}

func stringVar(field, help string, set func(*config.Config, string)) envBinding {
	return envBinding{field: field, help: help, apply: func(cfg *config.Config, raw string) error {
		set(cfg, raw)
		return nil
	}}
}

func boolVar(field, help string, set func(*config.Config, bool)) envBinding {
	return envBinding{field: field, help: help, apply: func(cfg *config.Config, raw string) error {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected true/false/1/0, got %q", raw)
		}
		set(cfg, b)
		return nil
	}}
}

func listVar(field, help string, set func(*config.Config, []string)) envBinding {
	return envBinding{field: field, help: help, apply: func(cfg *config.Config, raw string) error {
		set(cfg, splitList(raw))
		return nil
	}}
}

//nolint:gochecknoglobals // Read-only lookup table.
var envBindings = map[string]envBinding{
	"MATCH": stringVar("match", "Pattern a source must contain to be parsed",
		func(c *config.Config, v string) { c.Match = v }),
	"FILTER": stringVar("filter", "Pattern file paths must match",
		func(c *config.Config, v string) { c.Filter = v }),
	"EXCLUDE": stringVar("exclude", "Pattern that rejects file paths",
		func(c *config.Config, v string) { c.Exclude = v }),
	"NAMESPACE": stringVar("namespace", "Prefix for every componentId",
		func(c *config.Config, v string) { c.Namespace = v }),
	"PACKAGE": stringVar("package", "Import source of the styled factory",
		func(c *config.Config, v string) { c.Package = v }),
	"FORMAT": stringVar("format", "Output format: text, table, json, diff, or summary",
		func(c *config.Config, v string) { c.Format = config.OutputFormat(v) }),
	"BACKUPS_MODE": stringVar("backups.mode", "Backup mode: sidecar or none",
		func(c *config.Config, v string) { c.Backups.Mode = v }),
	"SSR": boolVar("ssr", "Inject componentId",
		func(c *config.Config, v bool) { c.SSR = config.Bool(v) }),
	"DISPLAY_NAME": boolVar("display_name", "Inject displayName",
		func(c *config.Config, v bool) { c.DisplayName = config.Bool(v) }),
	"FILE_NAME": boolVar("file_name", "Prefix display names with the file name",
		func(c *config.Config, v bool) { c.FileName = config.Bool(v) }),
	"BACKUPS_ENABLED": boolVar("backups.enabled", "Write backups when rewriting",
		func(c *config.Config, v bool) { c.Backups.Enabled = config.Bool(v) }),
	"NO_BACKUPS": boolVar("no_backups", "Disable backups",
		func(c *config.Config, v bool) { c.NoBackups = v }),
	"MEANINGLESS_FILE_NAMES": listVar("meaningless_file_names", "Comma-separated file names replaced by their directory",
		func(c *config.Config, v []string) { c.MeaninglessFileNames = v }),
	"IGNORE": listVar("ignore", "Comma-separated ignore globs",
		func(c *config.Config, v []string) { c.Ignore = v }),
	"JOBS": {field: "jobs", help: "Number of parallel workers (0 = auto)", apply: func(c *config.Config, raw string) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", raw)
		}
		c.Jobs = n
		return nil
	}},
}

// LoadFromEnv applies STYLEDID_* overrides to cfg. Empty variables are
// treated as unset.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	for suffix, binding := range envBindings {
		raw := os.Getenv(envVarPrefix + suffix)
		if raw == "" {
			continue
		}
		if err := binding.apply(cfg, raw); err != nil {
			return fmt.Errorf("%s%s: %w", envVarPrefix, suffix, err)
		}
	}
	return nil
}

// splitList splits a comma-separated value, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetEnvVarName returns the variable that sets field, or "".
func GetEnvVarName(field string) string {
	for suffix, binding := range envBindings {
		if binding.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns every supported variable sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envBindings))
	for suffix, binding := range envBindings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: binding.help})
	}
	slices.SortFunc(vars, func(a, b EnvVar) int { return strings.Compare(a.Name, b.Name) })
	return vars
}
