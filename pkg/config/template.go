package config

import (
	"bytes"
	"fmt"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "toml".
	Format string

	// Namespace is written uncommented when non-empty.
	Namespace string
}

// setting is one documented key of the template.
type setting struct {
	key     string
	comment []string
	value   string // rendered literal
	active  bool   // written uncommented
}

func templateSettings(opts TemplateOptions) []setting {
	ns := opts.Namespace
	return []setting{
		{
			key:     "ssr",
			comment: []string{"Inject a deterministic componentId into every styled component."},
			value:   "true",
			active:  true,
		},
		{
			key:     "display_name",
			comment: []string{"Inject a displayName derived from the declaration."},
			value:   "true",
			active:  true,
		},
		{
			key:     "file_name",
			comment: []string{"Prefix display names with the file name (Button__Label)."},
			value:   "true",
			active:  true,
		},
		{
			key: "meaningless_file_names",
			comment: []string{
				"File names replaced by their directory name when building",
				"display names.",
			},
			value: `["index"]`,
		},
		{
			key:     "namespace",
			comment: []string{"Prefix for every componentId (<namespace>__sc-...)."},
			value:   quoteTemplate(ns),
			active:  ns != "",
		},
		{
			key:     "package",
			comment: []string{"Import source that provides the styled factory."},
			value:   quoteTemplate("styled-components"),
		},
		{
			key: "match",
			comment: []string{
				"Files whose text does not match this pattern are skipped unparsed.",
				"Defaults to the package name.",
			},
			value: quoteTemplate("styled-components"),
		},
		{
			key:     "filter",
			comment: []string{"Paths must match this pattern to be transformed."},
			value:   quoteTemplate(`\.(jsx|js|tsx|ts)$`),
		},
		{
			key:     "exclude",
			comment: []string{"Paths matching this pattern are never transformed."},
			value:   quoteTemplate("/node_modules/"),
		},
		{
			key:     "ignore",
			comment: []string{"Glob patterns skipped during file discovery."},
			value:   `["dist/**", "build/**"]`,
		},
		{
			key:     "jobs",
			comment: []string{"Number of parallel workers (0 = auto)."},
			value:   "0",
		},
	}
}

// GenerateTemplate creates a commented configuration file.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = "yaml"
	}
	if format != "yaml" && format != "toml" {
		return nil, fmt.Errorf("unsupported template format %q", opts.Format)
	}

	var buf bytes.Buffer
	buf.WriteString("# styledid configuration\n")
	buf.WriteString("# See: https://github.com/yaklabco/styledid\n")

	for _, s := range templateSettings(opts) {
		buf.WriteByte('\n')
		for _, line := range s.comment {
			buf.WriteString("# " + line + "\n")
		}
		if !s.active {
			buf.WriteString("# ")
		}
		buf.WriteString(renderSetting(format, s.key, s.value))
	}

	buf.WriteString("\n# Backups written next to rewritten files.\n")
	if format == "toml" {
		buf.WriteString("# [backups]\n# enabled = true\n# mode = \"sidecar\"\n")
	} else {
		buf.WriteString("# backups:\n#   enabled: true\n#   mode: sidecar\n")
	}

	return buf.Bytes(), nil
}

func renderSetting(format, key, value string) string {
	if format == "toml" {
		return key + " = " + value + "\n"
	}
	return key + ": " + value + "\n"
}

// quoteTemplate renders s as a double-quoted string valid in both YAML and
// TOML basic strings.
func quoteTemplate(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
