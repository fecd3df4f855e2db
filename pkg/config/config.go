// Package config defines core configuration types for styledid.
// These types are pure data structures; discovery, merging and validation
// live in internal/configloader.
package config

// BackupsConfig controls backup behavior when rewriting files in place.
type BackupsConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Mode    string `yaml:"mode,omitempty" toml:"mode,omitempty"` // "sidecar" or "none"
}

// Config is the root configuration structure.
//
// Boolean settings are pointers so that a config layer can switch off a
// default; nil means "not set in this layer".
type Config struct {
	// Match is the pattern a source must contain before it is parsed. Empty
	// matches Package literally.
	Match string `yaml:"match,omitempty" toml:"match,omitempty"`

	// Filter is the pattern file paths must match.
	Filter string `yaml:"filter,omitempty" toml:"filter,omitempty"`

	// Exclude is the pattern that rejects file paths.
	Exclude string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`

	// SSR injects componentId.
	SSR *bool `yaml:"ssr,omitempty" toml:"ssr,omitempty"`

	// DisplayName injects displayName.
	DisplayName *bool `yaml:"display_name,omitempty" toml:"display_name,omitempty"`

	// FileName prefixes display names with the file's block name.
	FileName *bool `yaml:"file_name,omitempty" toml:"file_name,omitempty"`

	// MeaninglessFileNames are replaced by their directory name.
	MeaninglessFileNames []string `yaml:"meaningless_file_names,omitempty" toml:"meaningless_file_names,omitempty"`

	// Namespace prefixes every componentId.
	Namespace string `yaml:"namespace,omitempty" toml:"namespace,omitempty"`

	// Package is the import source of the styled factory.
	Package string `yaml:"package,omitempty" toml:"package,omitempty"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Backups configures backup behavior when writing.
	Backups BackupsConfig `yaml:"backups,omitempty" toml:"backups,omitempty"`

	// Jobs is the number of parallel workers (0 = GOMAXPROCS).
	Jobs int `yaml:"jobs,omitempty" toml:"jobs,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// Write rewrites files in place.
	Write bool `yaml:"-" toml:"-"`

	// Check fails when any file would change.
	Check bool `yaml:"-" toml:"-"`

	// OutDir writes rewritten files under a mirrored directory tree.
	OutDir string `yaml:"-" toml:"-"`

	// NoBackups disables backup creation when writing.
	NoBackups bool `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Filter:               `\.(jsx|js|tsx|ts)$`,
		Exclude:              `/node_modules/`,
		SSR:                  Bool(true),
		DisplayName:          Bool(true),
		FileName:             Bool(true),
		MeaninglessFileNames: []string{"index"},
		Package:              "styled-components",
		Backups: BackupsConfig{
			Enabled: Bool(true),
			Mode:    "sidecar",
		},
		Format: FormatText,
		Jobs:   0,
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// BoolValue dereferences p, returning fallback when p is nil.
func BoolValue(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// BackupsEnabled reports whether writes should leave a backup behind.
func (c *Config) BackupsEnabled() bool {
	if c == nil || c.NoBackups || c.Backups.Mode == "none" {
		return false
	}
	return BoolValue(c.Backups.Enabled, true)
}
