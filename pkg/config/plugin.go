package config

import "github.com/yaklabco/styledid/pkg/styled"

// PluginConfig converts the resolved configuration into the rewriter's
// plugin configuration. Unset values fall back to the rewriter defaults.
func (c *Config) PluginConfig() styled.PluginConfig {
	cfg := styled.DefaultPluginConfig()
	if c == nil {
		return cfg
	}

	if c.Match != "" {
		cfg.Match = c.Match
	}
	if c.Filter != "" {
		cfg.Filter = c.Filter
	}
	if c.Exclude != "" {
		cfg.Exclude = c.Exclude
	}

	opts := &cfg.Options
	opts.SSR = BoolValue(c.SSR, opts.SSR)
	opts.DisplayName = BoolValue(c.DisplayName, opts.DisplayName)
	opts.FileName = BoolValue(c.FileName, opts.FileName)
	if c.MeaninglessFileNames != nil {
		opts.MeaninglessFileNames = c.MeaninglessFileNames
	}
	opts.Namespace = c.Namespace
	if c.Package != "" {
		opts.Package = c.Package
	}

	return cfg
}
