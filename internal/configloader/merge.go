package configloader

import "github.com/yaklabco/styledid/pkg/config"

// merge layers override on top of base without mutating either. Non-zero
// scalars and non-nil pointers and slices win; pointer booleans therefore
// let a layer switch a default off. The CLI-only switches are sticky once
// any layer turns them on.
func merge(base, override *config.Config) *config.Config {
	switch {
	case base == nil:
		return override
	case override == nil:
		return base
	}

	out := *base

	for dst, v := range map[*string]string{
		&out.Match:        override.Match,
		&out.Filter:       override.Filter,
		&out.Exclude:      override.Exclude,
		&out.Namespace:    override.Namespace,
		&out.Package:      override.Package,
		&out.OutDir:       override.OutDir,
		&out.Backups.Mode: override.Backups.Mode,
	} {
		if v != "" {
			*dst = v
		}
	}
	for dst, v := range map[**bool]*bool{
		&out.SSR:             override.SSR,
		&out.DisplayName:     override.DisplayName,
		&out.FileName:        override.FileName,
		&out.Backups.Enabled: override.Backups.Enabled,
	} {
		if v != nil {
			*dst = config.Bool(*v)
		}
	}

	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Jobs != 0 {
		out.Jobs = override.Jobs
	}
	if override.MeaninglessFileNames != nil {
		out.MeaninglessFileNames = override.MeaninglessFileNames
	}
	if override.Ignore != nil {
		out.Ignore = override.Ignore
	}

	out.Write = out.Write || override.Write
	out.Check = out.Check || override.Check
	out.NoBackups = out.NoBackups || override.NoBackups

	return &out
}

// MergeAll folds configs left to right; later entries win.
func MergeAll(configs ...*config.Config) *config.Config {
	var out *config.Config
	for _, cfg := range configs {
		out = merge(out, cfg)
	}
	return out
}
