// Package styled rewrites styled-components call sites so that every
// component carries a deterministic componentId and a readable displayName.
//
// The rewrite is purely textual: sites are located in a concrete syntax tree,
// a `.withConfig({...})` call is spliced in after each one, and every byte
// outside the spliced ranges is copied unchanged.
package styled

// DefaultPackage is the import source that denotes the styled factory.
const DefaultPackage = "styled-components"

// Options controls what the rewriter injects.
//
// The zero value injects nothing; start from DefaultOptions.
type Options struct {
	// SSR injects componentId.
	SSR bool

	// DisplayName injects displayName when a name can be derived.
	DisplayName bool

	// FileName prefixes display names with the file's block name.
	FileName bool

	// MeaninglessFileNames are base names (without extension) replaced by
	// their directory name when deriving the block name.
	MeaninglessFileNames []string

	// Namespace prefixes every componentId as "<Namespace>__sc-...".
	Namespace string

	// Package is the import source recognized in import and require
	// declarations.
	Package string

	// AssumedIdentifiers are treated as the factory without any import.
	AssumedIdentifiers []string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		SSR:                  true,
		DisplayName:          true,
		FileName:             true,
		MeaninglessFileNames: []string{"index"},
		Package:              DefaultPackage,
		AssumedIdentifiers:   []string{"styled"},
	}
}

// withDefaults fills empty list and string fields. Boolean fields are taken
// as given.
func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.MeaninglessFileNames == nil {
		o.MeaninglessFileNames = []string{"index"}
	}
	if o.AssumedIdentifiers == nil {
		o.AssumedIdentifiers = []string{"styled"}
	}
	return o
}
