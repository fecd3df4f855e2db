package styled

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/yaklabco/styledid/pkg/identity"
	"github.com/yaklabco/styledid/pkg/parser/treesitter"
)

// Default path patterns used by NewPlugin when a field is empty.
const (
	DefaultFilter  = `\.(jsx|js|tsx|ts)$`
	DefaultExclude = `/node_modules/`
)

// PluginConfig configures a Plugin.
type PluginConfig struct {
	// Match is a pattern the source text must contain before it is parsed.
	// Empty matches Options.Package literally.
	Match string

	// Filter is a pattern the slash-separated path must match.
	Filter string

	// Exclude is a pattern that rejects paths.
	Exclude string

	// Options controls the injected config.
	Options Options

	// Hasher computes file hashes. Nil uses a private module-root cache.
	Hasher *identity.Hasher

	// Parser parses sources. Nil picks the grammar per file.
	Parser *treesitter.Parser
}

// DefaultPluginConfig returns a config with every default applied.
func DefaultPluginConfig() PluginConfig {
	return PluginConfig{
		Filter:  DefaultFilter,
		Exclude: DefaultExclude,
		Options: DefaultOptions(),
	}
}

// Plugin is the entry point for build-tool adapters and the CLI.
// It is safe for concurrent use.
type Plugin struct {
	match   *regexp.Regexp
	filter  *regexp.Regexp
	exclude *regexp.Regexp
	opts    Options
	hasher  *identity.Hasher
	parser  *treesitter.Parser
}

// NewPlugin compiles cfg. Empty patterns take their defaults.
func NewPlugin(cfg PluginConfig) (*Plugin, error) {
	opts := cfg.Options.withDefaults()
	match, err := compile("match", cfg.Match, regexp.QuoteMeta(opts.Package))
	if err != nil {
		return nil, err
	}
	filter, err := compile("filter", cfg.Filter, DefaultFilter)
	if err != nil {
		return nil, err
	}
	exclude, err := compile("exclude", cfg.Exclude, DefaultExclude)
	if err != nil {
		return nil, err
	}

	hasher := cfg.Hasher
	if hasher == nil {
		hasher = identity.NewHasher(nil, nil)
	}
	parser := cfg.Parser
	if parser == nil {
		parser = treesitter.New()
	}

	return &Plugin{
		match:   match,
		filter:  filter,
		exclude: exclude,
		opts:    opts,
		hasher:  hasher,
		parser:  parser,
	}, nil
}

func compile(name, pattern, fallback string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = fallback
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid %s pattern %q: %w", name, pattern, err)
	}
	return re, nil
}

// Options returns the effective rewrite options.
func (p *Plugin) Options() Options {
	return p.opts
}

// ShouldProcess reports whether path is absolute, matches the filter and is
// not excluded. Adapters call it before Transform.
func (p *Plugin) ShouldProcess(path string) bool {
	if !filepath.IsAbs(path) {
		return false
	}
	slashed := filepath.ToSlash(path)
	return p.filter.MatchString(slashed) && !p.exclude.MatchString(slashed)
}

// References reports whether src mentions the factory package at all.
func (p *Plugin) References(src []byte) bool {
	return p.match.Match(src)
}

// Transform rewrites src. Sources that never mention the factory, or that do
// not parse cleanly, come back unchanged; a single syntax error anywhere
// leaves the whole file untouched, even sites outside the broken region. An error is returned only when ctx
// is cancelled or the rewriter violated its own edit invariants.
func (p *Plugin) Transform(ctx context.Context, path string, src []byte) (*Result, error) {
	if !p.References(src) {
		return passthrough(src, false), nil
	}

	tree, dialect, err := p.parser.Parse(ctx, path, src)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("transform %s: %w", path, ctxErr)
		}
		result := passthrough(src, true)
		result.Dialect = dialect
		return result, nil
	}

	result, err := Rewrite(tree, src, path, p.opts, p.hasher)
	if err != nil {
		return nil, err
	}
	result.Dialect = dialect
	return result, nil
}

// TransformString is the text-in, text-out form of Transform. It returns
// text unchanged on any failure.
func (p *Plugin) TransformString(path, text string) string {
	result, err := p.Transform(context.Background(), path, []byte(text))
	if err != nil || !result.Changed() {
		return text
	}
	return string(result.Output)
}
