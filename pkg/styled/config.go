package styled

import (
	"fmt"
	"strings"

	"github.com/yaklabco/styledid/pkg/syntax"
)

// existingConfig is the content of a withConfig object literal already
// present at a site, kept as source text.
type existingConfig struct {
	entries []string
	keys    []string
}

// parseConfigObject reads the argument list of a withConfig call. The list
// must hold exactly one object literal without comments.
func parseConfigObject(tree *syntax.Tree, args syntax.NodeID) (existingConfig, error) {
	if !tree.Is(args, syntax.KindArguments) {
		return existingConfig{}, fmt.Errorf("%w: arguments are not a call list", ErrMalformedConfig)
	}

	named := tree.NamedChildren(args)
	if len(named) != 1 {
		return existingConfig{}, fmt.Errorf("%w: expected one argument, found %d", ErrMalformedConfig, len(named))
	}
	object := named[0]
	if !tree.Is(object, syntax.KindObject) {
		return existingConfig{}, fmt.Errorf("%w: argument is %s, not an object literal", ErrMalformedConfig, tree.Node(object).Type)
	}

	var cfg existingConfig
	for _, entry := range tree.NamedChildren(object) {
		switch tree.Kind(entry) {
		case syntax.KindComment:
			return existingConfig{}, fmt.Errorf("%w: comments inside the config object cannot be carried over", ErrMalformedConfig)

		case syntax.KindPair:
			key := tree.Text(tree.ChildByField(entry, "key"))
			value := tree.Text(tree.ChildByField(entry, "value"))
			cfg.entries = append(cfg.entries, key+": "+value)
			cfg.keys = append(cfg.keys, key)

		case syntax.KindShorthandPropertyIdentifier:
			cfg.entries = append(cfg.entries, tree.Text(entry))
			cfg.keys = append(cfg.keys, tree.Text(entry))

		case syntax.KindMethodDefinition:
			cfg.entries = append(cfg.entries, tree.Text(entry))
			cfg.keys = append(cfg.keys, tree.Text(tree.ChildByField(entry, "name")))

		default:
			cfg.entries = append(cfg.entries, tree.Text(entry))
			cfg.keys = append(cfg.keys, tree.Text(entry))
		}
	}

	return cfg, nil
}

// componentID formats "<namespace>__sc-<hash>-<index>".
func componentID(namespace, fileHash string, index int) string {
	prefix := "sc-" + fileHash
	if namespace != "" {
		prefix = namespace + "__" + prefix
	}
	return fmt.Sprintf("%s-%d", prefix, index)
}

// configProps lists the injected properties in their fixed order:
// componentId, displayName, then any carried-over entries.
func configProps(opts Options, id, displayName string, existing []string) []string {
	props := make([]string, 0, 2+len(existing))
	if opts.SSR {
		props = append(props, "componentId: "+quote(id))
	}
	if opts.DisplayName && displayName != "" {
		props = append(props, "displayName: "+quote(displayName))
	}
	return append(props, existing...)
}

// renderConfig renders the call appended to a site.
func renderConfig(props []string) string {
	return ".withConfig({ " + strings.Join(props, ", ") + " })"
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)

// quote renders s as a single-quoted JavaScript string.
func quote(s string) string {
	return "'" + quoteEscaper.Replace(s) + "'"
}
