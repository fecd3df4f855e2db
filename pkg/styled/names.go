package styled

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/styledid/pkg/syntax"
)

// componentName infers the declared name of the component produced by call,
// the outermost call of a site. Conditional and assignment wrappers are looked
// through; the first remaining ancestor must be a declaration-like context.
func componentName(tree *syntax.Tree, call syntax.NodeID) string {
	ctx := tree.Parent(call)
	for tree.Is(ctx, syntax.KindTernaryExpression) {
		ctx = tree.Parent(ctx)
	}
	for tree.Is(ctx, syntax.KindAssignmentExpression) {
		ctx = tree.Parent(ctx)
	}

	switch tree.Kind(ctx) {
	case syntax.KindVariableDeclarator:
		return textIf(tree, tree.ChildByField(ctx, "name"), syntax.KindIdentifier)

	case syntax.KindExpressionStatement:
		assign := tree.FirstChild(ctx)
		if !tree.Is(assign, syntax.KindAssignmentExpression) {
			return ""
		}
		return textIf(tree, tree.ChildByField(assign, "left"), syntax.KindIdentifier)

	case syntax.KindPair:
		return textIf(tree, tree.ChildByField(ctx, "key"), syntax.KindPropertyIdentifier)

	case syntax.KindPublicFieldDefinition:
		if !hasStaticKeyword(tree, ctx) {
			return ""
		}
		name := tree.ChildByField(ctx, "name")
		if name == syntax.NoNode {
			name = tree.ChildByField(ctx, "property")
		}
		return textIf(tree, name, syntax.KindPropertyIdentifier)

	default:
		return ""
	}
}

func textIf(tree *syntax.Tree, id syntax.NodeID, kind syntax.Kind) string {
	if !tree.Is(id, kind) {
		return ""
	}
	return tree.Text(id)
}

func hasStaticKeyword(tree *syntax.Tree, field syntax.NodeID) bool {
	for _, child := range tree.Children(field) {
		if tree.Is(child, syntax.KindStaticKeyword) {
			return true
		}
	}
	return false
}

// BlockName returns the file's base name without extension, or the parent
// directory's name when the base name is listed in meaningless.
func BlockName(path string, meaningless []string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if slices.Contains(meaningless, name) {
		return filepath.Base(filepath.Dir(path))
	}
	return name
}

// DisplayName combines the block name of path with componentName.
//
// With FileName enabled the result is "Block__Component", just "Block" when
// no component name is known, or just the name when both coincide. A block
// name starting with a digit is prefixed with "sc-".
func DisplayName(opts Options, path, componentName string) string {
	if !opts.FileName || path == "" {
		return componentName
	}

	block := BlockName(path, opts.MeaninglessFileNames)
	if block == componentName {
		return componentName
	}
	if componentName == "" {
		return prefixLeadingDigit(block)
	}
	return prefixLeadingDigit(block) + "__" + componentName
}

func prefixLeadingDigit(s string) string {
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		return "sc-" + s
	}
	return s
}
