package styled

import (
	"sort"

	"github.com/yaklabco/styledid/pkg/syntax"
)

// BindingSet holds the identifiers known to denote the factory.
//
// Plain identifiers are the factory itself (styled.div). Namespaced
// identifiers hold a module object whose default member is the factory
// (mod.default.div), as produced by interop-style require.
type BindingSet struct {
	Plain      map[string]struct{}
	Namespaced map[string]struct{}
}

func newBindingSet(assumed []string) BindingSet {
	b := BindingSet{
		Plain:      make(map[string]struct{}, len(assumed)+1),
		Namespaced: make(map[string]struct{}),
	}
	for _, name := range assumed {
		b.Plain[name] = struct{}{}
	}
	return b
}

// IsPlain reports whether name is the factory.
func (b BindingSet) IsPlain(name string) bool {
	_, ok := b.Plain[name]
	return ok
}

// IsNamespaced reports whether name.default is the factory.
func (b BindingSet) IsNamespaced(name string) bool {
	_, ok := b.Namespaced[name]
	return ok
}

// PlainNames returns the plain identifiers in sorted order.
func (b BindingSet) PlainNames() []string {
	return sortedKeys(b.Plain)
}

// NamespacedNames returns the namespaced identifiers in sorted order.
func (b BindingSet) NamespacedNames() []string {
	return sortedKeys(b.Namespaced)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// collectBindings scans the whole tree for declarations that introduce the
// factory. It runs before any site matching, so a binding declared below its
// first use still applies to that use.
func collectBindings(tree *syntax.Tree, opts Options) BindingSet {
	bindings := newBindingSet(opts.AssumedIdentifiers)

	tree.Walk(tree.Root(), func(id syntax.NodeID) bool {
		switch tree.Kind(id) {
		case syntax.KindImportStatement:
			collectImport(tree, id, opts.Package, bindings)
			return false
		case syntax.KindCallExpression:
			collectRequire(tree, id, opts.Package, bindings)
		case syntax.KindTypeArguments:
			return false
		}
		return true
	})

	return bindings
}

// collectImport handles
//
//	import X from 'pkg'
//	import * as X from 'pkg'
//	import { default as X } from 'pkg'
//
// Type-only imports bind nothing.
func collectImport(tree *syntax.Tree, stmt syntax.NodeID, pkg string, bindings BindingSet) {
	if !isQuoted(tree.Text(tree.ChildByField(stmt, "source")), pkg) {
		return
	}

	clause := syntax.NoNode
	for _, child := range tree.Children(stmt) {
		switch tree.Kind(child) {
		case syntax.KindTypeKeyword, syntax.KindTypeofKeyword:
			return
		case syntax.KindImportClause:
			clause = child
		}
	}

	for _, child := range tree.Children(clause) {
		switch tree.Kind(child) {
		case syntax.KindIdentifier:
			bindings.Plain[tree.Text(child)] = struct{}{}
		case syntax.KindNamespaceImport:
			for _, id := range tree.NamedChildren(child) {
				if tree.Is(id, syntax.KindIdentifier) {
					bindings.Plain[tree.Text(id)] = struct{}{}
				}
			}
		case syntax.KindNamedImports:
			collectDefaultSpecifier(tree, child, bindings)
		}
	}
}

func collectDefaultSpecifier(tree *syntax.Tree, named syntax.NodeID, bindings BindingSet) {
	for _, spec := range tree.Children(named) {
		if !tree.Is(spec, syntax.KindImportSpecifier) {
			continue
		}
		alias := tree.ChildByField(spec, "alias")
		if alias == syntax.NoNode {
			continue
		}
		if tree.Text(tree.ChildByField(spec, "name")) == "default" {
			bindings.Plain[tree.Text(alias)] = struct{}{}
		}
	}
}

// collectRequire handles
//
//	const X = require('pkg')              X is namespaced
//	const X = require('pkg').default      X is plain
//	const { default: X } = require('pkg') X is plain
func collectRequire(tree *syntax.Tree, call syntax.NodeID, pkg string, bindings BindingSet) {
	callee := tree.ChildByField(call, "function")
	if !tree.Is(callee, syntax.KindIdentifier) || tree.Text(callee) != "require" {
		return
	}

	args := tree.NamedChildren(tree.ChildByField(call, "arguments"))
	if len(args) != 1 || !tree.Is(args[0], syntax.KindString) || !isQuoted(tree.Text(args[0]), pkg) {
		return
	}

	value := call
	viaDefault := false
	if parent := tree.Parent(call); tree.Is(parent, syntax.KindMemberExpression) && tree.Field(call) == "object" {
		if memberProperty(tree, parent) != "default" {
			return
		}
		value = parent
		viaDefault = true
	}

	declarator := tree.Parent(value)
	if !tree.Is(declarator, syntax.KindVariableDeclarator) || tree.Field(value) != "value" {
		return
	}

	name := tree.ChildByField(declarator, "name")
	switch tree.Kind(name) {
	case syntax.KindIdentifier:
		if viaDefault {
			bindings.Plain[tree.Text(name)] = struct{}{}
		} else {
			bindings.Namespaced[tree.Text(name)] = struct{}{}
		}
	case syntax.KindObjectPattern:
		if viaDefault {
			return
		}
		for _, entry := range tree.Children(name) {
			if !tree.Is(entry, syntax.KindPairPattern) {
				continue
			}
			key := tree.ChildByField(entry, "key")
			local := tree.ChildByField(entry, "value")
			if tree.Text(key) == "default" && tree.Is(local, syntax.KindIdentifier) {
				bindings.Plain[tree.Text(local)] = struct{}{}
			}
		}
	}
}

// resolvesToFactory walks down an object/callee chain and reports whether it
// is rooted at the factory.
func resolvesToFactory(tree *syntax.Tree, id syntax.NodeID, bindings BindingSet) bool {
	for cur := id; cur != syntax.NoNode; {
		switch tree.Kind(cur) {
		case syntax.KindIdentifier:
			return bindings.IsPlain(tree.Text(cur))
		case syntax.KindMemberExpression:
			object := tree.ChildByField(cur, "object")
			if tree.Is(object, syntax.KindIdentifier) &&
				bindings.IsNamespaced(tree.Text(object)) &&
				memberProperty(tree, cur) == "default" {
				return true
			}
			cur = object
		case syntax.KindCallExpression:
			cur = tree.ChildByField(cur, "function")
		default:
			return false
		}
	}
	return false
}

// memberProperty returns the property name of a member expression.
func memberProperty(tree *syntax.Tree, member syntax.NodeID) string {
	return tree.Text(tree.ChildByField(member, "property"))
}

// isQuoted reports whether literal is want in single or double quotes.
func isQuoted(literal, want string) bool {
	return literal == "'"+want+"'" || literal == `"`+want+`"`
}
