package styled

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/styledid/pkg/fix"
	"github.com/yaklabco/styledid/pkg/identity"
	"github.com/yaklabco/styledid/pkg/syntax"
)

// Rewrite finds every styled call site in tree and injects its config.
//
// Bindings are collected over the whole tree first; sites are then matched in
// a single pre-order walk, so the result does not depend on where imports
// appear. A tree with syntax errors is passed through with ParseFailed set.
// The only error is ErrOverlappingEdits, which signals an internal bug.
func Rewrite(tree *syntax.Tree, src []byte, path string, opts Options, hasher *identity.Hasher) (*Result, error) {
	opts = opts.withDefaults()

	if tree == nil || tree.Root() == syntax.NoNode || tree.HasError {
		return passthrough(src, true), nil
	}

	if hasher == nil {
		hasher = identity.NewHasher(nil, nil)
	}

	e := &engine{
		tree:     tree,
		src:      src,
		path:     path,
		opts:     opts,
		hasher:   hasher,
		bindings: collectBindings(tree, opts),
	}
	tree.Walk(tree.Root(), e.visit)

	prepared, err := fix.Prepare(e.edits.Edits(), len(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrOverlappingEdits, err)
	}
	output, err := fix.Apply(src, prepared)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrOverlappingEdits, err)
	}

	return &Result{
		Output:   output,
		Sites:    e.sites,
		Skipped:  e.skipped,
		Edits:    prepared,
		Bindings: e.bindings,
	}, nil
}

func passthrough(src []byte, parseFailed bool) *Result {
	out := make([]byte, len(src))
	copy(out, src)
	return &Result{Output: out, ParseFailed: parseFailed}
}

// engine is the per-file rewrite state.
type engine struct {
	tree     *syntax.Tree
	src      []byte
	path     string
	opts     Options
	hasher   *identity.Hasher
	bindings BindingSet

	fileHash   string
	hashed     bool
	nextIndex  int
	edits      fix.Builder
	sites      []Site
	skipped    []SkippedSite
	lineOffset int
	lineCount  int
}

func (e *engine) visit(id syntax.NodeID) bool {
	switch e.tree.Kind(id) {
	case syntax.KindTypeArguments, syntax.KindImportStatement:
		return false

	case syntax.KindMemberExpression:
		if !e.isCallee(id) {
			return true
		}
		return !e.matchMember(id)

	case syntax.KindCallExpression:
		if !e.isCallee(id) {
			return true
		}
		return !e.matchCall(id)

	default:
		return true
	}
}

// isCallee reports whether id is the function of a call or tagged template.
func (e *engine) isCallee(id syntax.NodeID) bool {
	return e.tree.Field(id) == "function" && e.tree.Is(e.tree.Parent(id), syntax.KindCallExpression)
}

// matchMember handles styled.div`...` and styled.div(...). It reports
// whether the member was consumed as a site.
func (e *engine) matchMember(member syntax.NodeID) bool {
	switch memberProperty(e.tree, member) {
	case "attrs", "withConfig":
		return false
	}
	if !resolvesToFactory(e.tree, e.tree.ChildByField(member, "object"), e.bindings) {
		return false
	}

	_, end := e.tree.Span(member)
	e.emit(member, ShapeTaggedMember, existingConfig{}, func(config string) {
		e.edits.Insert(end, config)
	})
	return true
}

// matchCall handles styled(Comp)`...` and call chains such as
// styled.div.attrs(...)`...`. An existing withConfig in the chain is removed
// and its entries are folded into the injected config.
func (e *engine) matchCall(call syntax.NodeID) bool {
	callee := e.tree.ChildByField(call, "function")

	switch e.tree.Kind(callee) {
	case syntax.KindIdentifier:
		if !e.bindings.IsPlain(e.tree.Text(callee)) {
			return false
		}
		_, end := e.tree.Span(call)
		e.emit(call, ShapeFactoryCall, existingConfig{}, func(config string) {
			e.edits.Insert(end, config)
		})
		return true

	case syntax.KindMemberExpression:
		if !resolvesToFactory(e.tree, callee, e.bindings) {
			return false
		}
		return e.matchChain(call)

	default:
		return false
	}
}

func (e *engine) matchChain(call syntax.NodeID) bool {
	_, end := e.tree.Span(call)

	member := findWithConfig(e.tree, call)
	if member == syntax.NoNode {
		e.emit(call, ShapeCallChain, existingConfig{}, func(config string) {
			e.edits.Insert(end, config)
		})
		return true
	}

	withConfigCall := e.tree.Parent(member)
	args := e.tree.ChildByField(withConfigCall, "arguments")

	existing, err := parseConfigObject(e.tree, args)
	if err != nil {
		start, stop := e.tree.Span(call)
		e.skipped = append(e.skipped, SkippedSite{Start: start, End: stop, Line: e.lineAt(start), Err: err})
		return true
	}

	_, objectEnd := e.tree.Span(e.tree.ChildByField(member, "object"))
	_, argsEnd := e.tree.Span(args)
	e.emit(call, ShapeCallChain, existing, func(config string) {
		e.edits.Delete(objectEnd, argsEnd)
		e.edits.Insert(end, config)
	})
	return true
}

// findWithConfig walks down the callee chain of call and returns the first
// member expression whose property is withConfig and which is itself called.
func findWithConfig(tree *syntax.Tree, call syntax.NodeID) syntax.NodeID {
	for cur := call; cur != syntax.NoNode; {
		switch tree.Kind(cur) {
		case syntax.KindMemberExpression:
			if memberProperty(tree, cur) == "withConfig" &&
				tree.Field(cur) == "function" &&
				tree.Is(tree.Parent(cur), syntax.KindCallExpression) {
				return cur
			}
			cur = tree.ChildByField(cur, "object")
		case syntax.KindCallExpression:
			cur = tree.ChildByField(cur, "function")
		default:
			return syntax.NoNode
		}
	}
	return syntax.NoNode
}

// emit assigns the next index to the site whose callee is site and records
// the edits produced by apply. A site with nothing to inject is recorded
// without edits.
func (e *engine) emit(site syntax.NodeID, shape Shape, existing existingConfig, apply func(config string)) {
	start, end := e.tree.Span(site)
	outer := e.tree.Parent(site)

	name := componentName(e.tree, outer)
	display := DisplayName(e.opts, e.path, name)

	index := e.nextIndex
	e.nextIndex++

	id := ""
	if e.opts.SSR {
		id = componentID(e.opts.Namespace, e.hash(), index)
	}

	props := configProps(e.opts, id, display, existing.entries)
	injected := e.opts.SSR || (e.opts.DisplayName && display != "")
	if injected {
		apply(renderConfig(props))
	}

	recorded := Site{
		Index:         index,
		ComponentID:   id,
		ComponentName: name,
		Shape:         shape,
		Start:         start,
		End:           end,
		Line:          e.lineAt(start),
		MergedKeys:    existing.keys,
	}
	if e.opts.DisplayName {
		recorded.DisplayName = display
	}
	e.sites = append(e.sites, recorded)
}

// hash computes the file hash on first use, so files without sites never
// touch the filesystem.
func (e *engine) hash() string {
	if !e.hashed {
		e.fileHash = e.hasher.FileHash(e.path, e.src)
		e.hashed = true
	}
	return e.fileHash
}

// lineAt returns the 1-based line of offset. Offsets are queried in
// increasing order, so counting resumes from the previous query.
func (e *engine) lineAt(offset int) int {
	if offset < e.lineOffset {
		e.lineOffset, e.lineCount = 0, 0
	}
	e.lineCount += bytes.Count(e.src[e.lineOffset:offset], []byte{'\n'})
	e.lineOffset = offset
	return e.lineCount + 1
}
