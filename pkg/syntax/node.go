// Package syntax holds an index-addressed concrete syntax tree for JavaScript
// and TypeScript sources.
//
// All nodes live in a single arena owned by Tree. Parent and child links are
// NodeID indices into that arena; the parent link is used only for upward
// navigation and never implies ownership.
package syntax

// NodeID addresses a node inside a Tree.
type NodeID int32

// NoNode is returned by lookups that find nothing.
const NoNode NodeID = -1

// Node is a single concrete syntax node.
type Node struct {
	// Kind is the closed classification of Type.
	Kind Kind

	// Type is the grammar's node type, kept for diagnostics.
	Type string

	// Named is false for anonymous tokens such as punctuation and keywords.
	Named bool

	// Field is the field label on the edge from the parent, if any.
	Field string

	// Start and End delimit the node's byte range [Start, End).
	Start int
	End   int

	// Parent is NoNode for the root.
	Parent NodeID

	// Children are ordered by position.
	Children []NodeID
}

// Tree is an arena of nodes plus the source they were parsed from.
type Tree struct {
	// Source is the parsed text. It must not be mutated.
	Source []byte

	// Nodes is the arena. Nodes[0] is the root when the tree is non-empty.
	Nodes []Node

	// HasError is true when the parser recovered from syntax errors.
	HasError bool
}

// Root returns the root node ID, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if t == nil || len(t.Nodes) == 0 {
		return NoNode
	}
	return 0
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Nodes)
}

// Valid reports whether id addresses a node in t.
func (t *Tree) Valid(id NodeID) bool {
	return t != nil && id >= 0 && int(id) < len(t.Nodes)
}

// Node returns the node for id. It panics on an invalid id.
func (t *Tree) Node(id NodeID) *Node {
	return &t.Nodes[id]
}

// Kind returns the kind of id, or KindOther for NoNode.
func (t *Tree) Kind(id NodeID) Kind {
	if !t.Valid(id) {
		return KindOther
	}
	return t.Nodes[id].Kind
}

// Is reports whether id is a node of the given kind.
func (t *Tree) Is(id NodeID, kind Kind) bool {
	return t.Valid(id) && t.Nodes[id].Kind == kind
}

// Text returns the source text covered by id.
func (t *Tree) Text(id NodeID) string {
	if !t.Valid(id) {
		return ""
	}
	n := &t.Nodes[id]
	return string(t.Source[n.Start:n.End])
}

// Parent returns the parent of id, or NoNode.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return NoNode
	}
	return t.Nodes[id].Parent
}

// Field returns the field label on the edge from id's parent.
func (t *Tree) Field(id NodeID) string {
	if !t.Valid(id) {
		return ""
	}
	return t.Nodes[id].Field
}

// Children returns the ordered children of id.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.Valid(id) {
		return nil
	}
	return t.Nodes[id].Children
}

// Child returns the idx-th child of id, or NoNode.
func (t *Tree) Child(id NodeID, idx int) NodeID {
	children := t.Children(id)
	if idx < 0 || idx >= len(children) {
		return NoNode
	}
	return children[idx]
}

// FirstChild returns the first child of id, or NoNode.
func (t *Tree) FirstChild(id NodeID) NodeID {
	return t.Child(id, 0)
}

// LastChild returns the last child of id, or NoNode.
func (t *Tree) LastChild(id NodeID) NodeID {
	return t.Child(id, len(t.Children(id))-1)
}

// ChildByField returns the first child of id labeled with field, or NoNode.
func (t *Tree) ChildByField(id NodeID, field string) NodeID {
	for _, child := range t.Children(id) {
		if t.Nodes[child].Field == field {
			return child
		}
	}
	return NoNode
}

// NamedChildren returns the named children of id, skipping punctuation.
func (t *Tree) NamedChildren(id NodeID) []NodeID {
	var named []NodeID
	for _, child := range t.Children(id) {
		if t.Nodes[child].Named {
			named = append(named, child)
		}
	}
	return named
}

// Closest returns the nearest ancestor of id (excluding id) with the given
// kind, or NoNode.
func (t *Tree) Closest(id NodeID, kind Kind) NodeID {
	for cur := t.Parent(id); cur != NoNode; cur = t.Parent(cur) {
		if t.Nodes[cur].Kind == kind {
			return cur
		}
	}
	return NoNode
}

// Span returns the byte range of id.
func (t *Tree) Span(id NodeID) (int, int) {
	if !t.Valid(id) {
		return 0, 0
	}
	n := &t.Nodes[id]
	return n.Start, n.End
}
