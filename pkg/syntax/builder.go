package syntax

// Builder appends nodes to a Tree in pre-order.
//
// Parsers create the root with Add(NoNode, ...) and then add every child with
// its parent's ID. Children must be added in source order.
type Builder struct {
	tree *Tree
}

// NewBuilder starts a tree over source. sizeHint pre-sizes the arena.
func NewBuilder(source []byte, sizeHint int) *Builder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Builder{
		tree: &Tree{
			Source: source,
			Nodes:  make([]Node, 0, sizeHint),
		},
	}
}

// Add appends a node under parent and returns its ID.
func (b *Builder) Add(parent NodeID, nodeType string, named bool, field string, start, end int) NodeID {
	id := NodeID(len(b.tree.Nodes))
	b.tree.Nodes = append(b.tree.Nodes, Node{
		Kind:   KindOf(nodeType, named),
		Type:   nodeType,
		Named:  named,
		Field:  field,
		Start:  start,
		End:    end,
		Parent: parent,
	})
	if parent != NoNode {
		p := &b.tree.Nodes[parent]
		p.Children = append(p.Children, id)
	}
	return id
}

// MarkError records that the source contained syntax errors.
func (b *Builder) MarkError() {
	b.tree.HasError = true
}

// Tree returns the built tree. The builder must not be used afterwards.
func (b *Builder) Tree() *Tree {
	return b.tree
}
