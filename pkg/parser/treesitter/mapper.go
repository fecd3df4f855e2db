package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/styledid/pkg/syntax"
)

// mapper copies a tree-sitter tree into a syntax arena.
type mapper struct {
	builder *syntax.Builder
}

// bytesPerNodeHint is a rough node density used to pre-size the arena.
const bytesPerNodeHint = 4

func buildTree(root *sitter.Node, content []byte) *syntax.Tree {
	m := &mapper{
		builder: syntax.NewBuilder(content, len(content)/bytesPerNodeHint),
	}

	if root.HasError() {
		m.builder.MarkError()
	}

	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()

	m.mapNode(cursor, syntax.NoNode)

	return m.builder.Tree()
}

// mapNode adds the cursor's current node under parent, then its children.
// The cursor is back on the same node when mapNode returns.
func (m *mapper) mapNode(cursor *sitter.TreeCursor, parent syntax.NodeID) {
	node := cursor.CurrentNode()

	id := m.builder.Add(
		parent,
		node.Type(),
		node.IsNamed(),
		cursor.CurrentFieldName(),
		int(node.StartByte()),
		int(node.EndByte()),
	)

	if node.IsMissing() {
		m.builder.MarkError()
	}

	if !cursor.GoToFirstChild() {
		return
	}
	for {
		m.mapNode(cursor, id)
		if !cursor.GoToNextSibling() {
			break
		}
	}
	cursor.GoToParent()
}
