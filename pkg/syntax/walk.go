package syntax

// WalkFunc is called for each visited node. Returning false skips the node's
// children; the walk continues with the next sibling.
type WalkFunc func(id NodeID) bool

// Walk performs a pre-order traversal of the subtree rooted at root.
func (t *Tree) Walk(root NodeID, walkFunc WalkFunc) {
	if !t.Valid(root) {
		return
	}

	if !walkFunc(root) {
		return
	}

	for _, child := range t.Nodes[root].Children {
		t.Walk(child, walkFunc)
	}
}

// FindAll returns every node in the subtree rooted at root matching predicate.
func (t *Tree) FindAll(root NodeID, predicate func(id NodeID) bool) []NodeID {
	var result []NodeID
	t.Walk(root, func(id NodeID) bool {
		if predicate(id) {
			result = append(result, id)
		}
		return true
	})
	return result
}

// FindFirst returns the first node in pre-order matching predicate, or NoNode.
func (t *Tree) FindFirst(root NodeID, predicate func(id NodeID) bool) NodeID {
	found := NoNode
	t.Walk(root, func(id NodeID) bool {
		if found != NoNode {
			return false
		}
		if predicate(id) {
			found = id
			return false
		}
		return true
	})
	return found
}

// FindByKind returns every node of kind in the subtree rooted at root.
func (t *Tree) FindByKind(root NodeID, kind Kind) []NodeID {
	return t.FindAll(root, func(id NodeID) bool {
		return t.Nodes[id].Kind == kind
	})
}
