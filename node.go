package slist

// node is a list node. A node owns its successor.
type node struct {
	next  *node
	value int
}

// unlink detaches n from its successor and returns the successor.
func (n *node) unlink() *node {
	next := n.next
	n.next = nil
	return next
}
