package tree

const (
	left  = 0
	right = 1
)

// node of a tree. Children are owned by the node, parent
// is only a back reference used to walk up the tree
type node[T any] struct {
	link   [2]*node[T]
	parent *node[T]
	value  T
	red    bool
}

func isRed[T any](n *node[T]) bool {
	return n != nil && n.red
}

// setLink hangs child c from n in direction dir and keeps
// the parent reference of c in sync
func (n *node[T]) setLink(dir int, c *node[T]) {
	n.link[dir] = c
	if c != nil {
		c.parent = n
	}
}

// childDir returns the direction in which c hangs from n
func (n *node[T]) childDir(c *node[T]) int {
	if n.link[right] == c {
		return right
	}
	return left
}

// min returns the node of the lowest order in the subtree
func (n *node[T]) min() *node[T] {
	curr := n
	for curr.link[left] != nil {
		curr = curr.link[left]
	}
	return curr
}

// max returns the node of the highest order in the subtree
func (n *node[T]) max() *node[T] {
	curr := n
	for curr.link[right] != nil {
		curr = curr.link[right]
	}
	return curr
}

// successor finds the node in the tree of the lowest order
// that is strictly greater than n. It returns nil if n is the
// node of the highest order.
func (n *node[T]) successor() *node[T] {
	if n.link[right] != nil {
		return n.link[right].min()
	}

	curr, parent := n, n.parent
	for parent != nil && curr == parent.link[right] {
		curr, parent = parent, parent.parent
	}

	return parent
}

// predecessor finds the node in the tree of the highest order
// that is strictly smaller than n. It returns nil if n is the
// node of the lowest order.
func (n *node[T]) predecessor() *node[T] {
	if n.link[left] != nil {
		return n.link[left].max()
	}

	curr, parent := n, n.parent
	for parent != nil && curr == parent.link[left] {
		curr, parent = parent, parent.parent
	}

	return parent
}
