package tree

// Iterator is a cursor over the values of a tree. It walks the
// tree in either direction following the links of the nodes,
// so it needs no extra storage and never modifies the tree.
//
// An Iterator that is not positioned on any value sits both
// before the first value and after the last one. Moving it
// forward positions it on the first value, moving it backward
// positions it on the last.
//
// Inserting into or removing from the tree invalidates the
// position of the Iterator. It must be positioned again with
// First or Last before it is used.
type Iterator[T any] struct {
	tree *Tree[T]
	node *node[T]
}

// First binds the iterator to t and positions it on the
// value of the lowest order. It returns false if t is empty.
func (it *Iterator[T]) First(t *Tree[T]) (T, bool) {
	it.tree = t
	it.node = nil

	if t != nil && t.root != nil {
		it.node = t.root.min()
	}

	return it.Current()
}

// Last binds the iterator to t and positions it on the
// value of the highest order. It returns false if t is empty.
func (it *Iterator[T]) Last(t *Tree[T]) (T, bool) {
	it.tree = t
	it.node = nil

	if t != nil && t.root != nil {
		it.node = t.root.max()
	}

	return it.Current()
}

// Next moves the iterator to the following value. It returns
// false once the iterator moves past the last value.
func (it *Iterator[T]) Next() (T, bool) {
	if it.node == nil {
		return it.First(it.tree)
	}

	it.node = it.node.successor()
	return it.Current()
}

// Prev moves the iterator to the preceding value. It returns
// false once the iterator moves past the first value.
func (it *Iterator[T]) Prev() (T, bool) {
	if it.node == nil {
		return it.Last(it.tree)
	}

	it.node = it.node.predecessor()
	return it.Current()
}

// Current returns the value the iterator is positioned on
func (it *Iterator[T]) Current() (T, bool) {
	if it.node == nil {
		var zero T
		return zero, false
	}

	return it.node.value, true
}
