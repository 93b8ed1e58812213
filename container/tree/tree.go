package tree

// Tree represents a red black binary search tree. Values are
// ordered by the Lesser the tree is created with, and values
// the Lesser considers equal are stored only once.
//
// A Tree is not safe for concurrent use. Any Insert or Remove
// invalidates the position of the iterators over the tree.
type Tree[T any] struct {
	root    *node[T]
	cmp     Lesser[T]
	destroy func(T)
	free    *FreeList[T]
	len     int
}

// Len returns the number of values in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no values
func (t *Tree[T]) Empty() bool {
	return t.len == 0
}

// Insert a value into the tree. If the tree already holds a value
// equal to v, the tree is left unchanged and the value already
// held is returned instead of v. The boolean is false only when
// no node could be allocated for v, in which case the tree is
// left unchanged as well.
func (t *Tree[T]) Insert(v T) (T, bool) {
	if n := t.find(v); n != nil {
		return n.value, true
	}

	n := t.free.newNode(v)
	if n == nil {
		var zero T
		return zero, false
	}

	t.insert(n)
	t.len++
	return v, true
}

// Find returns the value in the tree equal to key
func (t *Tree[T]) Find(key T) (T, bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}

	var zero T
	return zero, false
}

// Contains returns true if the tree holds a value equal to key
func (t *Tree[T]) Contains(key T) bool {
	return t.find(key) != nil
}

func (t *Tree[T]) find(key T) *node[T] {
	for curr := t.root; curr != nil; {
		c := t.cmp.Less(curr.value, key)
		if c == 0 {
			return curr
		}

		if c < 0 {
			curr = curr.link[right]
		} else {
			curr = curr.link[left]
		}
	}

	return nil
}

// Remove the value equal to key from the tree. It returns false
// if there was no such value. The destroy function of the tree,
// if any, is called with the removed value.
func (t *Tree[T]) Remove(key T) bool {
	// the descent of remove recolors the path even when there is
	// nothing to remove
	if t.find(key) == nil {
		return false
	}

	removed, ok := t.remove(key)
	if !ok {
		return false
	}

	t.len--
	if t.destroy != nil {
		t.destroy(removed)
	}

	return true
}

// Destroy releases all the nodes of the tree, calling the destroy
// function of the tree, if any, once for every value it held. The
// values are visited in no particular order. The tree is left
// empty.
func (t *Tree[T]) Destroy() {
	curr := t.root

	// rotate left children up until the node at hand has no left
	// child, at which point it can be released and the walk goes
	// on with its right subtree
	for curr != nil {
		var next *node[T]

		if curr.link[left] == nil {
			next = curr.link[right]
			if t.destroy != nil {
				t.destroy(curr.value)
			}
			t.free.freeNode(curr)
		} else {
			next = curr.link[left]
			curr.link[left] = next.link[right]
			next.link[right] = curr
		}

		curr = next
	}

	t.root = nil
	t.len = 0
}

// Min returns the value in the tree with the lowest order
func (t *Tree[T]) Min() (T, bool) {
	var it Iterator[T]
	return it.First(t)
}

// Max returns the value in the tree with the highest order
func (t *Tree[T]) Max() (T, bool) {
	var it Iterator[T]
	return it.Last(t)
}

// Ascend calls fn for every value in the tree in increasing
// order until fn returns false
func (t *Tree[T]) Ascend(fn func(T) bool) {
	var it Iterator[T]
	for v, ok := it.First(t); ok; v, ok = it.Next() {
		if !fn(v) {
			return
		}
	}
}

// Descend calls fn for every value in the tree in decreasing
// order until fn returns false
func (t *Tree[T]) Descend(fn func(T) bool) {
	var it Iterator[T]
	for v, ok := it.Last(t); ok; v, ok = it.Prev() {
		if !fn(v) {
			return
		}
	}
}

// Values returns all the values of the tree in increasing order
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.len)
	t.Ascend(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}
