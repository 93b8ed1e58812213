package tree

// TreeOpts are the options to configure a red black tree
type TreeOpts[T any] struct {
	// Destroy, if set, is called once with every value that leaves
	// the tree through Remove or Destroy. The tree takes over the
	// responsibility of disposing the values it holds.
	Destroy func(T)

	// FreeList used to allocate the nodes of the tree. If nil, the
	// tree creates its own unbounded free list
	FreeList *FreeList[T]
}

// NewRedBlackTree creates a new instance of a tree whose
// branches are balanced using the red black node algorithm
func NewRedBlackTree[T any](cmp Lesser[T]) *Tree[T] {
	return NewRedBlackTreeWithOpts(cmp, TreeOpts[T]{})
}

// NewRedBlackTreeWithOpts creates a new red black tree with the
// specified options
func NewRedBlackTreeWithOpts[T any](cmp Lesser[T], opts TreeOpts[T]) *Tree[T] {
	if opts.FreeList == nil {
		opts.FreeList = NewFreeList[T](DefaultFreeListSize)
	}

	return &Tree[T]{
		cmp:     cmp,
		destroy: opts.Destroy,
		free:    opts.FreeList,
	}
}

// insert n top down. Every node found on the way with two red
// children is flipped, and any red violation this creates with its
// parent is fixed right away with a rotation around the grandparent,
// so no pass back up to the root is needed. The tree must not
// hold a value equal to the one of n.
func (t *Tree[T]) insert(n *node[T]) {
	if t.root == nil {
		t.setRoot(n)
		return
	}

	// head is a fake parent of the root so that rotations around
	// the root need no special case
	var head node[T]
	var g, p *node[T]
	gg := &head
	head.setLink(right, t.root)

	inserted := false
	q := t.root
	dir, last := left, left

	for {
		if q == nil {
			q = n
			p.setLink(dir, q)
			inserted = true
		} else if isRed(q.link[left]) && isRed(q.link[right]) {
			q.red = true
			q.link[left].red = false
			q.link[right].red = false
		}

		if isRed(q) && isRed(p) {
			dir2 := gg.childDir(g)

			if q == p.link[last] {
				gg.setLink(dir2, rotateSingle(g, 1-last))
			} else {
				gg.setLink(dir2, rotateDouble(g, 1-last))
			}
		}

		if inserted {
			break
		}

		last = dir
		dir = left
		if t.cmp.Less(q.value, n.value) < 0 {
			dir = right
		}

		if g != nil {
			gg = g
		}

		g, p = p, q
		q = q.link[dir]
	}

	t.setRoot(head.link[right])
}

// remove the node holding a value equal to key top down. On the
// way down a red node is pushed along the search path so that the
// node finally unlinked is red or has a red child, which keeps the
// black height untouched. The matching node takes the value of its
// in order successor and the successor node is the one unlinked.
// It returns the removed value and true, or false if no value
// equals key.
func (t *Tree[T]) remove(key T) (removed T, ok bool) {
	if t.root == nil {
		return removed, false
	}

	var head node[T]
	var g, p, f *node[T]
	q := &head
	dir := right
	head.setLink(right, t.root)

	for q.link[dir] != nil {
		last := dir

		g, p = p, q
		q = q.link[dir]

		c := t.cmp.Less(q.value, key)
		if c == 0 {
			f = q
		}

		// past the match keep going right and then left
		// to reach its in order successor
		dir = left
		if c <= 0 {
			dir = right
		}

		if isRed(q) || isRed(q.link[dir]) {
			continue
		}

		if isRed(q.link[1-dir]) {
			r := rotateSingle(q, dir)
			p.setLink(last, r)
			p = r
			continue
		}

		s := p.link[1-last]
		if s == nil {
			continue
		}

		if !isRed(s.link[left]) && !isRed(s.link[right]) {
			p.red = false
			s.red = true
			q.red = true
			continue
		}

		dir2 := g.childDir(p)
		if isRed(s.link[last]) {
			g.setLink(dir2, rotateDouble(p, last))
		} else {
			g.setLink(dir2, rotateSingle(p, last))
		}

		sub := g.link[dir2]
		q.red = true
		sub.red = true
		sub.link[left].red = false
		sub.link[right].red = false
	}

	if f != nil {
		removed, ok = f.value, true
		f.value = q.value

		child := q.link[left]
		if child == nil {
			child = q.link[right]
		}

		p.setLink(p.childDir(q), child)
		t.free.freeNode(q)
	}

	t.setRoot(head.link[right])
	return removed, ok
}

// setRoot installs r as the root of the tree, detaching it
// from any temporary head and painting it black
func (t *Tree[T]) setRoot(r *node[T]) {
	t.root = r
	if r != nil {
		r.parent = nil
		r.red = false
	}
}
