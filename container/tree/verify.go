package tree

import (
	"github.com/eaugeas/ordtree/errors"
)

// Error codes of the violations reported by Verify
const (
	ErrCodeRedRoot = iota + 1
	ErrCodeRedViolation
	ErrCodeBlackHeight
	ErrCodeParentLink
	ErrCodeOrder
	ErrCodeLen
)

// Verify checks that the tree holds every red black tree
// property, that the parent links match the child links, that
// the values are strictly ordered and that Len matches the
// number of nodes. It returns an *errors.Error describing the
// first violation found.
func (t *Tree[T]) Verify() error {
	if t.root == nil {
		if t.len != 0 {
			return errors.Newf(ErrCodeLen, "empty tree with len %d", t.len)
		}
		return nil
	}

	if t.root.red {
		return errors.New(ErrCodeRedRoot, "root is red")
	}

	if t.root.parent != nil {
		return errors.New(ErrCodeParentLink, "root has a parent")
	}

	count := 0
	if _, err := t.verify(t.root, &count); err != nil {
		return err
	}

	var prev *node[T]
	for curr := t.root.min(); curr != nil; curr = curr.successor() {
		if prev != nil && t.cmp.Less(prev.value, curr.value) >= 0 {
			return errors.Newf(ErrCodeOrder, "value %v is not lower than %v", prev.value, curr.value)
		}
		prev = curr
	}

	if count != t.len {
		return errors.Newf(ErrCodeLen, "tree has %d nodes but len %d", count, t.len)
	}

	return nil
}

// verify returns the black height of the subtree rooted at n
func (t *Tree[T]) verify(n *node[T], count *int) (int, error) {
	if n == nil {
		return 1, nil
	}
	*count++

	for _, c := range n.link {
		if c == nil {
			continue
		}

		if c.parent != n {
			return 0, errors.Newf(ErrCodeParentLink, "node %v does not link back to %v", c.value, n.value)
		}

		if n.red && c.red {
			return 0, errors.Newf(ErrCodeRedViolation, "red node %v has red child %v", n.value, c.value)
		}
	}

	lh, err := t.verify(n.link[left], count)
	if err != nil {
		return 0, err
	}

	rh, err := t.verify(n.link[right], count)
	if err != nil {
		return 0, err
	}

	if lh != rh {
		return 0, errors.Newf(ErrCodeBlackHeight, "node %v has black heights %d and %d", n.value, lh, rh)
	}

	if n.red {
		return lh, nil
	}
	return lh + 1, nil
}

// Height returns the number of nodes on the longest path from
// the root to a leaf
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.link[left]), height(n.link[right]))
}
