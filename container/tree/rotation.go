package tree

// rotateSingle rotates the subtree rooted at n in direction dir.
// The child of n on the opposite side becomes the new root of
// the subtree, it is painted black and n is painted red. The
// caller is responsible for hanging the returned node from the
// former parent of n.
func rotateSingle[T any](n *node[T], dir int) *node[T] {
	target := n.link[1-dir]

	n.setLink(1-dir, target.link[dir])
	target.parent = n.parent
	target.setLink(dir, n)

	n.red = true
	target.red = false
	return target
}

// rotateDouble first rotates the child of n opposite to dir
// away from n and then rotates n in direction dir
func rotateDouble[T any](n *node[T], dir int) *node[T] {
	n.setLink(1-dir, rotateSingle(n.link[1-dir], 1-dir))
	return rotateSingle(n, dir)
}
