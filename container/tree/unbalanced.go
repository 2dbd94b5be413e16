package tree

// insertNode adds n into the subtree rooted at root by preserving the
// Binary Search Tree properties but without applying any balancing
// algorithm. Values that compare equal to a node are placed on its
// left subtree. It returns the root of the subtree, which only
// changes when root is nil
func insertNode[T any](cmp Lesser[T], root *Node[T], n *Node[T]) *Node[T] {
	if root == nil {
		return n
	}

	if cmp.Less(n.value, root.value) <= 0 {
		root.left = insertNode(cmp, root.left, n)
	} else {
		root.right = insertNode(cmp, root.right, n)
	}

	return root
}

// removeNode deletes the first node found on the path from root that
// compares equal to v. It returns the node that must take the place of
// root in its parent and whether a node was removed.
//
// A node with two children takes the value of its in order predecessor,
// which is then spliced out of the left subtree instead
func removeNode[T any](cmp Lesser[T], root *Node[T], v T) (*Node[T], bool) {
	if root == nil {
		return nil, false
	}

	var removed bool
	c := cmp.Less(v, root.value)

	switch {
	case c < 0:
		root.left, removed = removeNode(cmp, root.left, v)
		return root, removed
	case c > 0:
		root.right, removed = removeNode(cmp, root.right, v)
		return root, removed
	}

	switch {
	case root.left == nil:
		return root.right, true
	case root.right == nil:
		return root.left, true
	default:
		root.left, root.value = removeMax(root.left)
		return root, true
	}
}

// removeMax splices the node of the highest order out of the
// subtree and returns the new subtree root together with the value
// the spliced node held. The spliced node never has a right child
func removeMax[T any](root *Node[T]) (*Node[T], T) {
	if root.right == nil {
		return root.left, root.value
	}

	var v T
	root.right, v = removeMax(root.right)
	return root, v
}
