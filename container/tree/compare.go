package tree

// Equals returns true if both trees have the same shape and every pair
// of nodes in the same position holds values that compare equal.
// Two empty trees are equal
func (t *Tree[T]) Equals(other *Tree[T]) bool {
	return t.equals(t.root, other.root)
}

func (t *Tree[T]) equals(a, b *Node[T]) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	case t.cmp.Less(a.value, b.value) != 0:
		return false
	default:
		return t.equals(a.left, b.left) && t.equals(a.right, b.right)
	}
}

// SameValues returns true if both trees hold the same values the same
// number of times, regardless of their shape. Both trees are walked in
// order at the same time and the walk stops at the first difference
func (t *Tree[T]) SameValues(other *Tree[T]) bool {
	it1 := newInOrderIterator(t.root)
	it2 := newInOrderIterator(other.root)

	for {
		v1, ok1 := it1.Next()
		v2, ok2 := it2.Next()

		switch {
		case !ok1 || !ok2:
			return ok1 == ok2
		case t.cmp.Less(v1, v2) != 0:
			return false
		}
	}
}
