package tree

import "cmp"

// Node of a tree
type Node[T any] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// Value returns the element held by the node
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the node's left child
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// min returns the node in the subtree of the lowest order
func (n *Node[T]) min() *Node[T] {
	curr := n
	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// max returns the node in the subtree of the highest order
func (n *Node[T]) max() *Node[T] {
	curr := n
	for curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Tree represents an unbalanced binary search tree. How balanced the
// branches of the tree are depends exclusively on the order of the
// insert and remove operations performed on it.
//
// For every node, all the values in its left subtree compare lower
// or equal to the node's value and all the values in its right subtree
// compare strictly higher, so duplicates are allowed and always go left.
//
// A Tree must be created with New or NewOrdered, the zero value has
// no Lesser and panics with ErrNoLesser on Insert. A Tree is not safe
// for concurrent use. Callers that share a Tree between goroutines
// must synchronise access to it.
type Tree[T any] struct {
	root *Node[T]
	cmp  Lesser[T]
	len  int
}

// New creates a new empty tree that orders its values with cmp
func New[T any](cmp Lesser[T]) *Tree[T] {
	if cmp == nil {
		panic(ErrNoLesser)
	}

	return &Tree[T]{cmp: cmp}
}

// NewOrdered creates a new empty tree that orders its values
// by their natural order
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New[T](OrderedLesser[T]{})
}

// Len returns the number of nodes in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree. Nodes are owned by the tree and
// must not be retained across modifications
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Height returns the number of edges in the longest path from
// the root to a leaf. An empty tree has height -1 and a tree
// with a single node has height 0
func (t *Tree[T]) Height() int {
	height := -1
	if t.root == nil {
		return height
	}

	level := []*Node[T]{t.root}
	for len(level) > 0 {
		height++

		var next []*Node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}

		level = next
	}

	return height
}

// Min returns the lowest value in the tree. The boolean is
// false if the tree is empty
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	return t.root.min().value, true
}

// Max returns the highest value in the tree. The boolean is
// false if the tree is empty
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	return t.root.max().value, true
}

// Insert a value into the tree. Insert panics with ErrNilElement
// if v is nil
func (t *Tree[T]) Insert(v T) {
	if t.cmp == nil {
		panic(ErrNoLesser)
	}
	mustNotBeNil(v)

	t.root = insertNode(t.cmp, t.root, &Node[T]{value: v})
	t.len++
}

// Remove the first node on the path from the root that has a value
// equal to v. It returns false if no such node exists, in which
// case the tree is left untouched
func (t *Tree[T]) Remove(v T) bool {
	if isNil(v) {
		return false
	}

	root, removed := removeNode(t.cmp, t.root, v)
	if !removed {
		return false
	}

	t.root = root
	t.len--
	return true
}

// find returns the first node in the tree that contains a
// value equal to the one provided
func (t *Tree[T]) find(v T) *Node[T] {
	for curr := t.root; curr != nil; {
		c := t.cmp.Less(v, curr.value)
		switch {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr
		}
	}

	return nil
}

// Contains returns true if the tree contains at
// least one node with value v
func (t *Tree[T]) Contains(v T) bool {
	if isNil(v) {
		return false
	}

	return t.find(v) != nil
}

// Get returns the value stored in the tree that is equal to v. This
// is useful when the values carry more than the key they are ordered
// by. Get panics with ErrNilElement if v is nil
func (t *Tree[T]) Get(v T) (T, bool) {
	mustNotBeNil(v)

	n := t.find(v)
	if n == nil {
		var zero T
		return zero, false
	}

	return n.value, true
}

// Count returns the number of occurrences of v
// in the tree
func (t *Tree[T]) Count(v T) (count int) {
	for curr := t.root; curr != nil; {
		c := t.cmp.Less(v, curr.value)
		switch {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			// duplicates are always on the left, so the right
			// subtree can be ignored from here on
			count++
			curr = curr.left
		}
	}

	return count
}

// CountRange returns the number of values v in the tree such
// that min <= v <= max. Duplicates are counted once per node, so a
// value inserted twice counts twice. It returns 0 if min is
// higher than max
func (t *Tree[T]) CountRange(min, max T) int {
	if t.root == nil || t.cmp.Less(min, max) > 0 {
		return 0
	}

	return t.countRange(t.root, min, max)
}

func (t *Tree[T]) countRange(n *Node[T], min, max T) int {
	if n == nil {
		return 0
	}

	switch {
	case t.cmp.Less(n.value, min) < 0:
		return t.countRange(n.right, min, max)
	case t.cmp.Less(n.value, max) > 0:
		// values equal to n can only be on the left
		return t.countRange(n.left, min, max)
	default:
		return 1 + t.countRange(n.left, min, max) + t.countRange(n.right, min, max)
	}
}

// Higher returns the value in the tree that has the
// smallest order which is higher or equal than v
func (t *Tree[T]) Higher(v T) (T, bool) {
	var higher *Node[T]

	for curr := t.root; curr != nil; {
		if t.cmp.Less(v, curr.value) <= 0 {
			higher = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	if higher == nil {
		var zero T
		return zero, false
	}

	return higher.value, true
}

// Lower returns the value in the tree that has the
// highest order which is lower or equal than v
func (t *Tree[T]) Lower(v T) (T, bool) {
	var lower *Node[T]

	for curr := t.root; curr != nil; {
		if t.cmp.Less(v, curr.value) < 0 {
			curr = curr.left
		} else {
			lower = curr
			curr = curr.right
		}
	}

	if lower == nil {
		var zero T
		return zero, false
	}

	return lower.value, true
}
