package tree

// inOrderIterator yields the values of a subtree in order. It keeps
// the path to the next node on an explicit stack, so deep unbalanced
// trees can be walked without recursion
type inOrderIterator[T any] struct {
	stack []*Node[T]
}

func newInOrderIterator[T any](root *Node[T]) *inOrderIterator[T] {
	it := &inOrderIterator[T]{}
	it.pushLeft(root)
	return it
}

func (it *inOrderIterator[T]) pushLeft(n *Node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

// Next returns the next value in order. The boolean is false
// once the iterator is exhausted
func (it *inOrderIterator[T]) Next() (T, bool) {
	if len(it.stack) == 0 {
		var zero T
		return zero, false
	}

	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)
	return n.value, true
}

// InOrderWalk visits the values of the tree in order: left
// subtree, node, right subtree
func (t *Tree[T]) InOrderWalk(fn func(T)) {
	it := newInOrderIterator(t.root)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fn(v)
	}
}

// PreOrderWalk visits the values of the tree in pre order: node,
// left subtree, right subtree
func (t *Tree[T]) PreOrderWalk(fn func(T)) {
	if t.root == nil {
		return
	}

	stack := []*Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n.value)

		// right goes first so that the left subtree is visited first
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

// PostOrderWalk visits the values of the tree in post order: left
// subtree, right subtree, node
func (t *Tree[T]) PostOrderWalk(fn func(T)) {
	var (
		stack []*Node[T]
		last  *Node[T]
	)

	for curr := t.root; curr != nil || len(stack) > 0; {
		if curr != nil {
			stack = append(stack, curr)
			curr = curr.left
			continue
		}

		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			curr = top.right
			continue
		}

		fn(top.value)
		last = top
		stack = stack[:len(stack)-1]
	}
}

// LevelOrderWalk visits the nodes of the tree breadth first, from
// left to right within a level. fn must not retain the nodes
func (t *Tree[T]) LevelOrderWalk(fn func(*Node[T])) {
	LevelOrder(t.root, fn)
}

// LevelOrder visits the nodes of the subtree rooted at root
// breadth first, from left to right within a level
func LevelOrder[T any](root *Node[T], fn func(*Node[T])) {
	if root == nil {
		return
	}

	queue := []*Node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		fn(n)

		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
}

func (t *Tree[T]) collect(walk func(func(T))) []T {
	values := make([]T, 0, t.len)
	walk(func(v T) {
		values = append(values, v)
	})

	return values
}

// Preorder returns a fresh slice with the values of the tree in pre order
func (t *Tree[T]) Preorder() []T {
	return t.collect(t.PreOrderWalk)
}

// Inorder returns a fresh slice with the values of the tree in order
func (t *Tree[T]) Inorder() []T {
	return t.collect(t.InOrderWalk)
}

// Postorder returns a fresh slice with the values of the tree in post order
func (t *Tree[T]) Postorder() []T {
	return t.collect(t.PostOrderWalk)
}
