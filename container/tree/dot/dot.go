// Package dot renders trees in the Graphviz DOT language so that
// their shape can be inspected while debugging
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/ihilario9/Binary-Search-Tree/container/tree"
)

// Encode writes a directed graph of the subtree rooted at root to w.
// Nodes are listed breadth first and every absent child is rendered
// as a point so the left and right positions can be told apart
func Encode[T any](w io.Writer, root *tree.Node[T]) error {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString("graph [ordering=\"out\"];\n")

	// ids follow the breadth first order, so the children of the
	// node being visited get the next ids not handed out yet
	visited, nextID, sentinels := 0, 1, 0
	tree.LevelOrder(root, func(n *tree.Node[T]) {
		id := visited
		visited++

		fmt.Fprintf(&sb, "n%d [label=%q];\n", id, fmt.Sprint(n.Value()))

		for _, child := range []*tree.Node[T]{n.Left(), n.Right()} {
			if child == nil {
				fmt.Fprintf(&sb, "null%d [shape=point];\n", sentinels)
				fmt.Fprintf(&sb, "n%d -> null%d;\n", id, sentinels)
				sentinels++
				continue
			}

			fmt.Fprintf(&sb, "n%d -> n%d;\n", id, nextID)
			nextID++
		}
	})

	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// EncodeTree writes a directed graph of the whole tree to w
func EncodeTree[T any](w io.Writer, t *tree.Tree[T]) error {
	return Encode(w, t.Root())
}
