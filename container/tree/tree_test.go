package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const treeMaxValue = 10

type balancedTreeGenerator struct {
	level uint
	index uint

	// Highest sets the maximum value an element can have
	Highest uint
}

// Next returns the values of a balanced tree with values in
// [0, Highest] level by level
func (g *balancedTreeGenerator) Next() (int, bool) {
	if (math.Pow(2, float64(g.level)) + float64(g.index)) > float64(g.Highest) {
		return 0, false
	}

	levelElements := uint(math.Pow(2, float64(g.level)))
	value := (g.Highest * (2*g.index + 1)) / (2 * levelElements)

	g.index += 1
	if g.index >= levelElements {
		g.index = 0
		g.level += 1
	}

	return int(value), true
}

func levels[T any](tree *Tree[T]) [][]*Node[T] {
	result := [][]*Node[T]{{tree.root}}
	currLevel := 0

	for {
		nels := int(math.Pow(2, float64(currLevel+1)))
		result = append(result, make([]*Node[T], nels))
		nodesAdded := 0

		for i := 0; i < nels/2; i++ {
			if result[currLevel][i] == nil {
				result[currLevel+1][2*i] = nil
				result[currLevel+1][2*i+1] = nil
			} else {
				nodesAdded += 1
				result[currLevel+1][2*i] = result[currLevel][i].left
				result[currLevel+1][2*i+1] = result[currLevel][i].right
			}
		}

		currLevel += 1
		if nodesAdded == 0 {
			break
		}
	}

	// the last level is empty so it can be removed
	return result[:currLevel-1]
}

func assertEqualTree[T any](t *testing.T, expected [][]interface{}, tree *Tree[T]) {
	levels := levels(tree)
	assert.Equal(t, len(expected), len(levels))
	for level := 0; level < len(expected) && level < len(levels); level++ {
		assert.Equal(t, len(expected[level]), len(levels[level]))
		for col := 0; col < len(expected[level]) && col < len(levels[level]); col++ {
			if expected[level][col] == nil {
				assert.Nil(t, levels[level][col])
			} else if assert.NotNil(t, levels[level][col]) {
				assert.Equal(t, expected[level][col], levels[level][col].value)
			}
		}
	}
}

// assertOrdered checks that every node is higher or equal than all the
// values on its left subtree and strictly lower than all the values on
// its right subtree
func assertOrdered[T any](t *testing.T, tree *Tree[T]) {
	var check func(n *Node[T]) int
	check = func(n *Node[T]) int {
		if n == nil {
			return 0
		}

		walk(n.left, func(v T) {
			assert.LessOrEqual(t, tree.cmp.Less(v, n.value), 0,
				"left value %v higher than %v", v, n.value)
		})
		walk(n.right, func(v T) {
			assert.Greater(t, tree.cmp.Less(v, n.value), 0,
				"right value %v not higher than %v", v, n.value)
		})

		return 1 + check(n.left) + check(n.right)
	}

	assert.Equal(t, tree.Len(), check(tree.root))
}

func walk[T any](n *Node[T], fn func(T)) {
	(&Tree[T]{root: n}).PreOrderWalk(fn)
}

func prePopulateTree(tree *Tree[int]) {
	if tree.Len() != 0 {
		panic("attempt to prepopulate non-emtpy tree")
	}
	it := balancedTreeGenerator{Highest: treeMaxValue}
	for {
		value, ok := it.Next()
		if !ok {
			break
		}

		tree.Insert(value)
	}
}

func prePopulatedTree() *Tree[int] {
	tree := NewOrdered[int]()
	prePopulateTree(tree)
	return tree
}

func stringTree(values ...string) *Tree[string] {
	tree := NewOrdered[string]()
	for _, v := range values {
		tree.Insert(v)
	}

	return tree
}

func TestTreeRootNil(t *testing.T) {
	tree := NewOrdered[int]()
	assert.Nil(t, tree.Root())
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
}

func TestTreeRootNode(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(1)
	assert.Equal(t, 1, tree.Root().Value())
	assert.Nil(t, tree.Root().Left())
	assert.Nil(t, tree.Root().Right())
	assert.False(t, tree.Empty())
	assert.Equal(t, 1, tree.Len())
}

func TestTreeNewNilLesserPanics(t *testing.T) {
	assert.PanicsWithValue(t, ErrNoLesser, func() {
		New[int](nil)
	})
}

func TestTreeZeroValueInsertPanics(t *testing.T) {
	var tree Tree[int]

	assert.PanicsWithValue(t, ErrNoLesser, func() {
		tree.Insert(1)
	})
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
}

func TestTreeZeroValueReads(t *testing.T) {
	var tree Tree[int]

	assert.False(t, tree.Contains(1))
	assert.False(t, tree.Remove(1))
	assert.Equal(t, 0, tree.Count(1))
	assert.Equal(t, 0, tree.CountRange(0, 10))
	assert.Equal(t, -1, tree.Height())
	assert.Empty(t, tree.Inorder())
}

func TestTreeHeightEmpty(t *testing.T) {
	assert.Equal(t, -1, NewOrdered[string]().Height())
}

func TestTreeHeightSingleNode(t *testing.T) {
	assert.Equal(t, 0, stringTree("a").Height())
}

func TestTreeHeightBalanced(t *testing.T) {
	tree := stringTree("d", "b", "f", "a", "c", "e", "g")
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, 7, tree.Len())
}

func TestTreeHeightDegenerate(t *testing.T) {
	tree := stringTree("a", "b", "c", "d", "e", "f", "g")
	assert.Equal(t, 6, tree.Height())
}

func TestTreeHeightMultiLevel(t *testing.T) {
	assert.Equal(t, 4, prePopulatedTree().Height())
}

func TestTreeMinOK(t *testing.T) {
	v, ok := prePopulatedTree().Min()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestTreeMinEmpty(t *testing.T) {
	v, ok := NewOrdered[int]().Min()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestTreeMaxOK(t *testing.T) {
	v, ok := prePopulatedTree().Max()
	assert.True(t, ok)
	assert.Equal(t, 8, v)
}

func TestTreeMaxEmpty(t *testing.T) {
	v, ok := NewOrdered[string]().Max()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestTreeContains(t *testing.T) {
	tree := prePopulatedTree()

	for _, v := range []int{0, 1, 2, 3, 5, 6, 7, 8} {
		assert.True(t, tree.Contains(v), "expected %d", v)
	}
	for _, v := range []int{-1, 4, 9, 1000} {
		assert.False(t, tree.Contains(v), "unexpected %d", v)
	}
}

func TestTreeCount(t *testing.T) {
	tree := prePopulatedTree()

	assert.Equal(t, 2, tree.Count(1))
	assert.Equal(t, 2, tree.Count(3))
	assert.Equal(t, 1, tree.Count(5))
	assert.Equal(t, 0, tree.Count(4))
}

type keyed struct {
	key     string
	payload int
}

func keyedLesser() Lesser[*keyed] {
	return LesserFunc[*keyed](func(a, b *keyed) int {
		return OrderedLesser[string]{}.Less(a.key, b.key)
	})
}

func TestTreeGetReturnsStoredValue(t *testing.T) {
	tree := New(keyedLesser())
	stored := &keyed{key: "b", payload: 42}
	tree.Insert(&keyed{key: "a", payload: 1})
	tree.Insert(stored)

	v, ok := tree.Get(&keyed{key: "b"})
	assert.True(t, ok)
	assert.Same(t, stored, v)
	assert.Equal(t, 42, v.payload)
}

func TestTreeGetNotFound(t *testing.T) {
	tree := New(keyedLesser())
	tree.Insert(&keyed{key: "a"})

	v, ok := tree.Get(&keyed{key: "z"})
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestTreeInsertNilPanics(t *testing.T) {
	tree := New(keyedLesser())
	tree.Insert(&keyed{key: "a"})

	assert.PanicsWithValue(t, ErrNilElement, func() {
		tree.Insert(nil)
	})
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 0, tree.Height())
}

func TestTreeGetNilPanics(t *testing.T) {
	tree := New(keyedLesser())

	assert.PanicsWithValue(t, ErrNilElement, func() {
		tree.Get(nil)
	})
}

func TestTreeContainsAndRemoveNil(t *testing.T) {
	tree := New(keyedLesser())
	tree.Insert(&keyed{key: "a"})

	assert.False(t, tree.Contains(nil))
	assert.False(t, tree.Remove(nil))
	assert.Equal(t, 1, tree.Len())
}

func TestTreeCountRange(t *testing.T) {
	tree := stringTree("a", "b", "c", "d", "e", "f", "g")

	assert.Equal(t, 7, tree.CountRange("a", "g"))
	assert.Equal(t, 4, tree.CountRange("c", "f"))
	assert.Equal(t, 1, tree.CountRange("c", "c"))
	assert.Equal(t, 0, tree.CountRange("f", "c"))
	assert.Equal(t, 0, tree.CountRange("h", "z"))
	assert.Equal(t, 7, tree.CountRange("", "zz"))
}

func TestTreeCountRangeDuplicates(t *testing.T) {
	tree := prePopulatedTree()

	assert.Equal(t, 10, tree.CountRange(0, 8))
	assert.Equal(t, 5, tree.CountRange(1, 3))
	assert.Equal(t, 0, tree.CountRange(4, 4))
	assert.Equal(t, 0, NewOrdered[int]().CountRange(0, 10))
}

func TestTreeCountRangeCountsEveryNode(t *testing.T) {
	tree := NewOrdered[string]()
	for _, v := range []string{"c", "b", "c", "a", "c", "d"} {
		tree.Insert(v)
	}

	assert.Equal(t, 3, tree.CountRange("c", "c"))
	assert.Equal(t, 4, tree.CountRange("b", "c"))
	assert.Equal(t, 6, tree.CountRange("a", "d"))
	assert.Equal(t, 0, tree.CountRange("d", "a"))
}

func TestTreeHigher(t *testing.T) {
	tree := prePopulatedTree()

	for _, c := range []struct{ v, expected int }{
		{4, 5}, {5, 5}, {6, 6}, {7, 7}, {8, 8}, {-1, 0},
	} {
		v, ok := tree.Higher(c.v)
		assert.True(t, ok)
		assert.Equal(t, c.expected, v)
	}

	_, ok := tree.Higher(9)
	assert.False(t, ok)
}

func TestTreeLower(t *testing.T) {
	tree := prePopulatedTree()

	for _, c := range []struct{ v, expected int }{
		{5, 5}, {4, 3}, {3, 3}, {2, 2}, {1, 1}, {0, 0}, {100, 8},
	} {
		v, ok := tree.Lower(c.v)
		assert.True(t, ok)
		assert.Equal(t, c.expected, v)
	}

	_, ok := tree.Lower(-1)
	assert.False(t, ok)
}
