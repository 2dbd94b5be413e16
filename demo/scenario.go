package demo

import (
	"bytes"

	"github.com/ihilario9/Binary-Search-Tree/container/tree"
	"github.com/ihilario9/Binary-Search-Tree/container/tree/dot"
)

// Scenario builds a fresh tree with Elements and removes Remove from it
type Scenario struct {
	Elements []string
	Remove   string
}

// Report is the outcome of running a Scenario
type Report struct {
	Scenario Scenario

	Preorder  []string
	Inorder   []string
	Postorder []string

	// Removed is true if Remove was found in the tree
	Removed bool

	// After is the in order walk once Remove has been removed
	After []string

	// Graph is the DOT rendering of the tree after the removal
	Graph string
}

func buildTree(elements []string) *tree.Tree[string] {
	t := tree.NewOrdered[string]()
	for _, e := range elements {
		t.Insert(e)
	}

	return t
}

// Run runs the scenario on a tree that nothing else can reach, so
// scenarios can safely run at the same time
func (s Scenario) Run() (Report, error) {
	t := buildTree(s.Elements)

	report := Report{
		Scenario:  s,
		Preorder:  t.Preorder(),
		Inorder:   t.Inorder(),
		Postorder: t.Postorder(),
	}

	report.Removed = t.Remove(s.Remove)
	report.After = t.Inorder()

	var buf bytes.Buffer
	if err := dot.EncodeTree(&buf, t); err != nil {
		return Report{}, err
	}
	report.Graph = buf.String()

	return report, nil
}

// RangeCount is the number of elements found within Range
type RangeCount struct {
	Range Range
	Count int
}

// Summary describes a tree built with all the elements
type Summary struct {
	Size     int
	Height   int
	Min, Max string
	Ranges   []RangeCount
}

// Summarize builds a tree with elements and reports its size,
// height, extremes and the number of elements within each range
func Summarize(elements []string, ranges []Range) Summary {
	t := buildTree(elements)

	summary := Summary{Size: t.Len(), Height: t.Height()}
	summary.Min, _ = t.Min()
	summary.Max, _ = t.Max()

	for _, r := range ranges {
		summary.Ranges = append(summary.Ranges, RangeCount{
			Range: r,
			Count: t.CountRange(r.Min, r.Max),
		})
	}

	return summary
}
