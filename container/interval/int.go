package interval

import (
	"fmt"

	"github.com/ihilario9/Binary-Search-Tree/container/tree"
)

// byLo orders intervals by their lower bound only. Intervals
// kept in an IntSet are disjoint, so no two of them share
// the same lower bound
var byLo = tree.LesserFunc[Int](func(a, b Int) int {
	return tree.OrderedLesser[int]{}.Less(a.lo, b.lo)
})

// Int is a closed range of integers [lo, hi]. The zero value
// is the single point [0, 0]
type Int struct {
	lo int
	hi int
}

// NewInt creates the interval [lo, hi]. It panics if lo > hi
func NewInt(lo, hi int) Int {
	if lo > hi {
		panic(fmt.Sprintf("interval: lower bound %d above upper bound %d", lo, hi))
	}

	return Int{lo: lo, hi: hi}
}

// Point creates the interval [v, v]
func Point(v int) Int {
	return Int{lo: v, hi: v}
}

// Lo is the lower bound
func (i Int) Lo() int {
	return i.lo
}

// Hi is the upper bound
func (i Int) Hi() int {
	return i.hi
}

// Len is the number of integers in the interval
func (i Int) Len() int {
	return i.hi - i.lo + 1
}

func (i Int) String() string {
	return fmt.Sprintf("[%d, %d]", i.lo, i.hi)
}

// Covers returns true if every integer of j is also in i
func (i Int) Covers(j Int) bool {
	return i.lo <= j.lo && j.hi <= i.hi
}

// Overlaps returns true if i and j have at least one integer in common
func (i Int) Overlaps(j Int) bool {
	return i.lo <= j.hi && j.lo <= i.hi
}

// Touches returns true if i and j overlap or one starts right
// after the other ends, e.g. [1, 3] and [4, 6]
func (i Int) Touches(j Int) bool {
	return i.lo <= j.hi+1 && j.lo <= i.hi+1
}

// Intersect returns the integers common to i and j. The
// boolean is false if they do not overlap
func (i Int) Intersect(j Int) (Int, bool) {
	if !i.Overlaps(j) {
		return Int{}, false
	}

	return Int{lo: max(i.lo, j.lo), hi: min(i.hi, j.hi)}, true
}

// Span returns the smallest interval covering i and j. It panics
// if i and j do not touch, since the result would include
// integers that are in neither
func (i Int) Span(j Int) Int {
	if !i.Touches(j) {
		panic(fmt.Sprintf("interval: %s and %s do not touch", i, j))
	}

	return Int{lo: min(i.lo, j.lo), hi: max(i.hi, j.hi)}
}

// IntSet is a set of integers stored as disjoint intervals, ordered
// by their lower bound. Inserting an interval that touches the ones
// already stored replaces all of them with their span, so the set
// never holds two intervals that could be joined.
//
// It suits tracking acknowledged offsets: [1, 3] and [5, 5] become
// [1, 5] once 4 is inserted.
type IntSet struct {
	intervals *tree.Tree[Int]
}

// NewIntSet creates an empty set
func NewIntSet() *IntSet {
	return &IntSet{intervals: tree.New[Int](byLo)}
}

// Len returns the number of disjoint intervals in the set
func (s *IntSet) Len() int {
	return s.intervals.Len()
}

// Intervals returns the intervals of the set ordered by lower bound
func (s *IntSet) Intervals() []Int {
	return s.intervals.Inorder()
}

// Contains returns true if all the integers of i are in the set
func (s *IntSet) Contains(i Int) bool {
	// only the interval starting at or before i can cover it
	prev, ok := s.intervals.Lower(i)
	return ok && prev.Covers(i)
}

// Insert adds all the integers of i to the set
func (s *IntSet) Insert(i Int) {
	if prev, ok := s.intervals.Lower(i); ok && prev.Touches(i) {
		s.mustRemove(prev)
		i = i.Span(prev)
	}

	for {
		next, ok := s.intervals.Higher(i)
		if !ok || !next.Touches(i) {
			break
		}

		s.mustRemove(next)
		i = i.Span(next)
	}

	s.intervals.Insert(i)
}

func (s *IntSet) mustRemove(i Int) {
	if !s.intervals.Remove(i) {
		panic(fmt.Sprintf("interval: %s missing from set", i))
	}
}
