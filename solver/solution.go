// Package solver drives the exhaustive tiling enumeration and reduces
// completed boards to canonical representatives for deduplication.
package solver

import (
	"sort"

	"github.com/Phlosioneer/polyomino-generator/polyomino"
)

// Solution is the ordered shape sequence of one tiling, used as an
// equality- and order-comparable deduplication key.
type Solution []*polyomino.Polyomino

// Compare extends the shape total order lexicographically: shorter
// solutions first, then pairwise shape comparison, first difference
// deciding.
func (s Solution) Compare(other Solution) int {
	if len(s) != len(other) {
		return len(s) - len(other)
	}
	for i := range s {
		if c := polyomino.Compare(s[i], other[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether both sequences are identical.
func (s Solution) Equal(other Solution) bool {
	return s.Compare(other) == 0
}

// Set is an ordered, duplicate-free collection of solutions, kept sorted so
// membership is a binary search and insertion preserves the total order.
type Set struct {
	solutions []Solution
}

// NewSet creates an empty solution set.
func NewSet() *Set {
	return &Set{}
}

// Insert adds the solution if it is not already present and reports whether
// the set changed.
func (set *Set) Insert(s Solution) bool {
	i := sort.Search(len(set.solutions), func(i int) bool {
		return set.solutions[i].Compare(s) >= 0
	})
	if i < len(set.solutions) && set.solutions[i].Equal(s) {
		return false
	}
	set.solutions = append(set.solutions, nil)
	copy(set.solutions[i+1:], set.solutions[i:])
	set.solutions[i] = s
	return true
}

// Contains reports membership.
func (set *Set) Contains(s Solution) bool {
	i := sort.Search(len(set.solutions), func(i int) bool {
		return set.solutions[i].Compare(s) >= 0
	})
	return i < len(set.solutions) && set.solutions[i].Equal(s)
}

// Len reports the number of distinct solutions.
func (set *Set) Len() int {
	return len(set.solutions)
}

// Solutions returns the solutions in ascending order. The slice is shared;
// callers must not modify it.
func (set *Set) Solutions() []Solution {
	return set.solutions
}
