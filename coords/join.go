// SPDX-License-Identifier: MIT

// Package coords - splitting and merging tuples along an axis partition.
//
// A Joiner holds a partition of the axes {0, …, n-1} into Selected axes
// (e.g. the axes being contracted or traced out) and Complement axes (the
// remaining ones). Split projects a full tuple onto the two groups; Join
// puts the two projections back. This is the index primitive behind
// contraction, partial trace and partial indexing of a multi-dimensional
// tensor; the tensor storage itself lives elsewhere.

package coords

// Joiner merges a complement-axes tuple and a selected-axes tuple into a
// full coordinate tuple, and splits a full tuple back.
//
// Invariant (caller contract): Selected ++ Complement is a permutation of
// {0, …, Rank()-1}. NewJoiner trusts it; JoinerFor verifies it once so
// that Join and Split can stay check-free in hot loops.
type Joiner struct {
	Selected   []int // positions in the full tuple that receive the selected coordinates
	Complement []int // positions in the full tuple that receive the group coordinates
}

// NewJoiner builds a Joiner from an explicit partition without validation.
// The slices are retained, not copied.
func NewJoiner(selected, complement []int) Joiner {
	return Joiner{Selected: selected, Complement: complement}
}

// JoinerFor builds a Joiner for n axes whose selected part is selected and
// whose complement is computed (ascending) by Complement.
//
// Errors:
//   - ErrBadSize when n < 0.
//   - ErrNotAPermutation when selected has duplicates, out-of-range values
//     or more than n entries.
//
// Complexity: O(n) time, O(n) space.
func JoinerFor(selected []int, n int) (Joiner, error) {
	complement, err := Complement(selected, n)
	if err != nil {
		return Joiner{}, coordsErrorf(ctxJoinerFor, err)
	}
	sel := make([]int, len(selected))
	copy(sel, selected)

	return Joiner{Selected: sel, Complement: complement}, nil
}

// Rank returns the length of a full tuple: len(Selected) + len(Complement).
func (j Joiner) Rank() int {
	return len(j.Selected) + len(j.Complement)
}

// Join returns the full tuple with group[i] at position Complement[i] and
// selected[i] at position Selected[i].
//
// Preconditions (not checked): len(group) == len(Complement),
// len(selected) == len(Selected), and the Joiner invariant holds. Violating
// them panics with an index error or leaves positions unset.
//
// Complexity: O(Rank()) time, O(Rank()) space.
func (j Joiner) Join(group, selected []int) []int {
	full := make([]int, j.Rank())
	for i, pos := range j.Complement {
		full[pos] = group[i]
	}
	for i, pos := range j.Selected {
		full[pos] = selected[i]
	}

	return full
}

// Split is the inverse of Join: it projects full onto the complement axes
// (group) and the selected axes, in partition order.
//
// Precondition (not checked): len(full) == Rank().
//
// Complexity: O(Rank()) time, O(Rank()) space.
func (j Joiner) Split(full []int) (group, selected []int) {
	group = make([]int, len(j.Complement))
	for i, pos := range j.Complement {
		group[i] = full[pos]
	}
	selected = make([]int, len(j.Selected))
	for i, pos := range j.Selected {
		selected[i] = full[pos]
	}

	return group, selected
}
