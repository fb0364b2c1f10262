// SPDX-License-Identifier: MIT

package coords

// IsPermutation reports whether a contains each of 0..len(a)-1 exactly once.
func IsPermutation(a []int) bool {
	return IsPermutationOf(a, len(a))
}

// IsPermutationOf reports whether a is a permutation of {0, …, n-1}:
// len(a) == n and every value in [0, n) occurs exactly once.
//
// Implementation:
//   - Count occurrences into n buckets. Each value is range-checked before
//     it is used as a bucket index, so negative or too-large values are
//     rejected instead of indexing outside the buckets.
//   - With len(a) == n, "no value seen twice" is equivalent to "every
//     bucket non-zero".
//
// Complexity: O(n) time, O(n) space.
func IsPermutationOf(a []int, n int) bool {
	if n < 0 || len(a) != n {
		return false
	}

	seen := make([]bool, n)
	for _, v := range a {
		if v < 0 || v >= n {
			return false
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Complement returns, in ascending order, every value of {0, …, n-1} that
// does not occur in indices.
//
// Implementation:
//   - Stage 1: mark in-range members of indices.
//   - Stage 2: collect unmarked values in ascending order.
//   - Stage 3: require indices ++ complement to be a permutation of
//     {0, …, n-1}; this rejects duplicates, out-of-range values and
//     more than n indices.
//
// Errors:
//   - ErrBadSize when n < 0.
//   - ErrNotAPermutation when the closure check of Stage 3 fails.
//
// Example:
//
//	Complement([]int{1, 3}, 5) → [0 2 4]
//
// Complexity: O(n + len(indices)) time, O(n) space.
func Complement(indices []int, n int) ([]int, error) {
	if n < 0 {
		return nil, coordsErrorf(ctxComplement, ErrBadSize)
	}

	present := make([]bool, n)
	for _, v := range indices {
		if v >= 0 && v < n {
			present[v] = true
		}
	}

	var (
		complement = make([]int, 0, n)
		i          int
	)
	for i = 0; i < n; i++ {
		if !present[i] {
			complement = append(complement, i)
		}
	}

	all := make([]int, 0, len(indices)+len(complement))
	all = append(all, indices...)
	all = append(all, complement...)
	if !IsPermutationOf(all, n) {
		return nil, coordsErrorf(ctxComplement, ErrNotAPermutation)
	}

	return complement, nil
}

// Permute reorders values by order: out[i] = values[order[i]].
// Used to transpose coordinate or size tuples along with a tensor's axes.
//
// Errors:
//   - ErrNotAPermutation unless order is a permutation of {0, …, len(values)-1}.
//
// Complexity: O(n) time, O(n) space.
func Permute(values, order []int) ([]int, error) {
	if !IsPermutationOf(order, len(values)) {
		return nil, coordsErrorf(ctxPermute, ErrNotAPermutation)
	}

	out := make([]int, len(values))
	for i, src := range order {
		out[i] = values[src]
	}

	return out, nil
}
