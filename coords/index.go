// SPDX-License-Identifier: MIT

// Package coords - linear index ↔ coordinate tuple bijection.
//
// Digit order (fixed, part of the external contract):
//   - Mixed radix, big-endian: the FIRST dimension is the most significant
//     and varies slowest; the LAST dimension varies fastest.
//   - For sizes [2,3] the linear order is
//     [0,0] [0,1] [0,2] [1,0] [1,1] [1,2]  →  0 1 2 3 4 5.
//
// Both kernels walk dimensions from least significant (last) to most
// significant (first). FromIndex and ToIndex are exact inverses on
// [0, Volume(sizes)) × valid tuples.
//
// Complexity quicksheet:
//   - Volume, FromIndex, ToIndex: O(n) in the number of dimensions.

package coords

// Volume returns the number of elements addressed by sizes, i.e. the product
// of all dimension sizes. The empty tuple has volume 1.
// Volume itself does not check for int overflow; ValidateSizes rejects
// sizes whose product would overflow, and FromIndex calls it first.
func Volume(sizes []int) int {
	var v = 1
	for _, s := range sizes {
		v *= s
	}

	return v
}

// FromIndex decodes a linear index into its coordinate tuple for sizes.
//
// Implementation:
//   - Stage 1: validate sizes (all ≥ 1, product fits in an int) and
//     0 <= index < Volume(sizes).
//   - Stage 2: for i = n-1 … 0: coords[i] = index mod sizes[i]; index /= sizes[i].
//     Writing from the back fills the tuple already in dimension order.
//
// Errors:
//   - ErrBadSize if any size is < 1 (a zero size would divide by zero), or
//     if Volume(sizes) overflows int (a wrapped volume would misjudge bounds).
//   - ErrOutOfBounds if index is negative or ≥ Volume(sizes); an overflowing
//     index is rejected rather than wrapped onto a valid-looking tuple.
//
// Example:
//
//	FromIndex(5, []int{2, 3}) → [1 2]
//
// Complexity: O(n) time, O(n) space (the result).
func FromIndex(index int, sizes []int) ([]int, error) {
	if err := ValidateSizes(sizes); err != nil {
		return nil, coordsErrorf(ctxFromIndex, err)
	}
	if index < 0 || index >= Volume(sizes) {
		return nil, coordsErrorf(ctxFromIndex, ErrOutOfBounds)
	}

	var (
		coords = make([]int, len(sizes))
		i      int
	)
	for i = len(sizes) - 1; i >= 0; i-- {
		coords[i] = index % sizes[i]
		index /= sizes[i]
	}

	return coords, nil
}

// ToIndex encodes a coordinate tuple into its linear index for sizes.
//
// Implementation:
//   - Walk i = n-1 … 0 accumulating index += factor·coords[i], then factor *= sizes[i].
//
// Behavior highlights:
//   - Only lengths are validated. Component bounds are the caller's contract:
//     use CheckCompatibility first for untrusted tuples, since an
//     out-of-range component aliases onto another element's index.
//
// Errors:
//   - ErrLengthMismatch when len(coords) != len(sizes).
//
// Example:
//
//	ToIndex([]int{1, 2}, []int{2, 3}) → 5
//
// Complexity: O(n) time, O(1) space.
func ToIndex(coords, sizes []int) (int, error) {
	if len(coords) != len(sizes) {
		return 0, coordsErrorf(ctxToIndex, ErrLengthMismatch)
	}

	var (
		index  int
		factor = 1
		i      int
	)
	for i = len(sizes) - 1; i >= 0; i-- {
		index += factor * coords[i]
		factor *= sizes[i]
	}

	return index, nil
}
