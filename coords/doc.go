// Package coords is the coordinate-algebra kernel of quantum-tensors.
//
// What is it?
//
//	Pure functions over integer tuples that translate between a flat linear
//	index and a multi-dimensional coordinate tuple, validate tuples against
//	dimension sizes, and partition axes into "selected" and "remaining"
//	groups. A tensor layer stores amplitudes (scalar.Complex) by linear
//	index and uses this package to address them by per-axis coordinates.
//
// Index order:
//
//	Linear indices are big-endian mixed radix: the first dimension is the
//	most significant and varies slowest. For sizes [2,3], [1,2] ↔ 5.
//
// Key features:
//   - FromIndex / ToIndex: exact inverse bijection on valid inputs.
//   - CheckCompatibility / ValidateSizes: length and bounds validation.
//   - IsPermutation / IsPermutationOf: range-checked permutation test.
//   - Complement: remaining axes of a selected subset, validated.
//   - Joiner: merge/split tuples along an axis partition (contraction,
//     partial trace, marginalization).
//   - Permute: reorder a tuple by an axis permutation.
//
// Errors (match with errors.Is):
//
//	ErrLengthMismatch, ErrOutOfBounds, ErrNotAPermutation, ErrBadSize.
//
// Concurrency:
//
//	Stateless; every function is safe for concurrent use. Returned slices
//	are freshly allocated unless documented otherwise (NewJoiner).
//
// Usage:
//
//	sizes := []int{2, 3, 4}
//	c, _ := coords.FromIndex(17, sizes) // [1 1 1]
//	i, _ := coords.ToIndex(c, sizes)    // 17
//
//	j, _ := coords.JoinerFor([]int{1}, 3) // contract axis 1
//	group, sel := j.Split(c)              // [1 1], [1]
//	full := j.Join(group, sel)            // [1 1 1]
package coords
