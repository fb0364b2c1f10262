// SPDX-License-Identifier: MIT
// Package: coords
//
// Purpose:
//   - Single source of truth for tuple validation.
//   - Keep the index kernels minimal by delegating length/bounds checks here.
//
// Determinism & Performance:
//   - All checks are pure, allocate nothing and scan dimensions in order,
//     so the first offending dimension is the one reported.

package coords

import "math"

// ---------- error context tags ----------

const (
	ctxCheck      = "CheckCompatibility"
	ctxSizes      = "ValidateSizes"
	ctxFromIndex  = "FromIndex"
	ctxToIndex    = "ToIndex"
	ctxComplement = "Complement"
	ctxJoinerFor  = "JoinerFor"
	ctxPermute    = "Permute"
)

// CheckCompatibility validates a coordinate tuple against a size tuple.
//
// Behavior:
//   - Stage 1: lengths must agree, else ErrLengthMismatch.
//   - Stage 2: every coords[i] must satisfy 0 <= coords[i] < sizes[i],
//     else ErrOutOfBounds naming the first offending dimension.
//
// Call it before ToIndex when the tuple comes from an untrusted source.
//
// Complexity: O(n) time, O(1) space.
func CheckCompatibility(coords, sizes []int) error {
	if len(coords) != len(sizes) {
		return coordsErrorf(ctxCheck, ErrLengthMismatch)
	}
	for i, c := range coords {
		if c < 0 || c >= sizes[i] {
			return dimErrorf(ctxCheck, i, ErrOutOfBounds)
		}
	}

	return nil
}

// ValidateSizes ensures every dimension size is at least 1 and that
// Volume(sizes) fits in an int.
// The empty size tuple is valid (a scalar with one element).
//
// Errors:
//   - ErrBadSize naming the first size < 1, or the dimension at which the
//     running product would exceed math.MaxInt.
//
// Complexity: O(n) time, O(1) space.
func ValidateSizes(sizes []int) error {
	var volume = 1
	for i, s := range sizes {
		if s < 1 {
			return dimErrorf(ctxSizes, i, ErrBadSize)
		}
		if volume > math.MaxInt/s {
			return dimErrorf(ctxSizes, i, ErrBadSize)
		}
		volume *= s
	}

	return nil
}
