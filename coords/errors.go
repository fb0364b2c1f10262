// SPDX-License-Identifier: MIT
// Package coords: sentinel error set.
// Every message is prefixed with "coords: ..." for consistency. Detection
// sites attach the operation (and, where known, the offending dimension)
// with %w; callers branch with errors.Is.
//
// All of these are caller-input contract violations. None is transient,
// and nothing in this package retries, logs or swallows them.

package coords

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates that a coordinate tuple and a size tuple
	// (or two tuples that must pair up) differ in length.
	ErrLengthMismatch = errors.New("coords: length mismatch")

	// ErrOutOfBounds indicates a coordinate component outside [0, size) for
	// its dimension, or a linear index outside [0, Volume(sizes)).
	ErrOutOfBounds = errors.New("coords: coordinate out of bounds")

	// ErrNotAPermutation indicates that an index set that must form a
	// permutation of {0..n-1} contains duplicates, omissions or
	// out-of-range values.
	ErrNotAPermutation = errors.New("coords: not a permutation")

	// ErrBadSize indicates a dimension size < 1, a size tuple whose volume
	// overflows int, or a negative rank.
	ErrBadSize = errors.New("coords: invalid size")
)

// coordsErrorf wraps err with the operation tag: "<op>: <err>".
func coordsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// dimErrorf wraps err with the operation tag and offending dimension.
func dimErrorf(op string, dim int, err error) error {
	return fmt.Errorf("%s(dim=%d): %w", op, dim, err)
}
