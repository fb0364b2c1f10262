// SPDX-License-Identifier: MIT
// Package sampling: sentinel error set.
// Callers MUST branch with errors.Is; messages are prefixed "sampling: ...".

package sampling

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyWeights indicates an empty weight vector.
	ErrEmptyWeights = errors.New("sampling: empty weights")

	// ErrInvalidWeight indicates a negative, NaN or ±Inf weight.
	ErrInvalidWeight = errors.New("sampling: invalid weight")

	// ErrZeroTotal indicates that all weights are zero.
	ErrZeroTotal = errors.New("sampling: weights sum to zero")

	// ErrNeedRandSource indicates a nil *rand.Rand.
	ErrNeedRandSource = errors.New("sampling: rng is required")
)

// samplingErrorf wraps err with the operation tag: "<op>: <err>".
func samplingErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
