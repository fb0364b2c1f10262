// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// All operations return these sentinels (optionally wrapped with an
// operation tag via %w) and tests match them with errors.Is.
// No operation panics on caller input; panics are confined to option
// constructors (WithX) for programmer errors.

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Div when the divisor's squared
	// magnitude is exactly zero.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrZeroMagnitude is returned by Normalize for a value whose
	// magnitude is exactly zero (the angle is undefined).
	ErrZeroMagnitude = errors.New("scalar: zero magnitude")

	// ErrUnsupportedFormat indicates an unknown rendering tag or a
	// negative precision passed to Format.
	ErrUnsupportedFormat = errors.New("scalar: unsupported format")

	// ErrNeedRandSource indicates that a stochastic constructor was called
	// without a *rand.Rand.
	ErrNeedRandSource = errors.New("scalar: rng is required")
)

// scalarErrorf attaches an operation tag to a sentinel: "<op>: <err>".
func scalarErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
