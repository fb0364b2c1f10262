// SPDX-License-Identifier: MIT
// Package basis: sentinel error set.

package basis

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAngle indicates an angle that maps to no tag.
	ErrUnsupportedAngle = errors.New("basis: unsupported angle")

	// ErrUnknownCoord indicates a tag that is not a coordinate of a Dimension.
	ErrUnknownCoord = errors.New("basis: unknown coordinate")

	// ErrBadSize indicates a non-positive dimension size.
	ErrBadSize = errors.New("basis: invalid size")
)

func basisErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
