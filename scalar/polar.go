// SPDX-License-Identifier: MIT

package scalar

import "math"

// tau is one full turn in radians.
const tau = 2 * math.Pi

// FromPolar returns r·cos(phi) + i·r·sin(phi).
func FromPolar(r, phi float64) Complex {
	return Complex{Re: r * math.Cos(phi), Im: r * math.Sin(phi)}
}

// Abs2 returns the squared magnitude re² + im².
func (c Complex) Abs2() float64 {
	return c.Re*c.Re + c.Im*c.Im
}

// Abs returns the Euclidean magnitude.
func (c Complex) Abs() float64 {
	return math.Sqrt(c.Abs2())
}

// R is an alias of Abs (polar radius).
func (c Complex) R() float64 {
	return c.Abs()
}

// Arg returns the angle of c in [0, 2π).
// atan2 yields (−π, π]; negative angles are shifted by one full turn.
// A zero angle is always +0, also for a negative-zero Im (e.g. One.Conj()).
func (c Complex) Arg() float64 {
	phi := math.Atan2(c.Im, c.Re)
	switch {
	case phi == 0:
		phi = 0 // drops the sign of atan2(−0, x)
	case phi < 0:
		phi += tau
	}
	// atan2 may return a tiny negative angle whose shift rounds up to 2π.
	if phi >= tau {
		phi = 0
	}

	return phi
}

// Phi is an alias of Arg.
func (c Complex) Phi() float64 {
	return c.Arg()
}

// PhiTau returns the angle as a fraction of a full turn, in [0, 1).
func (c Complex) PhiTau() float64 {
	return c.Arg() / tau
}

// Normalize returns the unit-magnitude value with the same angle.
//
// Errors:
//   - ErrZeroMagnitude when Abs() is exactly 0.
func (c Complex) Normalize() (Complex, error) {
	r := c.Abs()
	if r == 0 {
		return Complex{}, scalarErrorf(ctxNormalize, ErrZeroMagnitude)
	}

	return Complex{Re: c.Re / r, Im: c.Im / r}, nil
}
