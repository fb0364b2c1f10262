// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/rand"
)

// RandomGaussian draws a standard complex normal value with the Box–Muller
// transform: two uniform draws u, v in (0, 1), magnitude sqrt(−2 ln u),
// angle 2πv, assembled through FromPolar.
//
// The generator is injected so that draws are reproducible; math/rand.Rand
// is not goroutine-safe, so do not share rng across goroutines.
//
// Errors:
//   - ErrNeedRandSource when rng is nil.
//
// Complexity: O(1) expected.
func RandomGaussian(rng *rand.Rand) (Complex, error) {
	if rng == nil {
		return Complex{}, scalarErrorf(ctxGaussian, ErrNeedRandSource)
	}
	var u, v float64
	u = openUnit(rng)
	v = openUnit(rng)

	return FromPolar(math.Sqrt(-2*math.Log(u)), tau*v), nil
}

// openUnit returns a uniform draw from the open interval (0, 1).
// Float64 yields [0, 1); exact zeros are redrawn.
func openUnit(rng *rand.Rand) float64 {
	var x float64
	x = rng.Float64()
	for x == 0 {
		x = rng.Float64()
	}

	return x
}
