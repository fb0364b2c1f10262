// SPDX-License-Identifier: MIT

package sampling

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const ctxWeighted = "WeightedIndex"

// WeightedIndex draws an index i with probability weights[i] / Σweights.
//
// Implementation:
//   - Stage 1: validate weights (non-empty, finite, non-negative, positive total).
//   - Stage 2: x = U[0,1)·Σw; return the first i whose cumulative weight exceeds x.
//
// Zero-weight entries are never returned. Typical use is measurement:
// weights are the squared magnitudes of a state's amplitudes.
//
// Errors:
//   - ErrNeedRandSource, ErrEmptyWeights, ErrInvalidWeight, ErrZeroTotal.
//
// Complexity: O(n) time, O(n) space.
func WeightedIndex(weights []float64, rng *rand.Rand) (int, error) {
	if rng == nil {
		return 0, samplingErrorf(ctxWeighted, ErrNeedRandSource)
	}
	if len(weights) == 0 {
		return 0, samplingErrorf(ctxWeighted, ErrEmptyWeights)
	}
	if floats.HasNaN(weights) || floats.Min(weights) < 0 || math.IsInf(floats.Max(weights), 1) {
		return 0, samplingErrorf(ctxWeighted, ErrInvalidWeight)
	}

	cum := floats.CumSum(make([]float64, len(weights)), weights)
	total := cum[len(cum)-1]
	if total == 0 {
		return 0, samplingErrorf(ctxWeighted, ErrZeroTotal)
	}
	if math.IsInf(total, 1) {
		return 0, samplingErrorf(ctxWeighted, ErrInvalidWeight) // finite weights overflowed
	}

	var (
		x    = rng.Float64() * total
		last int
	)
	for i, c := range cum {
		if c > x {
			return i, nil
		}
		if weights[i] > 0 {
			last = i
		}
	}

	// x rounded up to total; fall back to the last positive weight.
	return last, nil
}
