// SPDX-License-Identifier: MIT

package sampling

import "math/rand"

// DefaultSeed replaces a zero seed in NewRand and seeds DeriveRand(nil, ...).
const DefaultSeed int64 = 1

// Stream names one independent random stream of a simulation run. A run
// draws every stream from one seed, so adding draws to one stage (e.g. a
// larger state) never shifts the outcomes of another.
type Stream uint64

const (
	// StreamPreparation feeds random state preparation.
	StreamPreparation Stream = iota
	// StreamMeasurement feeds measurement outcomes.
	StreamMeasurement
)

// NewRand returns a generator seeded with seed, or with DefaultSeed when
// seed is 0. The same seed yields the same draws on every platform.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveRand splits a generator for stream s off base.
//
// base advances by exactly one draw, so deriving the same stream twice from
// one base yields two different generators. A nil base stands for a
// generator seeded with DefaultSeed that is never advanced.
//
// The returned generator is not safe for concurrent use; derive one per
// goroutine.
func DeriveRand(base *rand.Rand, s Stream) *rand.Rand {
	var parent uint64
	if base == nil {
		parent = uint64(DefaultSeed)
	} else {
		parent = uint64(base.Int63())
	}

	return rand.New(rand.NewSource(int64(mix64(parent ^ mix64(uint64(s))))))
}

// golden64 is ⌊2⁶⁴/φ⌋, the SplitMix64 state increment.
const golden64 uint64 = 0x9e3779b97f4a7c15

// mix64 is one SplitMix64 step: advance x by golden64, then avalanche it.
func mix64(x uint64) uint64 {
	var z uint64
	z = x + golden64
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb

	return z ^ z>>31
}
