// Package sampling draws random indices for simulation layers built on
// quantum-tensors, e.g. picking a measurement outcome with probability
// proportional to |amplitude|².
//
// All randomness flows through an explicit *rand.Rand (NewRand, DeriveRand)
// so runs are reproducible from a seed.
package sampling
