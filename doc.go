// Package quantumtensors is the numeric foundation for discrete,
// multi-dimensional complex-valued state: quantum amplitude tensors indexed
// by several independent degrees of freedom (position × direction ×
// polarization, …).
//
// What is in here?
//
//	scalar/    Complex amplitude type: arithmetic, polar form, rendering.
//	coords/    coordinate kernel: linear index ↔ tuple, validation,
//	           permutations, complements and axis-partition joins.
//	basis/     direction/polarization tags and named Dimensions.
//	sampling/  seeded RNG streams and weighted index draws.
//
// Tensor storage and contraction execution are deliberately out of scope:
// this module supplies the scalar and the index arithmetic such a layer
// calls. See examples/ for a small end-to-end program.
//
//	go get github.com/stared/quantum-tensors
package quantumtensors
