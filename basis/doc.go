// Package basis holds the symbolic lookup tables of quantum-tensors:
// direction and polarization tags, their angles, and named Dimensions whose
// sizes feed the coordinate kernel in package coords.
package basis
