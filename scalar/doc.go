// Package scalar provides Complex, the amplitude type of quantum-tensors.
//
// What is it?
//
//	A two-field value type re + i·im with exact arithmetic, polar queries,
//	tolerance predicates and display helpers. It is the scalar stored in
//	state vectors and operators indexed through package coords.
//
// Key features:
//   - Pure value semantics: every method returns a new Complex.
//   - Polar angle always in [0, 2π) (Arg/Phi), or in turns (PhiTau).
//   - Degenerate inputs return sentinel errors (ErrDivisionByZero,
//     ErrZeroMagnitude) instead of producing Inf/NaN.
//   - Rendering in cartesian, polar and polarTau forms, plus domain colouring.
//   - Reproducible Gaussian draws from an injected *rand.Rand.
//
// Usage:
//
//	z := scalar.New(3, 4)
//	z.Abs()                                 // 5
//	s, _ := z.Format(scalar.FormatPolar, 2) // "5.00 exp(0.93i)"
//	u, err := z.Normalize()                 // 0.6 + 0.8i
//
// Complexity: every operation is O(1).
package scalar
