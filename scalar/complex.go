// SPDX-License-Identifier: MIT

// Package scalar - Complex value type & arithmetic.
//
// Purpose:
//   - Represent an amplitude re + i·im as a two-field value type.
//   - Every operation returns a new value; no receiver is ever mutated,
//     so values are safe to share between goroutines without locking.
//   - Degenerate cases (zero divisor) surface as sentinel errors, not panics
//     or silent ±Inf/NaN.
//
// Complexity quicksheet:
//   - All operations: O(1) time, O(1) space, zero allocations.

package scalar

// ---------- error context tags ----------

const (
	ctxDiv       = "Complex.Div"
	ctxNormalize = "Complex.Normalize"
	ctxFormat    = "Complex.Format"
	ctxGaussian  = "RandomGaussian"
)

// Complex is the value re + i·im.
// The zero value is 0.
type Complex struct {
	Re float64 // real component
	Im float64 // imaginary component
}

// Common constants.
var (
	Zero = Complex{}      // 0
	One  = Complex{Re: 1} // 1
	I    = Complex{Im: 1} // imaginary unit
)

// New returns re + i·im.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real returns re + 0i.
func Real(re float64) Complex {
	return Complex{Re: re}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// Complex128 converts c to the builtin complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// Add returns c + other.
func (c Complex) Add(other Complex) Complex {
	return Complex{Re: c.Re + other.Re, Im: c.Im + other.Im}
}

// Sub returns c - other.
func (c Complex) Sub(other Complex) Complex {
	return Complex{Re: c.Re - other.Re, Im: c.Im - other.Im}
}

// Mul returns c · other using the schoolbook four-multiplication form.
func (c Complex) Mul(other Complex) Complex {
	return Complex{
		Re: c.Re*other.Re - c.Im*other.Im,
		Im: c.Re*other.Im + c.Im*other.Re,
	}
}

// MulGauss returns c · other using Gauss's three-multiplication form:
//
//	k1 = c·(a+b), k2 = a·(d−c), k3 = b·(c+d)
//	re = k1 − k3, im = k1 + k2
//
// for c = a+bi and other = c+di. It is interchangeable with Mul and agrees
// with it up to floating-point rounding.
func (c Complex) MulGauss(other Complex) Complex {
	var (
		a, b = c.Re, c.Im
		x, y = other.Re, other.Im
	)

	var k1, k2, k3 float64
	k1 = x * (a + b)
	k2 = a * (y - x)
	k3 = b * (x + y)

	return Complex{Re: k1 - k3, Im: k1 + k2}
}

// Div returns c / other.
//
// Errors:
//   - ErrDivisionByZero when other.Abs2() is exactly 0.
func (c Complex) Div(other Complex) (Complex, error) {
	den := other.Abs2()
	if den == 0 {
		return Complex{}, scalarErrorf(ctxDiv, ErrDivisionByZero)
	}

	// (a+bi)/(x+yi) = (a+bi)(x−yi)/(x²+y²)
	return Complex{
		Re: (c.Re*other.Re + c.Im*other.Im) / den,
		Im: (c.Im*other.Re - c.Re*other.Im) / den,
	}, nil
}

// Scale returns k · c.
func (c Complex) Scale(k float64) Complex {
	return Complex{Re: k * c.Re, Im: k * c.Im}
}

// Neg returns −c.
func (c Complex) Neg() Complex {
	return Complex{Re: -c.Re, Im: -c.Im}
}

// Conj returns the complex conjugate re − i·im.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// ---------- predicates ----------

// Equal reports exact component-wise equality (no tolerance).
func (c Complex) Equal(other Complex) bool {
	return c.Re == other.Re && c.Im == other.Im
}

// IsCloseTo reports whether |c − other| < eps, with eps = DefaultEpsilon
// unless overridden by WithEpsilon.
func (c Complex) IsCloseTo(other Complex, opts ...Option) bool {
	o := gatherOptions(opts...)

	return c.Sub(other).Abs() < o.eps
}

// IsZero reports c == 0 exactly.
func (c Complex) IsZero() bool {
	return c.Re == 0 && c.Im == 0
}

// IsOne reports c == 1 exactly.
func (c Complex) IsOne() bool {
	return c.Re == 1 && c.Im == 0
}

// IsAlmostZero reports whether the squared magnitude is below AlmostZeroAbs2.
func (c Complex) IsAlmostZero() bool {
	return c.Abs2() < AlmostZeroAbs2
}

// IsNormal reports whether the squared magnitude is exactly 1.
func (c Complex) IsNormal() bool {
	return c.Abs2() == 1
}
