// SPDX-License-Identifier: MIT

// Package scalar - textual and colour rendering.
//
// Purpose:
//   - Render a value in one of three fixed textual forms for display layers.
//   - Map a value to a domain-colouring hex colour: hue from angle,
//     full saturation, lightness falling with magnitude.

package scalar

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Format is a rendering tag understood by Complex.Format.
type Format string

// Recognized rendering tags.
const (
	FormatCartesian Format = "cartesian" // (re ±imi)
	FormatPolar     Format = "polar"     // r exp(φi)
	FormatPolarTau  Format = "polarTau"  // r exp(φτi), φ as a fraction of a turn
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "("
	_fmtClose    = "i)"
	_fmtExpOpen  = " exp("
	_fmtExpClose = "i)"
	_fmtTau      = "τ"
)

// Colour policy.
const (
	colorSaturation = 1.0
	lightnessTop    = 100.0 // lightness (percent) at r = 0
	lightnessSlope  = 50.0  // percent lost per unit of magnitude
	degPerRad       = 180 / math.Pi
)

// ParseFormat converts a textual tag into a Format.
//
// Errors:
//   - ErrUnsupportedFormat for any tag other than the three recognized ones.
func ParseFormat(tag string) (Format, error) {
	switch f := Format(tag); f {
	case FormatCartesian, FormatPolar, FormatPolarTau:
		return f, nil
	default:
		return "", scalarErrorf("ParseFormat", ErrUnsupportedFormat)
	}
}

// Format renders c with the given number of fractional digits.
//
//	cartesian: "(1.00 +0.00i)", "(0.50 -2.00i)"
//	polar:     "1.00 exp(3.14i)"
//	polarTau:  "1.00 exp(0.50τi)"
//
// The imaginary part always carries an explicit sign. Negative zero never
// reaches the output: it prints as "0" (real part, angle) or "+0" (imaginary part).
//
// Errors:
//   - ErrUnsupportedFormat for an unknown tag or precision < 0.
func (c Complex) Format(f Format, precision int) (string, error) {
	if precision < 0 {
		return "", scalarErrorf(ctxFormat, ErrUnsupportedFormat)
	}

	switch f {
	case FormatCartesian:
		return _fmtOpen + fixed(c.Re, precision) + " " + signedFixed(c.Im, precision) + _fmtClose, nil
	case FormatPolar:
		return fixed(c.Abs(), precision) + _fmtExpOpen + fixed(c.Arg(), precision) + _fmtExpClose, nil
	case FormatPolarTau:
		return fixed(c.Abs(), precision) + _fmtExpOpen + fixed(c.PhiTau(), precision) + _fmtTau + _fmtExpClose, nil
	default:
		return "", scalarErrorf(ctxFormat, ErrUnsupportedFormat)
	}
}

// String renders c in cartesian form with DefaultPrecision digits.
func (c Complex) String() string {
	s, _ := c.Format(FormatCartesian, DefaultPrecision) // tag and precision are constant and valid

	return s
}

// Color maps c to a "#rrggbb" domain-colouring colour:
// hue = Arg in degrees, saturation 100%, lightness (100 − 50·r)% clamped to [0, 100].
// Zero renders white, unit magnitude renders a fully saturated hue,
// magnitudes ≥ 2 render black.
func (c Complex) Color() string {
	hue := c.Arg() * degPerRad
	lightness := (lightnessTop - lightnessSlope*c.Abs()) / lightnessTop
	lightness = math.Max(0, math.Min(1, lightness))

	return colorful.Hsl(hue, colorSaturation, lightness).Clamped().Hex()
}

// fixed formats x with exactly precision fractional digits.
func fixed(x float64, precision int) string {
	return strconv.FormatFloat(unsignedZero(x), 'f', precision, 64)
}

// signedFixed is fixed with an explicit leading '+' for non-negative values.
func signedFixed(x float64, precision int) string {
	return fmt.Sprintf("%+.*f", precision, unsignedZero(x))
}

// unsignedZero maps −0 to +0 and returns every other x unchanged.
func unsignedZero(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x
}

var _ fmt.Stringer = Complex{}
