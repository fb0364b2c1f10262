// SPDX-License-Identifier: MIT

package basis

// Direction is the propagation direction of a particle on a grid.
type Direction string

// Directions, ordered by counter-clockwise rotation from "right".
const (
	DirRight Direction = ">" // 0°
	DirUp    Direction = "^" // 90°
	DirLeft  Direction = "<" // 180°
	DirDown  Direction = "v" // 270°
)

// Polarization is a linear polarization state.
type Polarization string

// Polarizations, ordered by angle.
const (
	PolH Polarization = "H" // 0°
	PolV Polarization = "V" // 90°
)

var (
	directions    = [...]Direction{DirRight, DirUp, DirLeft, DirDown}
	polarizations = [...]Polarization{PolH, PolV}
)

const (
	quarterTurn = 90
	fullTurn    = 360
	halfTurn    = 180
)

// DirectionFromAngle maps a rotation in degrees (any multiple of 90,
// negative allowed, taken modulo 360) to its Direction.
//
// Errors:
//   - ErrUnsupportedAngle when deg is not a multiple of 90.
func DirectionFromAngle(deg int) (Direction, error) {
	if deg%quarterTurn != 0 {
		return "", basisErrorf("DirectionFromAngle", ErrUnsupportedAngle)
	}

	return directions[mod(deg, fullTurn)/quarterTurn], nil
}

// PolarizationFromAngle maps a polarization angle in degrees (multiple of
// 90, taken modulo 180 since polarization is axial) to its Polarization.
//
// Errors:
//   - ErrUnsupportedAngle when deg is not a multiple of 90.
func PolarizationFromAngle(deg int) (Polarization, error) {
	if deg%quarterTurn != 0 {
		return "", basisErrorf("PolarizationFromAngle", ErrUnsupportedAngle)
	}

	return polarizations[mod(deg, halfTurn)/quarterTurn], nil
}

// Angle returns the rotation of d in degrees, in [0, 360); -1 for an unknown tag.
func (d Direction) Angle() int {
	if i := d.Index(); i >= 0 {
		return i * quarterTurn
	}

	return -1
}

// Index returns the coordinate of d in DirectionDimension, or -1.
func (d Direction) Index() int {
	for i, x := range directions {
		if x == d {
			return i
		}
	}

	return -1
}

// Angle returns the angle of p in degrees, in [0, 180); -1 for an unknown tag.
func (p Polarization) Angle() int {
	if i := p.Index(); i >= 0 {
		return i * quarterTurn
	}

	return -1
}

// Index returns the coordinate of p in PolarizationDimension, or -1.
func (p Polarization) Index() int {
	for i, x := range polarizations {
		if x == p {
			return i
		}
	}

	return -1
}

// mod is the non-negative remainder.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}
