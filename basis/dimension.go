// SPDX-License-Identifier: MIT

package basis

import "strconv"

// Dimension is one named degree of freedom of a tensor, e.g. position,
// direction or polarization, with one tag per coordinate value.
// The order of Coords fixes the coordinate index of each tag.
type Dimension struct {
	Name   string
	Coords []string
}

// Dimension names used by the constructors below.
const (
	NameDirection    = "direction"
	NamePolarization = "polarization"
)

// DirectionDimension returns the 4-valued direction dimension (> ^ < v).
func DirectionDimension() Dimension {
	c := make([]string, len(directions))
	for i, d := range directions {
		c[i] = string(d)
	}

	return Dimension{Name: NameDirection, Coords: c}
}

// PolarizationDimension returns the 2-valued polarization dimension (H V).
func PolarizationDimension() Dimension {
	c := make([]string, len(polarizations))
	for i, p := range polarizations {
		c[i] = string(p)
	}

	return Dimension{Name: NamePolarization, Coords: c}
}

// PositionDimension returns a dimension of n positions tagged "0".."n-1".
//
// Errors:
//   - ErrBadSize when n < 1.
func PositionDimension(name string, n int) (Dimension, error) {
	if n < 1 {
		return Dimension{}, basisErrorf("PositionDimension", ErrBadSize)
	}
	c := make([]string, n)
	for i := range c {
		c[i] = strconv.Itoa(i)
	}

	return Dimension{Name: name, Coords: c}, nil
}

// Size returns the number of coordinate values.
func (d Dimension) Size() int {
	return len(d.Coords)
}

// IndexOf returns the coordinate index of tag.
//
// Errors:
//   - ErrUnknownCoord when tag is not one of d.Coords.
func (d Dimension) IndexOf(tag string) (int, error) {
	for i, c := range d.Coords {
		if c == tag {
			return i, nil
		}
	}

	return -1, basisErrorf("Dimension.IndexOf", ErrUnknownCoord)
}

// Sizes returns the size tuple of dims, in order, ready for package coords.
func Sizes(dims ...Dimension) []int {
	sizes := make([]int, len(dims))
	for i, d := range dims {
		sizes[i] = d.Size()
	}

	return sizes
}

// IndicesOf converts one tag per dimension into a coordinate tuple.
//
// Errors:
//   - ErrUnknownCoord when a tag is unknown or len(tags) != len(dims).
func IndicesOf(dims []Dimension, tags []string) ([]int, error) {
	if len(tags) != len(dims) {
		return nil, basisErrorf("IndicesOf", ErrUnknownCoord)
	}
	out := make([]int, len(dims))
	for i, d := range dims {
		idx, err := d.IndexOf(tags[i])
		if err != nil {
			return nil, basisErrorf("IndicesOf", err)
		}
		out[i] = idx
	}

	return out, nil
}
