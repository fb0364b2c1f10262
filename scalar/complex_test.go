// SPDX-License-Identifier: MIT
// Package scalar_test contains unit tests for Complex arithmetic and predicates.
package scalar_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stared/quantum-tensors/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// randComplex draws both components uniformly from [-10, 10).
func randComplex(rng *rand.Rand) scalar.Complex {
	return scalar.New(20*rng.Float64()-10, 20*rng.Float64()-10)
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := scalar.New(1, 2)
	b := scalar.New(3, 4)

	tests := []struct {
		name string
		got  scalar.Complex
		want scalar.Complex
	}{
		{"add", a.Add(b), scalar.New(4, 6)},
		{"sub", a.Sub(b), scalar.New(-2, -2)},
		{"mul", a.Mul(b), scalar.New(-5, 10)},
		{"mulGauss", a.MulGauss(b), scalar.New(-5, 10)},
		{"conj", a.Conj(), scalar.New(1, -2)},
		{"neg", a.Neg(), scalar.New(-1, -2)},
		{"scale", a.Scale(0.5), scalar.New(0.5, 1)},
		{"i squared", scalar.I.Mul(scalar.I), scalar.New(-1, 0)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Truef(t, tc.got.Equal(tc.want), "got %v, want %v", tc.got, tc.want)
		})
	}
}

func TestDiv(t *testing.T) {
	t.Parallel()

	q, err := scalar.New(1, 2).Div(scalar.New(3, 4))
	require.NoError(t, err)
	assert.InDelta(t, 0.44, q.Re, tol)
	assert.InDelta(t, 0.08, q.Im, tol)

	_, err = scalar.New(1, 0).Div(scalar.New(0, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, scalar.ErrDivisionByZero))

	// Negative zeros are still a zero divisor.
	_, err = scalar.One.Div(scalar.New(math.Copysign(0, -1), math.Copysign(0, -1)))
	assert.ErrorIs(t, err, scalar.ErrDivisionByZero)
}

func TestArithmeticProperties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	closeTo := scalar.WithEpsilon(1e-9)

	for i := 0; i < 500; i++ {
		a, b := randComplex(rng), randComplex(rng)

		require.Truef(t, a.Mul(b).IsCloseTo(a.MulGauss(b), closeTo), "mul/mulGauss disagree for %v·%v", a, b)
		require.Truef(t, a.Add(b).Sub(b).IsCloseTo(a, closeTo), "add/sub not inverse for %v, %v", a, b)
		require.Truef(t, a.Conj().Conj().Equal(a), "conj not an involution for %v", a)
		require.InDelta(t, a.Abs2(), a.Abs()*a.Abs(), 1e-9)

		if !b.IsZero() {
			q, err := a.Mul(b).Div(b)
			require.NoError(t, err)
			require.Truef(t, q.IsCloseTo(a, closeTo), "div does not undo mul for %v, %v", a, b)
		}
	}
}

func TestPolar(t *testing.T) {
	t.Parallel()

	z := scalar.New(3, 4)
	assert.Equal(t, 5.0, z.Abs())
	assert.Equal(t, 5.0, z.R())
	assert.Equal(t, 25.0, z.Abs2())
	assert.Equal(t, math.Atan2(4, 3), z.Arg())
	assert.Equal(t, z.Arg(), z.Phi())

	tests := []struct {
		name    string
		z       scalar.Complex
		wantArg float64
		wantTau float64
	}{
		{"zero", scalar.Zero, 0, 0},
		{"one", scalar.One, 0, 0},
		{"one, negative zero im", scalar.New(1, math.Copysign(0, -1)), 0, 0},
		{"conjugate of one", scalar.One.Conj(), 0, 0},
		{"negative zero", scalar.New(math.Copysign(0, -1), math.Copysign(0, -1)), math.Pi, 0.5},
		{"i", scalar.I, math.Pi / 2, 0.25},
		{"minus one", scalar.New(-1, 0), math.Pi, 0.5},
		{"minus one, negative zero im", scalar.New(-1, math.Copysign(0, -1)), math.Pi, 0.5},
		{"minus i", scalar.New(0, -1), 3 * math.Pi / 2, 0.75},
		{"fourth quadrant", scalar.New(1, -1), 7 * math.Pi / 4, 0.875},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			arg := tc.z.Arg()
			assert.False(t, math.Signbit(arg), "angle carries a sign bit")
			assert.GreaterOrEqual(t, arg, 0.0)
			assert.Less(t, arg, 2*math.Pi)
			assert.InDelta(t, tc.wantArg, arg, tol)
			assert.InDelta(t, tc.wantTau, tc.z.PhiTau(), tol)
		})
	}
}

func TestArgTinyNegativeAngle(t *testing.T) {
	t.Parallel()

	// atan2 returns −1e-300 here; adding 2π rounds to exactly 2π.
	arg := scalar.New(1, -1e-300).Arg()
	assert.GreaterOrEqual(t, arg, 0.0)
	assert.Less(t, arg, 2*math.Pi)
}

func TestFromPolar(t *testing.T) {
	t.Parallel()

	assert.True(t, scalar.FromPolar(1, 0).Equal(scalar.One))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		z := randComplex(rng)
		back := scalar.FromPolar(z.R(), z.Phi())
		require.Truef(t, back.IsCloseTo(z, scalar.WithEpsilon(1e-9)), "polar round trip: %v -> %v", z, back)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	u, err := scalar.New(3, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, u.Re, tol)
	assert.InDelta(t, 0.8, u.Im, tol)
	assert.InDelta(t, 1.0, u.Abs(), tol)
	assert.InDelta(t, scalar.New(3, 4).Arg(), u.Arg(), tol)

	_, err = scalar.Zero.Normalize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, scalar.ErrZeroMagnitude))
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                          string
		z                             scalar.Complex
		zero, one, almostZero, normal bool
	}{
		{"zero", scalar.Zero, true, false, true, false},
		{"one", scalar.One, false, true, false, true},
		{"i", scalar.I, false, false, false, true},
		{"tiny", scalar.New(1e-7, 0), false, false, true, false},
		{"not tiny", scalar.New(1e-5, 0), false, false, false, false},
		{"3+4i", scalar.New(3, 4), false, false, false, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.zero, tc.z.IsZero(), "IsZero")
			assert.Equal(t, tc.one, tc.z.IsOne(), "IsOne")
			assert.Equal(t, tc.almostZero, tc.z.IsAlmostZero(), "IsAlmostZero")
			assert.Equal(t, tc.normal, tc.z.IsNormal(), "IsNormal")
		})
	}
}

func TestIsCloseTo(t *testing.T) {
	t.Parallel()

	a := scalar.One
	assert.True(t, a.IsCloseTo(scalar.New(1, 1e-7)))
	assert.False(t, a.IsCloseTo(scalar.New(1, 1e-5)))
	assert.True(t, a.IsCloseTo(scalar.New(1, 1e-5), scalar.WithEpsilon(1e-4)))
	// Strict inequality: distance equal to eps is not close.
	assert.False(t, a.IsCloseTo(scalar.New(1.5, 0), scalar.WithEpsilon(0.5)))
	assert.False(t, a.IsCloseTo(a, scalar.WithEpsilon(0)))

	assert.True(t, a.Equal(scalar.New(1, 0)))
	assert.False(t, a.Equal(scalar.New(1, 1e-300)))

	require.Panics(t, func() { scalar.WithEpsilon(-1) })
	require.Panics(t, func() { scalar.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { scalar.WithEpsilon(math.Inf(1)) })
}

func TestComplex128Bridge(t *testing.T) {
	t.Parallel()

	z := scalar.New(1.5, -2.5)
	assert.Equal(t, complex(1.5, -2.5), z.Complex128())
	assert.True(t, scalar.FromComplex128(z.Complex128()).Equal(z))
	assert.True(t, scalar.Real(2).Equal(scalar.New(2, 0)))
}
