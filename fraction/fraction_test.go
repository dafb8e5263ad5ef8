// Package fraction_test contains unit tests for the exact rational type.
package fraction_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/fraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireFrac asserts the canonical fields of f.
func requireFrac(t *testing.T, f fraction.Fraction, num, den int64) {
	t.Helper()
	require.Equal(t, num, f.Num(), "numerator of %s", f)
	require.Equal(t, den, f.Den(), "denominator of %s", f)
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		num, den         int64
		wantNum, wantDen int64
	}{
		{1, 2, 1, 2},
		{10, 2, 5, 1},
		{-4, 6, -2, 3},
		{4, -6, -2, 3},
		{-4, -6, 2, 3},
		{0, 7, 0, 1},
		{0, -7, 0, 1},
		{12, 12, 1, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("%d/%d", tc.num, tc.den), func(t *testing.T) {
			t.Parallel()
			f, err := fraction.New(tc.num, tc.den)
			require.NoError(t, err)
			requireFrac(t, f, tc.wantNum, tc.wantDen)
		})
	}
}

func TestNewZeroDenominator(t *testing.T) {
	_, err := fraction.New(1, 0)
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	require.Panics(t, func() { fraction.MustNew(1, 0) })
}

func TestFromIntAndZeroValue(t *testing.T) {
	requireFrac(t, fraction.FromInt(10), 10, 1)
	requireFrac(t, fraction.FromInt(-3), -3, 1)

	var z fraction.Fraction // zero value reads as 0/1
	requireFrac(t, z, 0, 1)
	require.True(t, z.IsZero())
	require.True(t, z.Equal(fraction.FromInt(0)))
	require.Equal(t, "0", z.String())
}

func TestMul(t *testing.T) {
	requireFrac(t, fraction.MustNew(1, 5).Mul(fraction.MustNew(1, 2)), 1, 10)
	requireFrac(t, fraction.MustNew(1, 5).MulInt(2), 2, 5)
	requireFrac(t, fraction.MustNew(-2, 3).Mul(fraction.MustNew(9, 4)), -3, 2)
	requireFrac(t, fraction.MustNew(0, 3).Mul(fraction.MustNew(9, 4)), 0, 1)

	r := fraction.MustNew(5, 2)
	r.MulAssign(fraction.MustNew(3, 7))
	requireFrac(t, r, 15, 14)

	r = fraction.MustNew(7, 3)
	r.MulIntAssign(2)
	requireFrac(t, r, 14, 3)
}

// TestMulMatchesReduction checks a*b against the reduced cross product for a grid of inputs.
func TestMulMatchesReduction(t *testing.T) {
	values := []int64{-9, -6, -4, -1, 1, 2, 3, 8, 12}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				for _, d := range values {
					got := fraction.MustNew(a, b).Mul(fraction.MustNew(c, d))
					want := fraction.MustNew(a*c, b*d)
					require.True(t, got.Equal(want), "(%d/%d)*(%d/%d): got %s want %s", a, b, c, d, got, want)
				}
			}
		}
	}
}

func TestQuo(t *testing.T) {
	q, err := fraction.MustNew(3, 2).Quo(fraction.MustNew(2, 7))
	require.NoError(t, err)
	requireFrac(t, q, 21, 4)

	q, err = fraction.MustNew(3, 2).QuoInt(4)
	require.NoError(t, err)
	requireFrac(t, q, 3, 8)

	q, err = fraction.MustNew(3, 2).QuoInt(-3)
	require.NoError(t, err)
	requireFrac(t, q, -1, 2)

	r1 := fraction.MustNew(3, 2)
	require.NoError(t, r1.QuoAssign(fraction.MustNew(2, 7)))
	requireFrac(t, r1, 21, 4)
	require.NoError(t, r1.QuoIntAssign(2))
	requireFrac(t, r1, 21, 8)
}

func TestQuoByZero(t *testing.T) {
	f := fraction.MustNew(3, 2)

	_, err := f.Quo(fraction.FromInt(0))
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	_, err = f.QuoInt(0)
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	_, err = fraction.FromInt(0).Inv()
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	// In-place variants leave the receiver untouched on failure.
	require.ErrorIs(t, f.QuoAssign(fraction.Fraction{}), fraction.ErrDivisionByZero)
	require.ErrorIs(t, f.QuoIntAssign(0), fraction.ErrDivisionByZero)
	requireFrac(t, f, 3, 2)
}

func TestAddSub(t *testing.T) {
	r1, r2 := fraction.MustNew(5, 7), fraction.MustNew(2, 3)

	requireFrac(t, r1.Add(r2), 29, 21)
	requireFrac(t, r1.AddInt(2), 19, 7)
	requireFrac(t, r1.Sub(r2), 1, 21)
	requireFrac(t, r1.SubInt(1), -2, 7)
	requireFrac(t, fraction.MustNew(1, 6).Add(fraction.MustNew(1, 3)), 1, 2)
	requireFrac(t, fraction.MustNew(1, 2).Sub(fraction.MustNew(1, 2)), 0, 1)

	r1.AddAssign(r2)
	requireFrac(t, r1, 29, 21)
	r2.AddIntAssign(2)
	requireFrac(t, r2, 8, 3)
}

// TestNegIsAdditiveInverse pins that negation flips the sign; elimination relies on it.
func TestNegIsAdditiveInverse(t *testing.T) {
	for _, f := range []fraction.Fraction{
		fraction.MustNew(3, 4), fraction.MustNew(-5, 2), fraction.FromInt(7), fraction.FromInt(0),
	} {
		n := f.Neg()
		assert.Equal(t, -f.Num(), n.Num())
		assert.Equal(t, f.Den(), n.Den())
		assert.True(t, f.Add(n).IsZero(), "%s + %s must be 0", f, n)
	}
}

func TestEquality(t *testing.T) {
	r1, r2, r3 := fraction.MustNew(1, 2), fraction.MustNew(5, 8), fraction.MustNew(2, 4)

	require.False(t, r1.Equal(r2))
	require.True(t, r1.Equal(r3)) // reduced before comparison
	require.False(t, r2.Equal(r3))
}

func TestIdentitiesAndPredicates(t *testing.T) {
	var f fraction.Fraction
	require.True(t, f.Zero().IsZero())
	require.True(t, f.One().IsOne())
	require.False(t, fraction.MustNew(2, 2).IsZero())
	require.True(t, fraction.MustNew(2, 2).IsOne())
	require.False(t, fraction.MustNew(1, 2).IsOne())

	require.Equal(t, -1, fraction.MustNew(-1, 3).Sign())
	require.Equal(t, 0, fraction.FromInt(0).Sign())
	require.Equal(t, 1, fraction.MustNew(1, 3).Sign())

	require.Equal(t, -1, fraction.MustNew(1, 3).Cmp(fraction.MustNew(1, 2)))
	require.Equal(t, 1, fraction.MustNew(-1, 3).Cmp(fraction.MustNew(-1, 2)))
	require.Equal(t, 0, fraction.MustNew(2, 6).Cmp(fraction.MustNew(1, 3)))

	inv, err := fraction.MustNew(-2, 3).Inv()
	require.NoError(t, err)
	requireFrac(t, inv, -3, 2)

	require.InDelta(t, 0.75, fraction.MustNew(3, 4).Float64(), 1e-15)
}

func TestString(t *testing.T) {
	require.Equal(t, "5", fraction.MustNew(10, 2).String())
	require.Equal(t, "-3/4", fraction.MustNew(3, -4).String())
	require.Equal(t, "1/2", fmt.Sprint(fraction.MustNew(1, 2)))
}
