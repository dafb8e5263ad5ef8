// Package matrix_test holds shared helpers for the matrix unit tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/fraction"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// F is the element type most tests run on.
type F = fraction.Fraction

// fr is shorthand for an integer fraction.
func fr(n int64) F { return fraction.FromInt(n) }

// q is shorthand for num/den.
func q(num, den int64) F { return fraction.MustNew(num, den) }

// vec lifts integers into a fraction slice.
func vec(xs ...int64) []F {
	out := make([]F, len(xs))
	for i, x := range xs {
		out[i] = fr(x)
	}

	return out
}

// MustRows builds a fraction matrix from integer rows or fails the test.
func MustRows(t *testing.T, rows [][]int64) *matrix.Dense[F] {
	t.Helper()
	nested := make([][]F, len(rows))
	for i, r := range rows {
		nested[i] = vec(r...)
	}
	m, err := matrix.NewFromRows(nested)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n over fractions or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense[F] {
	t.Helper()
	m, err := matrix.NewIdentity[F](n)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense[F], i, j int) F {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireMatrixEqual compares shape and contents, printing both on mismatch.
func requireMatrixEqual(t *testing.T, want, got *matrix.Dense[F]) {
	t.Helper()
	require.True(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}
