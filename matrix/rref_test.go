// Package matrix_test contains unit tests for Reduce / RREF.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/stretchr/testify/require"
)

func TestRREFIdentity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		n := n
		t.Run(fmt.Sprintf("I%d", n), func(t *testing.T) {
			t.Parallel()
			id := MustIdentity(t, n)
			rd, err := matrix.Reduce(id)
			require.NoError(t, err)
			requireMatrixEqual(t, id, rd.Matrix)
			require.Equal(t, 0, rd.Swaps)
			require.True(t, rd.PivotProduct.IsOne())
			require.Equal(t, n, rd.Rank())
		})
	}
}

func TestRREFAugmented(t *testing.T) {
	m := MustRows(t, [][]int64{{1, -2, 1, 0}, {0, 2, -8, 8}, {5, 0, -5, 10}})
	got, err := matrix.RREF(m)
	require.NoError(t, err)
	requireMatrixEqual(t, MustRows(t, [][]int64{{1, 0, 0, 1}, {0, 1, 0, 0}, {0, 0, 1, -1}}), got)

	// Input is not mutated.
	requireMatrixEqual(t, MustRows(t, [][]int64{{1, -2, 1, 0}, {0, 2, -8, 8}, {5, 0, -5, 10}}), m)
}

// TestReduceBookkeeping pins swaps, pivot product and pivot columns.
func TestReduceBookkeeping(t *testing.T) {
	// Column 0 has its first non-zero in row 1, forcing one swap; pivots 3 and 2.
	m := MustRows(t, [][]int64{{0, 2}, {3, 1}})
	rd, err := matrix.Reduce(m)
	require.NoError(t, err)
	require.Equal(t, 1, rd.Swaps)
	require.True(t, rd.PivotProduct.Equal(fr(6)), "pivot product %s", rd.PivotProduct)
	require.Equal(t, []int{0, 1}, rd.Pivots)
	requireMatrixEqual(t, MustIdentity(t, 2), rd.Matrix)
}

// TestReduceRankDeficient covers skipped columns and trailing zero rows.
func TestReduceRankDeficient(t *testing.T) {
	m := MustRows(t, [][]int64{
		{0, 1, 2, 3},
		{0, 2, 4, 7},
		{0, 0, 0, 0},
	})
	rd, err := matrix.Reduce(m)
	require.NoError(t, err)
	requireMatrixEqual(t, MustRows(t, [][]int64{
		{0, 1, 2, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}), rd.Matrix)
	require.Equal(t, []int{1, 3}, rd.Pivots)
	require.Equal(t, 2, rd.Rank())
}

// TestReduceInvariants checks the RREF shape on a matrix with fractional pivots.
func TestReduceInvariants(t *testing.T) {
	m := MustRows(t, [][]int64{
		{2, 4, -2, 6},
		{3, 6, 1, 5},
		{1, 2, 5, -3},
		{0, 0, 3, 7},
	})
	rd, err := matrix.Reduce(m)
	require.NoError(t, err)
	r := rd.Matrix

	prevPivot := -1
	zeroSeen := false
	for i := 0; i < r.Rows(); i++ {
		lead := -1
		for j := 0; j < r.Cols(); j++ {
			if !MustAt(t, r, i, j).IsZero() {
				lead = j
				break
			}
		}
		if lead < 0 {
			zeroSeen = true
			continue
		}
		require.False(t, zeroSeen, "non-zero row %d after a zero row", i)
		require.Greater(t, lead, prevPivot, "pivot columns must increase")
		require.True(t, MustAt(t, r, i, lead).IsOne(), "pivot (%d,%d) must be 1", i, lead)
		for k := 0; k < r.Rows(); k++ {
			if k != i {
				require.True(t, MustAt(t, r, k, lead).IsZero(), "pivot column %d not cleared in row %d", lead, k)
			}
		}
		prevPivot = lead
	}
}

// TestReduceFractionalResult checks exact fractions survive elimination.
func TestReduceFractionalResult(t *testing.T) {
	m := MustRows(t, [][]int64{{2, 1, 1}, {1, 3, 2}})
	got, err := matrix.RREF(m)
	require.NoError(t, err)

	want, err := matrix.NewFromRows([][]F{{fr(1), fr(0), q(1, 5)}, {fr(0), fr(1), q(3, 5)}})
	require.NoError(t, err)
	requireMatrixEqual(t, want, got)
}

func TestReduceOtherElementTypes(t *testing.T) {
	rm, err := matrix.NewFromRows([][]scalar.Real{{1, -2, 1, 0}, {0, 2, -8, 8}, {5, 0, -5, 10}})
	require.NoError(t, err)
	rr, err := matrix.RREF(rm)
	require.NoError(t, err)
	want := [][]float64{{1, 0, 0, 1}, {0, 1, 0, 0}, {0, 0, 1, -1}}
	for i, row := range want {
		for j, w := range row {
			v, err := rr.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, w, float64(v), 1e-12, "(%d,%d)", i, j)
		}
	}

	b := scalar.BigRatFromInt
	bm, err := matrix.NewFromRows([][]scalar.BigRat{{b(2), b(1), b(1)}, {b(1), b(3), b(2)}})
	require.NoError(t, err)
	br, err := matrix.RREF(bm)
	require.NoError(t, err)
	require.Equal(t, "1, 0, 1/5\n0, 1, 3/5\n", br.String())
}

func TestReduceNil(t *testing.T) {
	_, err := matrix.Reduce[F](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.RREF[F](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
