// SPDX-License-Identifier: MIT

// Package matrix - operations derived from Reduce.
//
// Purpose:
//   - Determinant, rank, column independence, unique solve and inverse,
//     each interpreting a single Reduction; none of them re-implement elimination.

package matrix

import "fmt"

const (
	opDet         = "Det"
	opRank        = "Rank"
	opIndependent = "LinearlyIndependent"
	opSolve       = "Solve"
	opInverse     = "Inverse"
)

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - 1×1: the sole element, elimination is skipped.
//   - Otherwise: R = Reduce(m);
//     det = Π diag(R) × PivotProduct × (−1)^Swaps.
//     Normalization divided each pivot out (tracked in PivotProduct) and
//     every swap flipped the sign; the diagonal of R is all One() for a
//     regular matrix and contains a Zero() otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3).
func Det[T Element[T]](m *Dense[T]) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDet, fmt.Errorf("%dx%d: %w", m.r, m.c, err))
	}
	if m.r == 1 {
		return m.data[0], nil
	}

	rd, err := Reduce(m)
	if err != nil {
		return zero, matrixErrorf(opDet, err)
	}

	n := m.r
	det := oneOf[T]()
	for i := 0; i < n; i++ {
		det = det.Mul(rd.Matrix.data[i*n+i])
	}
	det = det.Mul(rd.PivotProduct)
	if rd.Swaps%2 == 1 {
		det = det.Neg()
	}

	return det, nil
}

// Rank returns the number of pivots of m's reduced row echelon form.
// Errors: ErrNilMatrix.
func Rank[T Element[T]](m *Dense[T]) (int, error) {
	rd, err := Reduce(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return rd.Rank(), nil
}

// LinearlyIndependent reports whether the column vectors of m are linearly
// independent, i.e. every column holds a pivot (rank == Cols()).
// Errors: ErrNilMatrix.
func LinearlyIndependent[T Element[T]](m *Dense[T]) (bool, error) {
	rd, err := Reduce(m)
	if err != nil {
		return false, matrixErrorf(opIndependent, err)
	}

	return rd.Rank() == m.c, nil
}

// Solve returns the unique solution x of a·x = b.
//
// Implementation:
//   - Stage 1: validate a (non-nil, len(b) == Rows, square).
//   - Stage 2: reduce the augmented matrix [a | b].
//   - Stage 3: when the coefficient block reduced to the identity, the last
//     column is x; otherwise the system is inconsistent or underdetermined.
//
// Returns:
//   - x, true, nil: unique solution.
//   - nil, false, nil: no unique solution (rank-deficient coefficient block).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(b) != a.Rows()), ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve[T Element[T]](a *Dense[T], b []T) ([]T, bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, false, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, false, matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, false, matrixErrorf(opSolve, err)
	}

	rd, err := Reduce(augmentVec(a, b))
	if err != nil {
		return nil, false, matrixErrorf(opSolve, err)
	}
	n := a.r
	// A pivot in the b column (index n) means inconsistency; fewer than n
	// coefficient pivots means free variables. Both fail this check.
	if !rd.leadingIdentity(n) {
		return nil, false, nil
	}

	x, _ := rd.Matrix.Col(n) // n is the last column, always in range

	return x, true, nil
}

// Inverse returns m⁻¹ by reducing [m | I] and reading the right block.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n^3).
func Inverse[T Element[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.r
	id, err := NewIdentity[T](n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(m, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	rd, err := Reduce(aug)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if !rd.leadingIdentity(n) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	out := make([]T, 0, n*n)
	for i := 0; i < n; i++ {
		out = append(out, rd.Matrix.row(i)[n:]...)
	}

	return &Dense[T]{r: n, c: n, data: out}, nil
}
