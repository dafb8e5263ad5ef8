// SPDX-License-Identifier: MIT

// Package matrix - reduced row echelon form.
//
// Purpose:
//   - Gauss–Jordan elimination on a private clone, driven only by
//     SwapRows / ScaleRow / AddRow.
//   - Record the bookkeeping needed to rebuild a determinant: number of row
//     swaps and the product of the pivots divided out during normalization.
//
// Determinism:
//   - Fixed column-major scan; the pivot is the first non-zero entry at or
//     below the target row (no magnitude tie-break).

package matrix

import "fmt"

const (
	opReduce = "Reduce"
	opRREF   = "RREF"
)

// Reduction is the outcome of Reduce.
//
// Invariants on Matrix:
//   - every pivot (leading non-zero of a non-zero row) is One();
//   - a pivot's column is Zero() in every other row;
//   - pivot columns strictly increase with the row index;
//   - zero rows come last.
type Reduction[T Element[T]] struct {
	// Matrix is the reduced row echelon form (a fresh matrix).
	Matrix *Dense[T]
	// Swaps counts the row exchanges performed.
	Swaps int
	// PivotProduct is the product of every pivot value that was scaled to One().
	// Pivots already equal to One() contribute nothing.
	PivotProduct T
	// Pivots[i] is the pivot column of row i, for i < Rank().
	Pivots []int
}

// Rank returns the number of pivots.
func (rd *Reduction[T]) Rank() int { return len(rd.Pivots) }

// Reduce computes the reduced row echelon form of m. m is not modified.
//
// Implementation:
//   - Stage 1: clone m; r = c = 0; PivotProduct = One().
//   - Stage 2: while r < rows and c < cols:
//     a) find the first row p >= r with a non-zero entry in column c;
//     none → c++ and retry (column contributes no pivot);
//     b) p != r → SwapRows(p, r), Swaps++;
//     c) pivot = (r, c); if not One(): ScaleRow(r, 1/pivot), PivotProduct *= pivot;
//     d) for every row i != r with f = (i, c) non-zero: AddRow(r, i, -f);
//     e) r++, c++.
//
// Errors:
//   - ErrNilMatrix.
//   - Element division errors (wrapped) if T.Quo fails on a non-zero pivot.
//
// Complexity:
//   - Time O(r*c*min(r,c)) element operations, Space O(r*c) for the clone.
func Reduce[T Element[T]](m *Dense[T]) (*Reduction[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	work := m.Clone()
	one := oneOf[T]()
	res := &Reduction[T]{Matrix: work, PivotProduct: one}

	rows, cols := work.r, work.c
	r, c := 0, 0
	for r < rows && c < cols {
		// a) pivot search
		p := work.pivotRow(r, c)
		if p < 0 {
			c++

			continue
		}
		// b) bring the pivot row into place
		if p != r {
			_ = work.SwapRows(p, r) // indices validated by the loop bounds
			res.Swaps++
		}
		// c) normalize the pivot to One()
		pivot := work.data[r*cols+c]
		if !pivot.IsOne() {
			inv, err := one.Quo(pivot)
			if err != nil {
				return nil, matrixErrorf(opReduce, fmt.Errorf("pivot (%d,%d)=%s: %w", r, c, pivot, err))
			}
			_ = work.ScaleRow(r, inv)
			work.data[r*cols+c] = one // exact for inexact element types too
			res.PivotProduct = res.PivotProduct.Mul(pivot)
		}
		// d) clear column c above and below the pivot
		for i := 0; i < rows; i++ {
			if i == r {
				continue
			}
			f := work.data[i*cols+c]
			if f.IsZero() {
				continue
			}
			_ = work.AddRow(r, i, f.Neg())
		}
		// e) advance
		res.Pivots = append(res.Pivots, c)
		r++
		c++
	}

	return res, nil
}

// pivotRow returns the first row index >= from whose entry in column col is
// non-zero, or -1 when the column has no pivot candidate.
func (m *Dense[T]) pivotRow(from, col int) int {
	for i := from; i < m.r; i++ {
		if !m.data[i*m.c+col].IsZero() {
			return i
		}
	}

	return -1
}

// RREF returns only the reduced matrix of Reduce(m).
func RREF[T Element[T]](m *Dense[T]) (*Dense[T], error) {
	rd, err := Reduce(m)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	return rd.Matrix, nil
}

// leadingIdentity reports whether the first n pivots sit on columns 0..n-1,
// i.e. the left n×n block of the reduced matrix is the identity.
func (rd *Reduction[T]) leadingIdentity(n int) bool {
	if len(rd.Pivots) < n {
		return false
	}
	// Pivot columns strictly increase, so the n-th pivot at column n-1
	// forces pivots 0..n-1 onto the diagonal.
	return n == 0 || rd.Pivots[n-1] == n-1
}
