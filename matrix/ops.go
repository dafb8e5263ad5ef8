// SPDX-License-Identifier: MIT
// Package matrix provides element-generic arithmetic on Dense matrices:
// element-wise addition and subtraction, scalar scaling, matrix
// multiplication, transpose, matrix-vector product and horizontal
// augmentation. All functions validate fail-fast and never mutate operands.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opAugment   = "Augment"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + b, or a − b when negate is set.
// Shared by Add and Sub so validation and the flat loop live in one place.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..r*c-1 into a fresh buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[T Element[T]](a, b *Dense[T], negate bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := make([]T, len(a.data))
	for i := range a.data {
		if negate {
			out[i] = a.data[i].Sub(b.data[i])
		} else {
			out[i] = a.data[i].Add(b.data[i])
		}
	}

	return &Dense[T]{r: a.r, c: a.c, data: out}, nil
}

// Add returns the element-wise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func Add[T Element[T]](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns the element-wise difference a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func Sub[T Element[T]](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Scale returns s·m.
// Errors: ErrNilMatrix.
func Scale[T Element[T]](m *Dense[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := make([]T, len(m.data))
	for i, v := range m.data {
		out[i] = s.Mul(v)
	}

	return &Dense[T]{r: m.r, c: m.c, data: out}, nil
}

// Mul performs standard matrix multiplication a × b.
//
// Implementation:
//   - Stage 1: nil checks and inner-dimension match (a.Cols == b.Rows).
//   - Stage 2: i→j→k sum-of-products on the flat buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Element[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	res, err := NewDense[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int // loop iterators
		sum     T
	)
	for i = 0; i < a.r; i++ {
		rowA := a.data[i*a.c : (i+1)*a.c] // a.data layout: i*aCols + k
		for j = 0; j < b.c; j++ {
			sum = zeroOf[T]()
			for k = 0; k < a.c; k++ {
				sum = sum.Add(rowA[k].Mul(b.data[k*b.c+j])) // b.data layout: k*bCols + j
			}
			res.data[i*b.c+j] = sum
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose[T Element[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := make([]T, len(m.data))
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return &Dense[T]{r: m.c, c: m.r, data: out}, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != m.Cols().
func MatVec[T Element[T]](m *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		sum := zeroOf[T]()
		for j, v := range m.row(i) {
			sum = sum.Add(v.Mul(x[j]))
		}
		y[i] = sum
	}

	return y, nil
}

// Augment returns [a | b]: the columns of b appended to the right of a.
// Errors: ErrNilMatrix, ErrDimensionMismatch when row counts differ.
// Complexity: O(r*(ca+cb)).
func Augment[T Element[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opAugment, fmt.Errorf("rows %d vs %d: %w", a.r, b.r, ErrDimensionMismatch))
	}

	cols := a.c + b.c
	out := make([]T, 0, a.r*cols)
	for i := 0; i < a.r; i++ {
		out = append(out, a.row(i)...)
		out = append(out, b.row(i)...)
	}

	return &Dense[T]{r: a.r, c: cols, data: out}, nil
}

// augmentVec returns [a | b] for a column vector b; len(b) must equal a.Rows().
func augmentVec[T Element[T]](a *Dense[T], b []T) *Dense[T] {
	cols := a.c + 1
	out := make([]T, 0, a.r*cols)
	for i := 0; i < a.r; i++ {
		out = append(out, a.row(i)...)
		out = append(out, b[i])
	}

	return &Dense[T]{r: a.r, c: cols, data: out}
}
