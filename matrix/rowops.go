// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Purpose:
//   - The three in-place primitives that elimination is built from.
//   - Every index is validated before the first write, so a failed call
//     leaves the matrix unchanged.

package matrix

const (
	ctxSwapRows = "SwapRows"
	ctxScaleRow = "ScaleRow"
	ctxAddRow   = "AddRow"
)

// SwapRows exchanges rows r1 and r2 in place. r1 == r2 is a no-op.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense[T]) SwapRows(r1, r2 int) error {
	if err := validateRow(m, ctxSwapRows, r1); err != nil {
		return err
	}
	if err := validateRow(m, ctxSwapRows, r2); err != nil {
		return err
	}
	if r1 == r2 {
		return nil
	}

	a, b := m.row(r1), m.row(r2)
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// ScaleRow multiplies every element of row r by s in place.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense[T]) ScaleRow(r int, s T) error {
	if err := validateRow(m, ctxScaleRow, r); err != nil {
		return err
	}

	row := m.row(r)
	for j, v := range row {
		row[j] = v.Mul(s)
	}

	return nil
}

// AddRow performs dst[col] += s * src[col] for every column, in place.
// This is the only primitive used to cancel an entry during elimination.
// src == dst is allowed (the row becomes (1+s)·row).
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense[T]) AddRow(src, dst int, s T) error {
	if err := validateRow(m, ctxAddRow, src); err != nil {
		return err
	}
	if err := validateRow(m, ctxAddRow, dst); err != nil {
		return err
	}

	from, to := m.row(src), m.row(dst)
	for j := range to {
		to[j] = to[j].Add(s.Mul(from[j]))
	}

	return nil
}
