// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep shape fixed for the lifetime of a matrix; shape-changing operations allocate.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) fill; At/Set/Row: O(1); Col: O(r); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxRow         = "Row"
	ctxCol         = "Col"
	ctxNewDense    = "NewDense"
	ctxNewFrom     = "NewDenseFrom"
	ctxFromRows    = "NewFromRows"
	ctxFromColumns = "NewFromColumns"
)

// ---------- Formatting literals ----------
const (
	_fmtSep      = ", "
	_fmtRowClose = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Shape: "Dense.<method>(row,col): <sentinel>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (both >= 1 for every constructed value).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Element[T]] struct {
	r, c int // row and column counts, fixed after construction
	data []T // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c matrix filled with T's additive identity.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and fill it with Zero().
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element[T]](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxNewDense, rows, cols, ErrInvalidDimensions)
	}

	// Element zero values are not required to be the additive identity
	// (e.g. a struct with an unset denominator), so fill explicitly.
	zero := zeroOf[T]()
	buf := make([]T, rows*cols)
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom creates an r×c matrix from a row-major flat slice.
// The slice is copied; later changes to data do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func NewDenseFrom[T Element[T]](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxNewFrom, rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, denseErrorf(ctxNewFrom, rows, cols, fmt.Errorf("len(data)=%d: %w", len(data), ErrDimensionMismatch))
	}

	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewFromRows creates a matrix whose i-th row is rows[i].
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or any row is empty.
//   - ErrRaggedInput when rows differ in length.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T Element[T]](rows [][]T) (*Dense[T], error) {
	r, c, err := nestedShape(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	buf := make([]T, 0, r*c)
	for _, row := range rows { // fixed i order
		buf = append(buf, row...)
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// NewFromColumns creates a matrix whose j-th column is cols[j].
// Input is transposed into row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when cols is empty or any column is empty.
//   - ErrRaggedInput when columns differ in length.
func NewFromColumns[T Element[T]](cols [][]T) (*Dense[T], error) {
	c, r, err := nestedShape(cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromColumns, err)
	}

	buf := make([]T, r*c)
	for j, col := range cols {
		for i, v := range col {
			buf[i*c+j] = v
		}
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// nestedShape returns (outer, inner) lengths of a rectangular nested slice.
func nestedShape[T any](nested [][]T) (int, int, error) {
	if len(nested) == 0 {
		return 0, 0, ErrInvalidDimensions
	}
	inner := len(nested[0])
	for i, s := range nested {
		if len(s) == 0 {
			return 0, 0, fmt.Errorf("entry %d is empty: %w", i, ErrInvalidDimensions)
		}
		if len(s) != inner {
			return 0, 0, fmt.Errorf("entry %d has length %d, want %d: %w", i, len(s), inner, ErrRaggedInput)
		}
	}

	return len(nested), inner, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (int, int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// tagged with the calling method.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col), or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange without writing.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a view of row r that aliases the matrix storage.
// Writes through the view change the matrix. The capacity is clipped to the
// row, so append on the view reallocates instead of overwriting row r+1.
// The view must not be retained past the matrix.
//
// Errors:
//   - ErrOutOfRange when r is outside [0, Rows()).
func (m *Dense[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= m.r {
		return nil, denseErrorf(ctxRow, r, 0, ErrOutOfRange)
	}
	lo, hi := r*m.c, (r+1)*m.c

	return m.data[lo:hi:hi], nil
}

// row is the unchecked internal form of Row.
func (m *Dense[T]) row(r int) []T {
	lo, hi := r*m.c, (r+1)*m.c

	return m.data[lo:hi:hi]
}

// Col returns a copy of column c (columns are strided, so they cannot alias).
//
// Errors:
//   - ErrOutOfRange when c is outside [0, Cols()).
func (m *Dense[T]) Col(c int) ([]T, error) {
	if c < 0 || c >= m.c {
		return nil, denseErrorf(ctxCol, 0, c, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+c]
	}

	return out, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// Equal reports whether m and o have the same shape and elementwise-equal contents.
// A nil operand equals only another nil.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// String renders elements row-major: ", " between elements, each row
// terminated by "\n". Intended for humans, not for parsing.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		for j, v := range m.row(i) {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(v.String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
