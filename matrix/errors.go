// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (wrapped with call-site
// context via %w) and tests check them via errors.Is. No operation panics on
// caller-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping.
// Element-level failures (e.g. fraction.ErrDivisionByZero) are propagated
// wrapped, so errors.Is still matches the element package sentinel.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that a nested initializer has no rows / an empty row.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible sizes: flat initializer length,
	// Add/Sub shapes, Mul inner dimension, vector length in Solve/MatVec.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedInput indicates nested rows (or columns) of unequal length.
	ErrRaggedInput = errors.New("matrix: ragged input")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the matrix has no inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
