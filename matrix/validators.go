// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Composite kernels follow a fixed sequence: NotNil -> Shape -> Square.
//  - Each validator documents what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T Element[T]](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil. Returns ErrDimensionMismatch otherwise.
func ValidateSameShape[T Element[T]](a, b *Dense[T]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is NotNil(a) -> NotNil(b) -> SameShape(a, b).
func ValidateBinarySameShape[T Element[T]](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Returns ErrNonSquare otherwise.
func ValidateSquare[T Element[T]](m *Dense[T]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len=%d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// validateRow ensures 0 <= r < m.Rows(); used by the row operations.
func validateRow[T Element[T]](m *Dense[T], method string, r int) error {
	if r < 0 || r >= m.r {
		return denseErrorf(method, r, 0, ErrOutOfRange)
	}

	return nil
}
