// SPDX-License-Identifier: MIT
// Package matrix - public constructor facades.
//
// Purpose:
//   - Provide thin entry points for common shapes (identity, zeros-like).
//   - Each facade delegates to the canonical constructor; no loop duplication.

package matrix

const opIdentityLike = "IdentityLike"

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2) fill + O(n) diagonal writes.
func NewIdentity[T Element[T]](n int) (*Dense[T], error) {
	id, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	one := oneOf[T]()
	for i := 0; i < n; i++ {
		id.data[i*n+i] = one
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Element[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.r, m.c)
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike[T Element[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return NewIdentity[T](m.r)
}
