// SPDX-License-Identifier: MIT

// Package scalar provides additional element types for package matrix.
//
// Real wraps float64 for callers that accept rounding; BigRat wraps
// math/big.Rat for exact arithmetic without int64 bounds.
//
// Notes:
//   - Real.IsZero is an exact comparison. Elimination picks the first
//     non-zero pivot, so round-off residue is treated as a pivot; prefer
//     fraction.Fraction or BigRat when exact rank matters.
package scalar

import "strconv"

// Real is a float64 field element.
type Real float64

// Zero returns 0.
func (Real) Zero() Real { return 0 }

// One returns 1.
func (Real) One() Real { return 1 }

// Add returns x+y.
func (x Real) Add(y Real) Real { return x + y }

// Sub returns x-y.
func (x Real) Sub(y Real) Real { return x - y }

// Mul returns x*y.
func (x Real) Mul(y Real) Real { return x * y }

// Quo returns x/y, or ErrDivisionByZero when y == 0.
func (x Real) Quo(y Real) (Real, error) {
	if y == 0 {
		return 0, scalarErrorf("Real.Quo", ErrDivisionByZero)
	}

	return x / y, nil
}

// Neg returns -x.
func (x Real) Neg() Real { return -x }

// IsZero reports x == 0 exactly.
func (x Real) IsZero() bool { return x == 0 }

// IsOne reports x == 1 exactly.
func (x Real) IsOne() bool { return x == 1 }

// Equal reports x == y exactly.
func (x Real) Equal(y Real) bool { return x == y }

// String formats x with the shortest representation that round-trips.
func (x Real) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}
