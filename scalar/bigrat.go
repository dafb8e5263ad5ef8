// SPDX-License-Identifier: MIT

package scalar

import (
	"math/big"

	"github.com/katalvlaran/linalg/fraction"
)

// BigRat is an immutable arbitrary-precision rational.
// The zero value is 0. Every operation allocates a fresh big.Rat;
// the wrapped value is never mutated after construction.
type BigRat struct {
	r *big.Rat // nil means 0
}

// NewBigRat returns num/den, or ErrDivisionByZero when den == 0.
func NewBigRat(num, den int64) (BigRat, error) {
	if den == 0 {
		return BigRat{}, scalarErrorf("NewBigRat", ErrDivisionByZero)
	}

	return BigRat{r: big.NewRat(num, den)}, nil
}

// BigRatFromInt returns n/1.
func BigRatFromInt(n int64) BigRat {
	return BigRat{r: new(big.Rat).SetInt64(n)}
}

// BigRatFromFraction lifts an int64 fraction into BigRat.
func BigRatFromFraction(f fraction.Fraction) BigRat {
	return BigRat{r: big.NewRat(f.Num(), f.Den())}
}

var bigZero = new(big.Rat)

// rat returns the wrapped value, treating nil as 0. Callers must not mutate it.
func (x BigRat) rat() *big.Rat {
	if x.r == nil {
		return bigZero
	}

	return x.r
}

// Rat returns a copy of the underlying value.
func (x BigRat) Rat() *big.Rat { return new(big.Rat).Set(x.rat()) }

// Zero returns 0.
func (BigRat) Zero() BigRat { return BigRat{r: new(big.Rat)} }

// One returns 1.
func (BigRat) One() BigRat { return BigRat{r: big.NewRat(1, 1)} }

// Add returns x+y.
func (x BigRat) Add(y BigRat) BigRat { return BigRat{r: new(big.Rat).Add(x.rat(), y.rat())} }

// Sub returns x-y.
func (x BigRat) Sub(y BigRat) BigRat { return BigRat{r: new(big.Rat).Sub(x.rat(), y.rat())} }

// Mul returns x*y.
func (x BigRat) Mul(y BigRat) BigRat { return BigRat{r: new(big.Rat).Mul(x.rat(), y.rat())} }

// Quo returns x/y, or ErrDivisionByZero when y == 0.
func (x BigRat) Quo(y BigRat) (BigRat, error) {
	if y.rat().Sign() == 0 {
		return BigRat{}, scalarErrorf("BigRat.Quo", ErrDivisionByZero)
	}

	return BigRat{r: new(big.Rat).Quo(x.rat(), y.rat())}, nil
}

// Neg returns -x.
func (x BigRat) Neg() BigRat { return BigRat{r: new(big.Rat).Neg(x.rat())} }

// IsZero reports x == 0.
func (x BigRat) IsZero() bool { return x.rat().Sign() == 0 }

// IsOne reports x == 1.
func (x BigRat) IsOne() bool { return x.rat().Cmp(big.NewRat(1, 1)) == 0 }

// Equal reports numeric equality.
func (x BigRat) Equal(y BigRat) bool { return x.rat().Cmp(y.rat()) == 0 }

// String renders "n" for integers, otherwise "n/d".
func (x BigRat) String() string { return x.rat().RatString() }
