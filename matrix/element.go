// SPDX-License-Identifier: MIT

package matrix

// Element is the capability set required of matrix entries.
// T is the implementing type itself, so Dense[T] needs no runtime type
// inspection. fraction.Fraction, scalar.Real and scalar.BigRat satisfy it.
//
// Contract:
//   - Zero and One return the identities and must work on the zero value of T.
//   - Neg must be a true additive inverse; elimination cancels entries with AddRow(r, i, -f).
//   - Quo must be exact (or well-defined) for non-zero divisors; a zero divisor returns an error.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) (T, error)
	Neg() T
	IsZero() bool
	IsOne() bool
	Equal(T) bool
	Zero() T
	One() T
	String() string
}

// zeroOf returns the additive identity of T.
func zeroOf[T Element[T]]() T {
	var z T

	return z.Zero()
}

// oneOf returns the multiplicative identity of T.
func oneOf[T Element[T]]() T {
	var z T

	return z.One()
}
