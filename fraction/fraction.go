// SPDX-License-Identifier: MIT

// Package fraction - exact rational numbers over int64.
//
// Purpose:
//   - Provide a value type with exact +, −, ×, ÷ suitable as a field element
//     for Gaussian elimination (see package matrix).
//   - Keep every value canonical: lowest terms, positive denominator, zero as 0/1.
//
// Determinism:
//   - Pure value semantics; no hidden state, no allocation.
//
// Notes:
//   - Intermediate products are cross-reduced before multiplying to delay
//     int64 overflow; overflow beyond that is not detected. Use scalar.BigRat
//     when magnitudes are unbounded.
package fraction

import "strconv"

// Operation tags used when wrapping sentinels.
const (
	opNew    = "New"
	opQuo    = "Quo"
	opQuoInt = "QuoInt"
	opInv    = "Inv"
)

// Fraction is an exact rational number num/den kept in lowest terms.
// The zero value is 0 (stored denominator 0 is read as 1).
type Fraction struct {
	num int64 // carries the sign
	den int64 // > 0 for every constructed value; 0 only in the zero value
}

// New returns num/den reduced to lowest terms with a positive denominator.
//
// Implementation:
//   - Stage 1: reject den == 0 with ErrDivisionByZero.
//   - Stage 2: move the sign to the numerator, divide both by gcd(|num|, |den|).
//
// Complexity: O(log min(|num|, |den|)).
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fractionErrorf(opNew, ErrDivisionByZero)
	}

	return normalize(num, den), nil
}

// MustNew is like New but panics on a zero denominator.
// Intended for literals in tests and examples.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return f
}

// FromInt returns n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// normalize reduces num/den; den must be non-zero.
func normalize(num, den int64) Fraction {
	// Sign convention: denominator is always positive.
	if den < 0 {
		num, den = -num, -den
	}
	// gcd(0, den) == den, so zero collapses to 0/1 here as well.
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}

	return Fraction{num: num, den: den}
}

// gcd is the Euclidean algorithm on non-negative magnitudes.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// d returns the effective denominator (1 for the zero value).
func (f Fraction) d() int64 {
	if f.den == 0 {
		return 1
	}

	return f.den
}

// Num returns the canonical numerator (carries the sign).
func (f Fraction) Num() int64 { return f.num }

// Den returns the canonical denominator (always >= 1).
func (f Fraction) Den() int64 { return f.d() }

// Zero returns the additive identity 0/1.
func (Fraction) Zero() Fraction { return Fraction{num: 0, den: 1} }

// One returns the multiplicative identity 1/1.
func (Fraction) One() Fraction { return Fraction{num: 1, den: 1} }

// IsZero reports whether f == 0.
func (f Fraction) IsZero() bool { return f.num == 0 }

// IsOne reports whether f == 1.
func (f Fraction) IsOne() bool { return f.num == 1 && f.d() == 1 }

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// Equal reports structural equality of the canonical fields.
// Both operands are always canonical, so this is also numeric equality.
func (f Fraction) Equal(o Fraction) bool {
	return f.num == o.num && f.d() == o.d()
}

// Cmp compares f and o and returns -1, 0 or +1.
func (f Fraction) Cmp(o Fraction) int {
	l, r := f.num*o.d(), o.num*f.d() // denominators are positive; order is preserved
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Neg returns the additive inverse -f.
func (f Fraction) Neg() Fraction {
	return Fraction{num: -f.num, den: f.d()}
}

// Inv returns 1/f, or ErrDivisionByZero when f == 0.
func (f Fraction) Inv() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, fractionErrorf(opInv, ErrDivisionByZero)
	}

	return normalize(f.d(), f.num), nil
}

// Mul returns f*o.
//
// Implementation:
//   - Cross-reduce: g1 = gcd(|f.num|, o.den), g2 = gcd(|o.num|, f.den), then
//     multiply the reduced factors. The result is already in lowest terms.
//
// Complexity: O(log) for the two gcds.
func (f Fraction) Mul(o Fraction) Fraction {
	fd, od := f.d(), o.d()
	g1 := gcd(abs(f.num), od)
	g2 := gcd(abs(o.num), fd) // both >= 1: denominators are never 0 here

	return normalize((f.num/g1)*(o.num/g2), (fd/g2)*(od/g1))
}

// MulInt returns f*n.
func (f Fraction) MulInt(n int64) Fraction { return f.Mul(FromInt(n)) }

// Quo returns f/o, or ErrDivisionByZero when o == 0.
func (f Fraction) Quo(o Fraction) (Fraction, error) {
	if o.num == 0 {
		return Fraction{}, fractionErrorf(opQuo, ErrDivisionByZero)
	}

	return f.Mul(normalize(o.d(), o.num)), nil
}

// QuoInt returns f/n, or ErrDivisionByZero when n == 0.
func (f Fraction) QuoInt(n int64) (Fraction, error) {
	if n == 0 {
		return Fraction{}, fractionErrorf(opQuoInt, ErrDivisionByZero)
	}

	return f.Mul(normalize(1, n)), nil
}

// Add returns f+o over the least common denominator.
func (f Fraction) Add(o Fraction) Fraction {
	fd, od := f.d(), o.d()
	g := gcd(fd, od)

	return normalize(f.num*(od/g)+o.num*(fd/g), fd*(od/g))
}

// AddInt returns f+n.
func (f Fraction) AddInt(n int64) Fraction {
	return normalize(f.num+n*f.d(), f.d())
}

// Sub returns f-o.
func (f Fraction) Sub(o Fraction) Fraction { return f.Add(o.Neg()) }

// SubInt returns f-n.
func (f Fraction) SubInt(n int64) Fraction { return f.AddInt(-n) }

// ---------- in-place variants ----------

// AddAssign sets f = f+o.
func (f *Fraction) AddAssign(o Fraction) { *f = f.Add(o) }

// AddIntAssign sets f = f+n.
func (f *Fraction) AddIntAssign(n int64) { *f = f.AddInt(n) }

// MulAssign sets f = f*o.
func (f *Fraction) MulAssign(o Fraction) { *f = f.Mul(o) }

// MulIntAssign sets f = f*n.
func (f *Fraction) MulIntAssign(n int64) { *f = f.MulInt(n) }

// QuoAssign sets f = f/o. On error f is left unchanged.
func (f *Fraction) QuoAssign(o Fraction) error {
	q, err := f.Quo(o)
	if err != nil {
		return err
	}
	*f = q

	return nil
}

// QuoIntAssign sets f = f/n. On error f is left unchanged.
func (f *Fraction) QuoIntAssign(n int64) error {
	q, err := f.QuoInt(n)
	if err != nil {
		return err
	}
	*f = q

	return nil
}

// Float64 returns the nearest float64 approximation of f.
func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.d())
}

// String renders "n" when the denominator is 1, otherwise "n/d".
func (f Fraction) String() string {
	if f.d() == 1 {
		return strconv.FormatInt(f.num, 10)
	}

	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.d(), 10)
}
