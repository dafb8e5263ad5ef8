// Package linalg is a small exact linear-algebra toolkit: rational numbers
// that never round, a generic dense matrix, and Gauss–Jordan elimination with
// the bookkeeping needed to recover determinants and solutions.
//
// What is inside?
//
//	fraction/ - exact int64 fractions, always in lowest terms
//	scalar/   - other element types: float64 (Real) and math/big (BigRat)
//	matrix/   - Dense[T], row operations, Reduce/RREF, Det, Rank, Solve, Inverse
//	cmd/      - linsolve, a CLI over YAML system documents
//
// Elements are any type satisfying matrix.Element, so the same elimination runs
// over fraction.Fraction, scalar.Real and scalar.BigRat.
//
// Quick example:
//
//	    | 1 -2  1 |       | 0 |
//	A = | 0  2 -8 |,  b = | 8 |   →   det(A) = 60, x = (1, 0, -1)
//	    | 5  0 -5 |       |10 |
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
