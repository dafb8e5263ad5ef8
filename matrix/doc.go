// Package matrix provides a generic dense matrix with exact Gaussian elimination.
//
// What & Why:
//
//	Dense[T] stores r×c elements of any field-like type T (see Element) in a
//	flat row-major slice (offset = i*cols + j). On top of three elementary row
//	operations (SwapRows, ScaleRow, AddRow) the package computes the reduced
//	row echelon form and derives determinant, rank, linear independence of
//	columns, unique solutions of A·x = b and inverses from it.
//
//	With T = fraction.Fraction (or scalar.BigRat) every result is exact.
//
// Pivoting:
//
//	Elimination takes the first non-zero entry of a column as the pivot; no
//	magnitude-based selection is done. Exact element types are unaffected;
//	for scalar.Real this can lose accuracy on ill-conditioned inputs.
//
// Ownership:
//
//	Dense values own their storage; Clone is a deep copy. Row returns a slice
//	that aliases the matrix row. It stays valid for the matrix lifetime (shape
//	never changes) but must not be retained past the matrix itself.
//
// Complexity:
//
//	At/Set/Row: O(1). Clone/Equal/Add/Scale: O(r*c). Mul: O(r*n*c).
//	Reduce and everything built on it: O(r*c*min(r,c)) element operations.
package matrix
