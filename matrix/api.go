// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for the form pipeline.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.

package matrix

// Product is an alias for Mul: exact float64 product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// MultiplyMatrices is an alias for MulTruncated: the integer product with
// every cell truncated toward zero.
// Complexity: O(r*n*c).
func MultiplyMatrices(a, b Matrix) (*IntDense, error) { return MulTruncated(a, b) }

// MultiplyText parses both texts and multiplies them in one call.
// It is Request{...}.Compute with positional arguments.
func MultiplyText(textA string, rowsA, colsA int, textB string, rowsB, colsB int, opts ...Option) (*IntDense, error) {
	return Request{
		TextA: textA, RowsA: rowsA, ColsA: colsA,
		TextB: textB, RowsB: rowsB, ColsB: colsB,
	}.Compute(opts...)
}
