// Package matrix parses, multiplies and formats small dense matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional NaN/Inf guard.
//   - ParseMatrix, which reads whitespace-separated numbers into a Dense of a
//     declared shape (line breaks are not row separators).
//   - Mul (exact product) and MulTruncated (product with every cell truncated
//     toward zero into an IntDense).
//   - Format, which renders an IntDense as space-separated rows.
//   - Request, which runs the whole pipeline in the order a form handler needs:
//     shape check, parse A, parse B, multiply.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrElementCountMismatch,
// ErrInvalidNumberFormat, ...) wrapped with call-site context; match them with
// errors.Is.
//
// Quick example:
//
//	a, _ := matrix.ParseMatrix("1 2 3 4", 2, 2)
//	b, _ := matrix.ParseMatrix("5 6 7 8", 2, 2)
//	c, _ := matrix.MulTruncated(a, b)
//	fmt.Println(matrix.Format(c)) // 19 22\n43 50
package matrix
