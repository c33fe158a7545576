// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (possibly wrapped with call-site
// context) and tests check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// shape -> dimension mismatch -> number format -> element count -> numeric range.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrElementCountMismatch is returned by ParseMatrix when the number of
	// whitespace-separated tokens differs from rows*cols.
	ErrElementCountMismatch = errors.New("matrix: element count does not match dimensions")

	// ErrInvalidNumberFormat is returned by ParseMatrix when a token is not a number.
	ErrInvalidNumberFormat = errors.New("matrix: invalid number format")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, truncation).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrIntegerOverflow signals that a truncated value does not fit into int64.
	ErrIntegerOverflow = errors.New("matrix: value overflows int64")

	// ErrTooLarge signals that rows*cols exceeds the configured element limit
	// (see WithMaxElements) or does not fit into int.
	ErrTooLarge = errors.New("matrix: element count exceeds limit")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
