// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/compatibility checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil pointer stored in the interface (e.g. (*Dense)(nil)) is also rejected.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDims checks rows ≥ 1 and cols ≥ 1.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateMulDims checks the multiplication invariant on declared shapes only,
// before any element text is parsed: colsA == rowsB.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulDims(rowsA, colsA, rowsB, colsB int) error {
	if err := ValidateDims(rowsA, colsA); err != nil {
		return validatorErrorf("ValidateMulDims: A", err)
	}
	if err := ValidateDims(rowsB, colsB); err != nil {
		return validatorErrorf("ValidateMulDims: B", err)
	}
	if colsA != rowsB {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulDims: %dx%d * %dx%d", rowsA, colsA, rowsB, colsB),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// elementCount returns rows*cols after validating the shape.
// limit > 0 bounds the product; rows*cols must always fit into int.
//
// Errors: ErrInvalidDimensions, ErrTooLarge.
func elementCount(rows, cols, limit int) (int, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return 0, err
	}
	if rows > math.MaxInt/cols {
		return 0, validatorErrorf(fmt.Sprintf("elementCount: %dx%d", rows, cols), ErrTooLarge)
	}
	n := rows * cols
	if limit > 0 && n > limit {
		return 0, validatorErrorf(fmt.Sprintf("elementCount: %dx%d > %d", rows, cols, limit), ErrTooLarge)
	}

	return n, nil
}
