// SPDX-License-Identifier: MIT

// Package matrix - the end-to-end multiplication request.
//
// Request bundles two matrix texts with their declared shapes and runs the
// checks in a fixed order, so a caller (an HTTP form handler, a CLI) only has
// to map the returned error to a message:
//
//	dims ≥ 1 → colsA == rowsB → parse A → parse B → MulTruncated
//
// The shape check runs before any element text is parsed.

package matrix

import (
	"errors"
	"fmt"
)

const opCompute = "Request.Compute"

// Operand names used in OperandError.
const (
	OperandA = "A"
	OperandB = "B"
)

// Request is a MultiplicationRequest: two raw texts plus declared shapes.
// Values are request-scoped and never mutated by Compute.
type Request struct {
	TextA        string
	RowsA, ColsA int
	TextB        string
	RowsB, ColsB int
}

// OperandError tells which operand failed to parse or exceeded the limit.
// errors.Is on an OperandError still matches the underlying sentinel.
type OperandError struct {
	Operand string // OperandA or OperandB
	Err     error
}

// Error implements error.
func (e *OperandError) Error() string {
	return fmt.Sprintf("matrix %s: %v", e.Operand, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *OperandError) Unwrap() error { return e.Err }

// OperandOf returns the operand name carried by err ("A", "B") or "" when err
// is not tied to a single operand.
func OperandOf(err error) string {
	var oe *OperandError
	if errors.As(err, &oe) {
		return oe.Operand
	}

	return ""
}

// Compute validates the request, parses both operands and returns the
// truncated product.
//
// Implementation:
//   - Stage 1: ValidateMulDims (ErrInvalidDimensions, ErrDimensionMismatch).
//   - Stage 2: ParseMatrix(A) then ParseMatrix(B); failures are wrapped in
//     *OperandError. The result shape is also checked against the limit.
//   - Stage 3: MulTruncated.
//
// Behavior highlights:
//   - The first failing stage wins; nothing after it runs.
//   - No partial result: either a full *IntDense or an error.
//
// Complexity:
//   - Time O(len(text) + rowsA*colsA*colsB), Space O(rowsA*colsB).
func (r Request) Compute(opts ...Option) (*IntDense, error) {
	if err := ValidateMulDims(r.RowsA, r.ColsA, r.RowsB, r.ColsB); err != nil {
		return nil, matrixErrorf(opCompute, err)
	}
	o := gatherOptions(opts...)
	if _, err := elementCount(r.RowsA, r.ColsB, o.maxElements); err != nil {
		return nil, matrixErrorf(opCompute, err)
	}

	a, err := ParseMatrix(r.TextA, r.RowsA, r.ColsA, opts...)
	if err != nil {
		return nil, matrixErrorf(opCompute, &OperandError{Operand: OperandA, Err: err})
	}
	b, err := ParseMatrix(r.TextB, r.RowsB, r.ColsB, opts...)
	if err != nil {
		return nil, matrixErrorf(opCompute, &OperandError{Operand: OperandB, Err: err})
	}

	out, err := MulTruncated(a, b)
	if err != nil {
		return nil, matrixErrorf(opCompute, err)
	}

	return out, nil
}
