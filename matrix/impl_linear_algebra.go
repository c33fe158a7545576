// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication kernels on any Matrix
// implementation: the exact float64 product (Mul) and the integer product
// truncated toward zero (MulTruncated). All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use central validators and wrap errors via matrixErrorf.
//   - Loop order is fixed; results are bitwise reproducible.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// Bounds of the int64 range as float64. float64(math.MaxInt64) rounds up to
// 2^63, so valid truncated values satisfy minInt64F <= t < maxInt64F.
const (
	maxInt64F = float64(math.MaxInt64)
	minInt64F = float64(math.MinInt64)
)

// Operation name constants for unified error wrapping.
const (
	opMul          = "Mul"
	opMulTruncated = "MulTruncated"
	opTruncate     = "Truncate"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a × b as a new Dense of shape a.Rows() × b.Cols().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: allocate the result Dense.
//   - Stage 3: if both operands are *Dense, run the flat-slice i→j→k loop;
//     otherwise fall back to the generic At/Set triple loop in the same order.
//
// Behavior highlights:
//   - Every cell is Σ_k a[i,k]*b[k,j] accumulated from ZeroSum in ascending k,
//     on both paths, so fast path and fallback agree bitwise.
//   - 0*Inf propagates as NaN; zeros are not skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opMul).
//   - ErrNaNInf when a cell of the product is non-finite (both paths).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k     int
		av, bv, acc float64
		rowA, rowR  int
	)
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)

	// Fast-path for two Dense matrices.
	if okA && okB {
		// da.data layout: i*aCols + k
		// db.data layout: k*bCols + j
		for i = 0; i < aRows; i++ {
			rowA = i * aCols
			rowR = i * bCols
			for j = 0; j < bCols; j++ {
				acc = ZeroSum
				for k = 0; k < aCols; k++ {
					acc += da.data[rowA+k] * db.data[k*bCols+j]
				}
				if res.validateNaNInf && isNonFinite(acc) {
					return nil, matrixErrorf(opMul, denseErrorf(ctxSet, i, j, ErrNaNInf))
				}
				res.data[rowR+j] = acc
			}
		}

		return res, nil
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Truncate converts every element of m to int64 by discarding the fractional
// part toward zero (2.9 → 2, -2.9 → -2). Nothing is rounded.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrNaNInf for NaN/±Inf elements; ErrIntegerOverflow when the truncated
//     value is outside [math.MinInt64, math.MaxInt64]. Both carry coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Truncate(m Matrix) (*IntDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTruncate, err)
	}
	r, c := m.Rows(), m.Cols()
	n, err := elementCount(r, c, 0)
	if err != nil {
		return nil, matrixErrorf(opTruncate, err)
	}
	out := &IntDense{r: r, c: c, data: make([]int64, n)}

	var (
		i, j int
		v    float64
		iv   int64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTruncate, err)
			}
			if iv, err = truncateToInt64(v); err != nil {
				return nil, matrixErrorf(opTruncate, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			out.data[i*c+j] = iv
		}
	}

	return out, nil
}

// MulTruncated computes a × b and truncates every cell toward zero:
//
//	result[i][j] = trunc( Σ_k a[i][k] * b[k][j] )
//
// The shape is a.Rows() × b.Cols(). The sum is formed exactly as in Mul and
// only then truncated; the fractional part of the whole dot product is dropped
// (1.5*2 → 3, 0.5*0.5 → 0, -1.5*2 → -3).
//
// Truncation rather than rounding is the long-standing observable behavior of
// the form this package backs. It loses information for real-valued inputs;
// use Mul when the exact product is needed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (checked before any arithmetic).
//   - ErrNaNInf, ErrIntegerOverflow. No partial result is returned.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulTruncated(a, b Matrix) (*IntDense, error) {
	p, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulTruncated, err)
	}
	out, err := Truncate(p)
	if err != nil {
		return nil, matrixErrorf(opMulTruncated, err)
	}

	return out, nil
}

// truncateToInt64 drops the fractional part of v toward zero.
func truncateToInt64(v float64) (int64, error) {
	if isNonFinite(v) {
		return 0, ErrNaNInf
	}
	t := math.Trunc(v)
	if t >= maxInt64F || t < minInt64F {
		return 0, ErrIntegerOverflow
	}

	return int64(t), nil
}
