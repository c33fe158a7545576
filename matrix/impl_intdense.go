// SPDX-License-Identifier: MIT

// Package matrix - IntDense, the integer result of a truncated product.
//
// IntDense mirrors Dense (row-major flat buffer, bounds-checked accessors) but
// stores int64 and exposes no setters: a result is produced once by Truncate
// or MulTruncated and is read-only afterwards.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// IntDense is a read-only row-major matrix of int64 values.
type IntDense struct {
	r, c int     // rows, cols (>0)
	data []int64 // len == r*c, offset = i*c + j
}

var _ fmt.Stringer = (*IntDense)(nil)

// Rows returns the number of rows. O(1).
func (m *IntDense) Rows() int { return m.r }

// Cols returns the number of columns. O(1).
func (m *IntDense) Cols() int { return m.c }

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange wrapped with coordinates.
func (m *IntDense) At(row, col int) (int64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("IntDense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i.
func (m *IntDense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("IntDense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Data returns a copy of the row-major buffer.
func (m *IntDense) Data() []int64 {
	out := make([]int64, len(m.data))
	copy(out, m.data)

	return out
}

// ToRows returns the values as a freshly allocated [][]int64.
// Convenient for equality checks against literal tables.
func (m *IntDense) ToRows() [][]int64 {
	out := make([][]int64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]int64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as "[a, b]\n" lines, like Dense.String.
func (m *IntDense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatInt(m.data[base+j], 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
