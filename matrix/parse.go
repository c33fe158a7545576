// SPDX-License-Identifier: MIT

// Package matrix - text ingestion and its inverse.
//
// ParseMatrix reads whitespace-separated numbers into a row-major Dense.
// Line breaks carry no meaning: a row is defined by position only, so
// "1 2\n3 4", "1 2 3 4" and "1\n2\n3\n4" are the same 2×2 input.
// Flatten/FormatFlat produce the token sequence back.

package matrix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const opParse = "ParseMatrix"

// ParseMatrix parses text into a rows×cols Dense in row-major order.
//
// Implementation:
//   - Stage 1: validate rows ≥ 1, cols ≥ 1 and the element limit from opts.
//   - Stage 2: split text on any run of Unicode whitespace (strings.Fields).
//   - Stage 3: parse every token as float64; the first bad token fails.
//   - Stage 4: compare the token count against rows*cols.
//   - Stage 5: token k lands at (k / cols, k % cols).
//
// Behavior highlights:
//   - Tokens are parsed before the count is checked, so "1 x" against a 2×2
//     reports ErrInvalidNumberFormat, not ErrElementCountMismatch.
//   - Under the default numeric policy NaN/±Inf tokens are invalid numbers.
//   - Pure function of its inputs.
//
// Errors:
//   - ErrInvalidDimensions, ErrTooLarge.
//   - ErrInvalidNumberFormat wrapped with the token position and text.
//   - ErrElementCountMismatch wrapped with got/want counts.
//
// Complexity:
//   - Time O(len(text)), Space O(rows*cols).
func ParseMatrix(text string, rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	want, err := elementCount(rows, cols, o.maxElements)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	tokens := strings.Fields(text)
	values := make([]float64, len(tokens))
	var (
		k   int
		tok string
		v   float64
	)
	for k, tok = range tokens {
		if v, err = parseNumber(tok, o.validateNaNInf); err != nil {
			return nil, matrixErrorf(opParse, fmt.Errorf("token %d %q: %w", k, tok, err))
		}
		values[k] = v
	}
	if len(values) != want {
		return nil, matrixErrorf(opParse,
			fmt.Errorf("got %d values for %dx%d: %w", len(values), rows, cols, ErrElementCountMismatch))
	}

	m, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}
	copy(m.data, values)

	return m, nil
}

// parseNumber converts a single token to float64. Out-of-range literals such
// as "1e999" overflow to ±Inf and then follow the non-finite policy.
func parseNumber(tok string, finiteOnly bool) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrInvalidNumberFormat
	}
	if finiteOnly && isNonFinite(v) {
		return 0, ErrInvalidNumberFormat
	}

	return v, nil
}

// Flatten returns the elements of m in row-major order.
// For any matrix M, ParseMatrix(FormatFlat(M), M.Rows(), M.Cols()) reproduces M.
//
// Errors: ErrNilMatrix, plus any At error of a custom implementation.
// Complexity: O(r*c).
func Flatten(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Flatten", err)
	}
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)
		return out, nil
	}

	r, c := m.Rows(), m.Cols()
	out := make([]float64, 0, r*c)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("Flatten", err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// FormatFlat renders m as one line per row with space-separated values,
// using the shortest float representation that parses back to the same value.
func FormatFlat(m Matrix) (string, error) {
	vals, err := Flatten(m)
	if err != nil {
		return "", err
	}
	c := m.Cols()
	var b strings.Builder
	for k, v := range vals {
		if k > 0 {
			if k%c == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}

	return b.String(), nil
}
