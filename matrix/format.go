// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// Format renders a result as plain text: one line per row, values separated
// by a single space, integers in base 10. Rows are joined with "\n" and there
// is no trailing newline.
//
//	[[19 22] [43 50]] → "19 22\n43 50"
//
// A nil result formats as the empty string.
func Format(m *IntDense) string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var k int
	for k = range m.data {
		if k > 0 {
			if k%m.c == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(strconv.FormatInt(m.data[k], 10))
	}

	return b.String()
}
