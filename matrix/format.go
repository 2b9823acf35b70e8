package matrix

import (
	"fmt"
	"strings"
)

// Rendering delimiters for the bordered table format.
const (
	_fmtRowOpen  = "|"
	_fmtRowClose = "|\n"
	_fmtPad      = 1     // leading alignment spaces per cell
)

// String renders the matrix as a bordered table, one line per row.
// Every element is formatted with fmt.Sprint and right-aligned in a
// column sized to that column's widest rendering plus one leading
// space; one more space separates the cell from what follows:
//
//	| 1     2  3 |
//	| 4  -100  0 |
//	| 7     8  9 |
//
// A matrix with zero rows renders as the empty string.
// Complexity: O(r*c) formatting passes, O(r*c) space.
func (m *Matrix[T]) String() string {
	// First pass: size each column to its widest rendered element.
	widths := make([]int, m.c)
	var i, j, n int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			if n = len(fmt.Sprint(m.data[m.offset(i, j)])); n > widths[j] {
				widths[j] = n
			}
		}
		widths[j] += _fmtPad
	}

	// Second pass: emit bordered rows.
	var b strings.Builder
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen) // open row
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%*s ", widths[j], fmt.Sprint(m.data[m.offset(i, j)]))
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
