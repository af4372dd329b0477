package table

import (
	"fmt"
	"io"
	"strings"
)

// rowLabelWidth is the width of the row index column ("%3d").
const rowLabelWidth = 3

// Format renders the (m+1)×(n+1) window of v anchored at (0,0) as text:
//
//	  2|0 1 1
//	  1|0 1 1
//	  0|0 0 0
//	   +------
//	    0 1 2
//
// Rows run from m down to 0 so the origin sits bottom-left. Every cell and
// column index is right-justified to the widest rendered value in the window,
// followed by one space.
//
// Returns ErrOutOfRange (wrapped) if (m, n) is not a cell of v.
// Complexity: O(m·n).
func Format[V any](v View[V], m, n int) (string, error) {
	if m < 0 || n < 0 || m >= v.Rows() || n >= v.Cols() {
		return "", fmt.Errorf("table.Format(%d,%d): %w", m, n, ErrOutOfRange)
	}

	// Stage 1: render every cell once and find the column width.
	cells := make([][]string, m+1)
	width := len(fmt.Sprint(n))
	for i := 0; i <= m; i++ {
		cells[i] = make([]string, n+1)
		for j := 0; j <= n; j++ {
			val, err := v.At(i, j)
			if err != nil {
				return "", err
			}
			s := fmt.Sprint(val)
			cells[i][j] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	// Stage 2: body, top row first.
	var sb strings.Builder
	for i := m; i >= 0; i-- {
		fmt.Fprintf(&sb, "%*d|", rowLabelWidth, i)
		for j := 0; j <= n; j++ {
			fmt.Fprintf(&sb, "%*s ", width, cells[i][j])
		}
		sb.WriteByte('\n')
	}

	// Stage 3: rule and column axis.
	sb.WriteString(strings.Repeat(" ", rowLabelWidth))
	sb.WriteByte('+')
	sb.WriteString(strings.Repeat("-", (width+1)*(n+1)))
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", rowLabelWidth+1))
	for j := 0; j <= n; j++ {
		fmt.Fprintf(&sb, "%*d ", width, j)
	}
	sb.WriteByte('\n')

	return sb.String(), nil
}

// FormatAll renders the whole of v. See Format.
func FormatAll[V any](v View[V]) (string, error) {
	return Format(v, v.Rows()-1, v.Cols()-1)
}

// Fprint writes Format(v, m, n) to w.
func Fprint[V any](w io.Writer, v View[V], m, n int) error {
	s, err := Format(v, m, n)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}

// FormatMatching renders an index-pair alignment as two lines, the X indices
// on top and the Y indices below, each value as "%3d ".
// Rows of unequal length are rendered as given.
func FormatMatching(f, g []int) string {
	var sb strings.Builder
	for _, row := range [][]int{f, g} {
		for _, v := range row {
			fmt.Fprintf(&sb, "%3d ", v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
