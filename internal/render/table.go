// Package render provides human-facing table output for discover and plan.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// Table writes an aligned text table. Column widths are computed with
// runewidth so wide characters in table or column names line up.
func Table(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	writeRow := func(cells []string, styled bool) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			padded := cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
			if styled {
				padded = color.Bold.Sprint(padded)
			}
			parts[i] = padded
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	writeRow(headers, true)

	separators := make([]string, len(headers))
	for i := range headers {
		separators[i] = strings.Repeat("-", widths[i])
	}
	writeRow(separators, false)

	for _, row := range rows {
		writeRow(row, false)
	}
}

// KeyValue writes an aligned key/value listing with colored keys.
func KeyValue(w io.Writer, pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		if runewidth.StringWidth(p[0]) > width {
			width = runewidth.StringWidth(p[0])
		}
	}
	for _, p := range pairs {
		key := p[0] + strings.Repeat(" ", width-runewidth.StringWidth(p[0]))
		fmt.Fprintf(w, "%s  %s\n", color.Cyan.Sprint(key), p[1])
	}
}
