package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt composites fg over base with fg's top-left cell at (x, y).
// base is padded to height lines of width cells first, so panels can be
// placed over a short or empty base view.
func overlayAt(base, fg string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	fgLines := strings.Split(fg, "\n")
	fgWidth := 0
	for _, l := range fgLines {
		fgWidth = max(fgWidth, ansi.StringWidth(l))
	}

	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padCells(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		mid := padCells(line, fgWidth)
		right := ansi.TruncateLeft(target, x+fgWidth, "")
		baseLines[row] = left + mid + right
	}
	return strings.Join(baseLines, "\n")
}

func padCells(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
