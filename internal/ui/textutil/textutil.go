// Package textutil measures, truncates and pads text by terminal cell width.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most w cells, ending in Ellipsis when cut.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if Width(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, Ellipsis)
}

// PadRight left-aligns s in a field of w cells, truncating if it does not fit.
func PadRight(s string, w int) string {
	if Width(s) >= w {
		return Truncate(s, w)
	}
	return runewidth.FillRight(s, w)
}

// PadLeft right-aligns s in a field of w cells, truncating if it does not fit.
func PadLeft(s string, w int) string {
	if Width(s) >= w {
		return Truncate(s, w)
	}
	return runewidth.FillLeft(s, w)
}

// Center places s in the middle of a field of w cells.
func Center(s string, w int) string {
	sw := Width(s)
	if sw >= w {
		return Truncate(s, w)
	}
	left := (w - sw) / 2
	return runewidth.FillRight(runewidth.FillLeft(s, sw+left), w)
}
