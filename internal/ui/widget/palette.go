package widget

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PaletteSize is the number of selectable colors.
const PaletteSize = 16

// PaletteEntry is one selectable terminal color.
type PaletteEntry struct {
	Name string // display name, also the value stored in preferences
	ANSI int    // terminal color index 0-15
}

// Color returns the lipgloss color for the entry.
func (p PaletteEntry) Color() lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(p.ANSI))
}

// Palette holds the 8 base colors followed by their bright variants.
var Palette = [PaletteSize]PaletteEntry{
	{"Black", 0},
	{"Red", 1},
	{"Green", 2},
	{"Yellow", 3},
	{"Blue", 4},
	{"Magenta", 5},
	{"Cyan", 6},
	{"White", 7},
	{"Grey", 8},
	{"Hi-Red", 9},
	{"Hi-Green", 10},
	{"Hi-Yellow", 11},
	{"Hi-Blue", 12},
	{"Hi-Magenta", 13},
	{"Hi-Cyan", 14},
	{"Hi-White", 15},
}

// PaletteIndex returns the palette position of name (case-insensitive), or -1.
func PaletteIndex(name string) int {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, p := range Palette {
		if strings.ToLower(p.Name) == n {
			return i
		}
	}
	return -1
}

// ColorByName returns the terminal color for a palette name and whether it matched.
func ColorByName(name string) (lipgloss.Color, bool) {
	i := PaletteIndex(name)
	if i < 0 {
		return "", false
	}
	return Palette[i].Color(), true
}
