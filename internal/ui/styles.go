package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors for chrome that is not driven by color preferences.
const (
	ColorAccent    = "86"  // Cyan/green - titles
	ColorHighlight = "205" // Magenta - selected items
	ColorMuted     = "241" // Gray - hints
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions for the menu and hint bars.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - menu title
	Selected lipgloss.Style // Highlighted/selected items
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Normal text
	Hint     lipgloss.Style // Help/hint text
	HintKey  lipgloss.Style // Key names inside hint bars
	Box      lipgloss.Style // Leader help box
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HintKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
}

// NewMenuDelegate returns the list delegate used by the screen menu.
func NewMenuDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.Styles.SelectedTitle = Styles.Selected.PaddingLeft(2)
	d.Styles.SelectedDesc = Styles.Muted.PaddingLeft(2)
	d.Styles.NormalTitle = Styles.Normal.PaddingLeft(2)
	d.Styles.NormalDesc = Styles.Muted.PaddingLeft(2)
	return d
}
