package widget

import "github.com/charmbracelet/lipgloss"

// Styles used by widgets when they render themselves. Panels may replace
// Text to follow the user's panel_text_color preference.
type Styles struct {
	Text      lipgloss.Style
	Active    lipgloss.Style // focused button/checkbox label
	Indicator lipgloss.Style // ">" marker in front of a focused swatch
	Label     lipgloss.Style // text input labels
	Header    lipgloss.Style // table header cells
	Selected  lipgloss.Style // selected table row
}

// DefaultStyles returns the built-in widget styles.
func DefaultStyles() Styles {
	return Styles{
		Text: lipgloss.NewStyle(),
		Active: lipgloss.NewStyle().
			Reverse(true).
			Bold(true),
		Indicator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")),
		Header: lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
	}
}
