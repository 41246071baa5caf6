package ui

import (
	"github.com/charmbracelet/lipgloss"

	"kisprefs/internal/prefs"
	"kisprefs/internal/ui/widget"
)

// Theme is the panel chrome derived from the color preferences.
type Theme struct {
	Text   lipgloss.Style
	Border lipgloss.Style
}

// ColorFromPref builds a style from a "<fg>,<bg>" color preference.
// Unknown or missing colors fall back to fallbackFG on the terminal's own background.
func ColorFromPref(store prefs.Store, key string, fallbackFG lipgloss.Color) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(fallbackFG)
	tokens := prefs.Tokenize(store.FetchOpt(key))
	if len(tokens) >= 1 {
		if c, ok := widget.ColorByName(tokens[0]); ok {
			st = st.Foreground(c)
		}
	}
	// Black background means "terminal default"; painting it would hide
	// the user's own terminal background.
	if len(tokens) >= 2 && widget.PaletteIndex(tokens[1]) > 0 {
		c, _ := widget.ColorByName(tokens[1])
		st = st.Background(c)
	}
	return st
}

// ThemeFromPrefs reads panel_text_color and panel_border_color.
func ThemeFromPrefs(store prefs.Store) Theme {
	return Theme{
		Text:   ColorFromPref(store, prefs.KeyPanelTextColor, lipgloss.Color(ColorText)),
		Border: ColorFromPref(store, prefs.KeyPanelBorderColor, lipgloss.Color(ColorAccent)),
	}
}

// WidgetStyles returns widget styles rendered in the theme's text color.
func (t Theme) WidgetStyles() widget.Styles {
	s := widget.DefaultStyles()
	s.Text = t.Text
	return s
}
