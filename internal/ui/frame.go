package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"kisprefs/internal/ui/textutil"
)

// renderFrame draws body inside a rounded border of exactly w x h cells with
// title set into the top edge.
func renderFrame(title, body string, w, h int, theme Theme) string {
	if w < 4 {
		w = 4
	}
	if h < 3 {
		h = 3
	}
	b := lipgloss.RoundedBorder()
	borderFG := theme.Border.GetForeground()

	inner := w - 2
	label := ""
	if title != "" {
		label = " " + textutil.Truncate(title, max(inner-4, 0)) + " "
	}
	fill := max(inner-1-textutil.Width(label), 0)
	edge := lipgloss.NewStyle().Foreground(borderFG)
	top := edge.Render(b.TopLeft+b.Top) +
		theme.Text.Bold(true).Render(label) +
		edge.Render(strings.Repeat(b.Top, fill)+b.TopRight)

	box := lipgloss.NewStyle().
		Border(b, false, true, true, true).
		BorderForeground(borderFG).
		Width(inner).
		Height(h - 2).
		MaxHeight(h - 1).
		Padding(0, 1)
	return top + "\n" + box.Render(body)
}

// packV stacks parts vertically with spacing blank lines between them.
func packV(spacing int, parts ...string) string {
	gap := strings.Repeat("\n", spacing)
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n"+gap)
}

// buttonRow lays buttons out left to right, centred in width cells.
func buttonRow(width int, buttons ...string) string {
	row := strings.Join(buttons, "  ")
	return lipgloss.PlaceHorizontal(max(width, lipgloss.Width(row)), lipgloss.Center, row)
}

// renderHints renders a one-line key hint bar.
func renderHints(bindings ...key.Binding) string {
	h := help.New()
	h.Styles.ShortKey = Styles.HintKey
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h.ShortHelpView(bindings)
}

// Bindings shared by the panels' hint bars.
var (
	hintTab    = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next"))
	hintSelect = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	hintEsc    = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	hintMove   = key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "color"))
	hintToggle = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "show/hide"))
	hintOrder  = key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "move"))
	hintLeader = key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "commands"))
	hintQuit   = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
)
