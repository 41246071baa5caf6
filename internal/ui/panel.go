package ui

import tea "github.com/charmbracelet/bubbletea"

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds on screen.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// PanelManager opens and closes panels. It is handed to every panel at
// construction so a panel can spawn a child or close itself.
type PanelManager interface {
	// AddPanel takes ownership of p, puts it on top and returns its Init command.
	AddPanel(p Panel) tea.Cmd
	// KillPanel closes the panel hosting v.
	KillPanel(v View)
}

// Centered returns bounds of a fixed-size panel centred on screen, shrunk to fit.
func Centered(w, h int) BoundsFunc {
	return func(width, height int) (int, int, int, int) {
		pw, ph := min(w, width), min(h, height)
		return max((width-pw)/2, 0), max((height-ph)/2, 0), pw, ph
	}
}

// FullScreen returns bounds covering the terminal minus a margin on every side.
func FullScreen(margin int) BoundsFunc {
	return func(width, height int) (int, int, int, int) {
		return margin, margin, max(width-2*margin, 0), max(height-2*margin, 0)
	}
}
