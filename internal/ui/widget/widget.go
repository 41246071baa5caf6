// Package widget provides the focusable building blocks the preference panels are composed of.
//
// Every widget implements Widget. A panel keeps its widgets in a FocusGroup:
// Tab rotates focus, every other key goes to the active widget, and the
// Result the widget returns tells the panel whether something was activated
// (a button pressed, a checkbox toggled).
package widget

import tea "github.com/charmbracelet/bubbletea"

// Result is returned by Widget.HandleKey.
// Zero means the key had no notable effect; Activated means a button or
// checkbox fired. Some widgets return other positive values (ColorSwatch
// returns its new position plus one).
type Result int

const (
	Ignored   Result = 0
	Activated Result = 1
)

// Widget is a focusable component inside a panel.
type Widget interface {
	Activate()
	Deactivate()
	Active() bool
	HandleKey(msg tea.KeyMsg) (Result, tea.Cmd)
	View() string
}
