// Package ui implements the preference panels and the app that hosts them.
//
// Core abstractions:
//   - View: a panel or the menu, with its own model, update, view (Elm-style)
//   - Panel: a View plus the bounds it occupies on screen
//   - PanelManager: opens and closes panels; PanelStack is the implementation
//   - KeyHandler: leader-key (SPC) sequences dispatched from a KeybindRegistry
//
// Panels are built from the widgets in package widget and read and write
// through a prefs.Store. Save and Cancel both close the panel; only Save writes.
package ui
