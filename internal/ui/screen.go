package ui

import (
	"strings"

	"kisprefs/internal/prefs"
)

// Screen identifies a preferences screen reachable from the menu.
type Screen int

const (
	ScreenColors Screen = iota
	ScreenServer
	ScreenNetlistColumns
	ScreenClientlistColumns
)

// Screens lists the menu entries in display order.
var Screens = []Screen{ScreenColors, ScreenServer, ScreenNetlistColumns, ScreenClientlistColumns}

func (s Screen) String() string {
	switch s {
	case ScreenColors:
		return "Colors"
	case ScreenServer:
		return "Server Connection"
	case ScreenNetlistColumns:
		return "Network List Columns"
	case ScreenClientlistColumns:
		return "Client List Columns"
	default:
		return "Unknown"
	}
}

// Description is the one-line summary shown under the menu entry.
func (s Screen) Description() string {
	switch s {
	case ScreenColors:
		return "Foreground and background colors of UI elements"
	case ScreenServer:
		return "Default server and auto-connect on startup"
	case ScreenNetlistColumns:
		return "Columns shown in the network list, and their order"
	case ScreenClientlistColumns:
		return "Columns shown in the client list, and their order"
	default:
		return ""
	}
}

// NewScreenPanel builds the panel for s, bound to store and managed by pm.
func NewScreenPanel(s Screen, store prefs.Store, pm PanelManager) (Panel, bool) {
	switch s {
	case ScreenColors:
		v := NewColorList(store, pm)
		for _, c := range ColorPrefs {
			v.AddColorPref(c.Pref, c.Name)
		}
		return Panel{ID: "colors", View: v, Bounds: Centered(50, 20)}, true
	case ScreenServer:
		return Panel{ID: "server", View: NewAutoConnectPanel(store, pm), Bounds: AutoConnectBounds}, true
	case ScreenNetlistColumns:
		return Panel{ID: "netlist-columns", View: newColumnScreen(store, pm, NetlistColumns, prefs.KeyNetlistColumns, "Network"), Bounds: ColumnPrefsBounds}, true
	case ScreenClientlistColumns:
		return Panel{ID: "clientlist-columns", View: newColumnScreen(store, pm, ClientlistColumns, prefs.KeyClientlistColumns, "Client"), Bounds: ColumnPrefsBounds}, true
	}
	return Panel{}, false
}

func newColumnScreen(store prefs.Store, pm PanelManager, cols []ColumnInfo, pref, name string) *ColumnPrefsPanel {
	v := NewColumnPrefsPanel(store, pm)
	for _, c := range cols {
		v.AddColumn(c.Name, c.Description)
	}
	v.ColumnPref(pref, name)
	return v
}

// screenNames are the short names accepted by ParseScreen.
var screenNames = map[string]Screen{
	"colors":     ScreenColors,
	"server":     ScreenServer,
	"netlist":    ScreenNetlistColumns,
	"clientlist": ScreenClientlistColumns,
}

// ParseScreen maps a short name (colors, server, netlist, clientlist) to a Screen.
func ParseScreen(name string) (Screen, bool) {
	s, ok := screenNames[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}
