package prefs

// Preference keys shared by the panels and the defaults table.
const (
	KeyDefaultHost       = "default_host"
	KeyDefaultPort       = "default_port"
	KeyAutoConnect       = "autoconnect"
	KeyPanelTextColor    = "panel_text_color"
	KeyPanelBorderColor  = "panel_border_color"
	KeyNetlistColumns    = "netlist_columns"
	KeyClientlistColumns = "clientlist_columns"
)

// Defaults are applied by FileStore for keys missing from the preference file.
var Defaults = map[string]string{
	KeyDefaultHost:          "localhost",
	KeyDefaultPort:          "2501",
	KeyAutoConnect:          "true",
	KeyPanelTextColor:       "white,black",
	KeyPanelBorderColor:     "blue,black",
	"menu_text_color":       "white,black",
	"menu_border_color":     "cyan,black",
	"netlist_normal_color":  "green,black",
	"netlist_wep_color":     "red,black",
	"netlist_crypt_color":   "yellow,black",
	"netlist_group_color":   "blue,black",
	"netlist_factory_color": "magenta,black",
	"status_normal_color":   "white,black",
	"info_normal_color":     "white,black",
	"graph_signal_color":    "hi-green,black",
	KeyNetlistColumns:       "decay,name,nettype,crypt,channel,packets,datasize",
	KeyClientlistColumns:    "decay,type,mac,manuf,packets,signal_dbm",
}
