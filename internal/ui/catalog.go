package ui

import "kisprefs/internal/prefs"

// ColorPrefs are the color preferences offered by the Colors screen, in display order.
var ColorPrefs = []struct{ Pref, Name string }{
	{prefs.KeyPanelTextColor, "Text"},
	{prefs.KeyPanelBorderColor, "Window Border"},
	{"menu_text_color", "Menu Text"},
	{"menu_border_color", "Menu Border"},
	{"netlist_normal_color", "Network"},
	{"netlist_wep_color", "Network WEP"},
	{"netlist_crypt_color", "Network Encrypted"},
	{"netlist_group_color", "Network Group"},
	{"netlist_factory_color", "Network Factory"},
	{"status_normal_color", "Status Text"},
	{"info_normal_color", "Info Pane"},
	{"graph_signal_color", "Signal Graph"},
}

// ColumnInfo names a list column and describes it.
type ColumnInfo struct {
	Name        string
	Description string
}

// NetlistColumns are the columns the network list can show.
var NetlistColumns = []ColumnInfo{
	{"decay", "Recent activity"},
	{"name", "Name or SSID"},
	{"shortname", "Shortened name or SSID"},
	{"nettype", "Type of network"},
	{"crypt", "Encrypted network"},
	{"channel", "Channel"},
	{"freq_mhz", "Frequency"},
	{"packets", "Total packets"},
	{"packdata", "Number of data packets"},
	{"packllc", "Number of LLC packets"},
	{"packcrypt", "Number of encrypted packets"},
	{"datasize", "Data size"},
	{"signal_dbm", "Signal (dBm)"},
	{"signal_rssi", "Signal (RSSI)"},
	{"noise_dbm", "Noise (dBm)"},
	{"clients", "Number of clients"},
	{"bssid", "BSSID"},
	{"manuf", "Manufacturer"},
	{"beaconperc", "Percentage of expected beacons seen"},
}

// ClientlistColumns are the columns the client list can show.
var ClientlistColumns = []ColumnInfo{
	{"decay", "Recent activity"},
	{"type", "Type of client"},
	{"mac", "MAC address"},
	{"manuf", "Manufacturer"},
	{"ip", "Detected IP address"},
	{"channel", "Last active channel"},
	{"freq_mhz", "Last active frequency"},
	{"packets", "Total packets"},
	{"packdata", "Number of data packets"},
	{"packcrypt", "Number of encrypted packets"},
	{"datasize", "Data size"},
	{"signal_dbm", "Signal (dBm)"},
	{"noise_dbm", "Noise (dBm)"},
}
