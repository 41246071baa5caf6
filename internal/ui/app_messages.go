package ui

// OpenScreenMsg asks the app to open a preferences screen (menu Enter or SPC c/a/n/l).
type OpenScreenMsg struct {
	Screen Screen
}
