package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"kisprefs/internal/prefs"
	"kisprefs/internal/ui/widget"
)

// AutoConnectBounds places the server connection panel.
var AutoConnectBounds = Centered(52, 13)

// AutoConnectPanel edits the default server host/port and the auto-connect flag.
// Tab order: host, port, checkbox, Save, Cancel.
type AutoConnectPanel struct {
	prefs  prefs.Store
	panels PanelManager

	host   *widget.TextInput
	port   *widget.TextInput
	check  *widget.Checkbox
	save   *widget.Button
	cancel *widget.Button
	focus  *widget.FocusGroup

	width  int
	height int
}

// Ensure AutoConnectPanel implements View.
var _ View = (*AutoConnectPanel)(nil)

// NewAutoConnectPanel creates the panel seeded from the store.
func NewAutoConnectPanel(store prefs.Store, pm PanelManager) *AutoConnectPanel {
	p := &AutoConnectPanel{
		prefs:  store,
		panels: pm,
		host:   widget.NewTextInput("Host", 120, widget.FilterAlphaNumSym),
		port:   widget.NewTextInput("Port", 5, widget.FilterNum),
		check:  widget.NewCheckbox("Auto-connect"),
		save:   widget.NewButton("Save"),
		cancel: widget.NewButton("Cancel"),
		width:  52,
		height: 13,
	}
	p.host.SetText(store.FetchOpt(prefs.KeyDefaultHost))
	p.port.SetText(store.FetchOpt(prefs.KeyDefaultPort))
	p.check.SetChecked(store.FetchOpt(prefs.KeyAutoConnect) == "true")
	p.focus = widget.NewFocusGroup(p.host, p.port, p.check, p.save, p.cancel)
	return p
}

// SetSize implements Sizer.
func (p *AutoConnectPanel) SetSize(width, height int) {
	p.width, p.height = width, height
}

// Init implements View.
func (p *AutoConnectPanel) Init() tea.Cmd {
	return p.host.Init()
}

// Update implements View.
func (p *AutoConnectPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, tea.Batch(p.host.Update(msg), p.port.Update(msg))
	}
	if km.String() == "esc" {
		p.panels.KillPanel(p)
		return p, nil
	}
	w, res, cmd := p.focus.HandleKey(km)
	switch {
	case w == p.save && res == widget.Activated:
		p.commit()
		p.panels.KillPanel(p)
	case w == p.cancel && res == widget.Activated:
		p.panels.KillPanel(p)
	}
	return p, cmd
}

func (p *AutoConnectPanel) commit() {
	p.prefs.SetOpt(prefs.KeyDefaultHost, p.host.Text(), true)
	p.prefs.SetOpt(prefs.KeyDefaultPort, p.port.Text(), true)
	auto := "false"
	if p.check.Checked() {
		auto = "true"
	}
	p.prefs.SetOpt(prefs.KeyAutoConnect, auto, true)
}

// View implements View.
func (p *AutoConnectPanel) View() string {
	theme := ThemeFromPrefs(p.prefs)
	ws := theme.WidgetStyles()
	p.host.Styles, p.port.Styles = ws, ws
	p.check.Styles, p.save.Styles, p.cancel.Styles = ws, ws, ws

	body := packV(1,
		p.host.View(),
		p.port.View(),
		p.check.View(),
		buttonRow(p.width-4, p.cancel.View(), p.save.View()),
		renderHints(hintTab, hintEsc),
	)
	return renderFrame("Connect to Server", body, p.width, p.height, theme)
}
