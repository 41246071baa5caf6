package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"kisprefs/internal/prefs"
	"kisprefs/internal/ui/widget"
)

// PickerBounds places a color picker as a 50x10 overlay centred on screen.
var PickerBounds = Centered(50, 10)

// ColorPicker edits one "<fg>,<bg>" color preference.
// Tab order: foreground, background, Save, Cancel.
type ColorPicker struct {
	prefs    prefs.Store
	panels   PanelManager
	prefName string

	fg     *widget.ColorSwatch
	bg     *widget.ColorSwatch
	save   *widget.Button
	cancel *widget.Button
	focus  *widget.FocusGroup

	width  int
	height int
}

// Ensure ColorPicker implements View.
var _ View = (*ColorPicker)(nil)

// NewColorPicker creates a picker. Call LinkColorPref to bind it to a preference.
func NewColorPicker(store prefs.Store, pm PanelManager) *ColorPicker {
	p := &ColorPicker{
		prefs:  store,
		panels: pm,
		fg:     widget.NewColorSwatch(),
		bg:     widget.NewColorSwatch(),
		save:   widget.NewButton("Save"),
		cancel: widget.NewButton("Cancel"),
		width:  50,
		height: 10,
	}
	p.focus = widget.NewFocusGroup(p.fg, p.bg, p.save, p.cancel)
	return p
}

// LinkColorPref binds the picker to key and seeds both swatches from its value.
// A value with fewer than two tokens leaves the missing swatch at its default.
func (p *ColorPicker) LinkColorPref(key string) {
	p.prefName = key
	tokens := prefs.Tokenize(p.prefs.FetchOpt(key))
	if len(tokens) >= 1 {
		p.fg.SetColor(tokens[0])
	}
	if len(tokens) >= 2 {
		p.bg.SetColor(tokens[1])
	}
}

// PrefName returns the bound preference key.
func (p *ColorPicker) PrefName() string { return p.prefName }

// Foreground returns the selected foreground name.
func (p *ColorPicker) Foreground() string { return p.fg.Color() }

// Background returns the selected background name.
func (p *ColorPicker) Background() string { return p.bg.Color() }

// SetSize implements Sizer.
func (p *ColorPicker) SetSize(width, height int) {
	p.width, p.height = width, height
}

// Init implements View.
func (p *ColorPicker) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *ColorPicker) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
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

func (p *ColorPicker) commit() {
	if p.prefName == "" {
		return
	}
	p.prefs.SetOpt(p.prefName, p.fg.Color()+","+p.bg.Color(), true)
}

// View implements View.
func (p *ColorPicker) View() string {
	theme := ThemeFromPrefs(p.prefs)
	ws := theme.WidgetStyles()
	for _, s := range []*widget.ColorSwatch{p.fg, p.bg} {
		s.Styles = ws
	}
	p.save.Styles, p.cancel.Styles = ws, ws

	inner := p.width - 4
	body := packV(0,
		theme.Text.Render("Foreground:"),
		p.fg.View(),
		theme.Text.Render("Background:"),
		p.bg.View(),
		" ",
		buttonRow(inner, p.cancel.View(), p.save.View()),
		renderHints(hintTab, hintMove, hintEsc),
	)
	return renderFrame("Edit Color: "+p.prefName, body, p.width, p.height, theme)
}
