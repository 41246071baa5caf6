package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"kisprefs/internal/prefs"
	"kisprefs/internal/ui/widget"
)

// colorPref is one row of the color list.
type colorPref struct {
	Pref string
	Name string
}

// ColorList lists color preferences with their current values. Enter on a
// row opens a ColorPicker for it; the trailing Close row (or Esc) closes the list.
type ColorList struct {
	prefs  prefs.Store
	panels PanelManager
	colors []colorPref
	list   *widget.Table

	width  int
	height int
}

// Ensure ColorList implements View.
var _ View = (*ColorList)(nil)

// NewColorList creates an empty color list.
func NewColorList(store prefs.Store, pm PanelManager) *ColorList {
	t := widget.NewTable([]widget.Column{
		{Title: "Color", Width: 20},
		{Title: "Value", Width: 20},
	})
	t.Activate()
	p := &ColorList{
		prefs:  store,
		panels: pm,
		list:   t,
		width:  50,
		height: 20,
	}
	p.refresh()
	return p
}

// AddColorPref appends a row for preference pref, shown as name.
func (p *ColorList) AddColorPref(pref, name string) {
	p.colors = append(p.colors, colorPref{Pref: pref, Name: name})
	p.refresh()
}

// Selected returns the selected row index.
func (p *ColorList) Selected() int {
	return p.list.Selected()
}

// Select moves the row selection.
func (p *ColorList) Select(i int) {
	p.list.SetSelected(i)
}

// refresh rebuilds the rows from the store so edits made in a picker show up.
func (p *ColorList) refresh() {
	for i, c := range p.colors {
		p.list.ReplaceRow(i, []string{c.Name, strings.ToLower(p.prefs.FetchOpt(c.Pref))})
	}
	p.list.ReplaceRow(len(p.colors), []string{"Close", ""})
}

// SetSize implements Sizer.
func (p *ColorList) SetSize(width, height int) {
	p.width, p.height = width, height
	// frame (2) + hint line and its gap (2)
	p.list.SetHeight(height - 4)
}

// Init implements View.
func (p *ColorList) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *ColorList) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch km.String() {
	case "esc":
		p.panels.KillPanel(p)
		return p, nil
	case "enter":
		sel := p.list.Selected()
		switch {
		case sel == len(p.colors):
			p.panels.KillPanel(p)
			return p, nil
		case sel >= 0 && sel < len(p.colors):
			picker := NewColorPicker(p.prefs, p.panels)
			picker.LinkColorPref(p.colors[sel].Pref)
			return p, p.panels.AddPanel(Panel{
				ID:     "color-picker",
				View:   picker,
				Bounds: PickerBounds,
			})
		}
		return p, nil
	}
	_, cmd := p.list.HandleKey(km)
	return p, cmd
}

// View implements View.
func (p *ColorList) View() string {
	p.refresh()
	theme := ThemeFromPrefs(p.prefs)
	body := packV(1,
		p.list.View(),
		renderHints(hintSelect, hintEsc),
	)
	return renderFrame("Colors", body, p.width, p.height, theme)
}
