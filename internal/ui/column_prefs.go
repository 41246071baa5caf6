package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"kisprefs/internal/prefs"
	"kisprefs/internal/ui/widget"
)

// ColumnPrefsBounds places the column preferences panel.
var ColumnPrefsBounds = Centered(64, 22)

// Row layout of the column order list.
const (
	columnFieldName = 0
	columnFieldShow = 1
	columnFieldDesc = 2

	columnShowYes = "Yes"
	columnShowNo  = "No"
)

// ColumnSpec describes a column the list can display.
// queued is set once the column has been placed in the order list.
type ColumnSpec struct {
	Name        string
	Description string
	queued      bool
}

// ColumnPrefsPanel edits which columns a list shows and in what order.
// Tab order: order list, Save, Cancel.
type ColumnPrefsPanel struct {
	prefs  prefs.Store
	panels PanelManager

	list   *widget.OrderList
	help   *widget.FreeText
	save   *widget.Button
	cancel *widget.Button
	focus  *widget.FocusGroup

	columns []ColumnSpec
	pref    string
	title   string

	width  int
	height int
}

// Ensure ColumnPrefsPanel implements View.
var _ View = (*ColumnPrefsPanel)(nil)

// NewColumnPrefsPanel creates an empty panel. Register columns with
// AddColumn, then call ColumnPref to load the preference.
func NewColumnPrefsPanel(store prefs.Store, pm PanelManager) *ColumnPrefsPanel {
	list := widget.NewOrderList([]widget.Column{
		{Title: "Column", Width: 16},
		{Title: "Show", Width: 4},
		{Title: "Description", Width: 30},
	})
	list.SetColumnField(columnFieldName)
	list.SetEnableField(columnFieldShow, columnShowYes, columnShowNo)
	list.SetOrderable(true)

	p := &ColumnPrefsPanel{
		prefs:  store,
		panels: pm,
		list:   list,
		help:   widget.NewFreeText("Select with space, change order with +/-"),
		save:   widget.NewButton("Save"),
		cancel: widget.NewButton("Cancel"),
		title:  "Column Preferences",
		width:  64,
		height: 22,
	}
	p.focus = widget.NewFocusGroup(p.list, p.save, p.cancel)
	return p
}

// AddColumn registers a known column.
func (p *ColumnPrefsPanel) AddColumn(name, description string) {
	p.columns = append(p.columns, ColumnSpec{Name: name, Description: description})
}

// ColumnPref binds the panel to prefKey and fills the order list: columns
// named in the preference first (shown, in preference order, matched
// case-insensitively), then every other known column (hidden). Each column
// is placed once.
func (p *ColumnPrefsPanel) ColumnPref(prefKey, name string) {
	p.pref = prefKey
	k := 0
	for _, want := range prefs.Tokenize(p.prefs.FetchOpt(prefKey)) {
		for i := range p.columns {
			c := &p.columns[i]
			if c.queued || !strings.EqualFold(c.Name, want) {
				continue
			}
			p.list.ReplaceRow(k, []string{c.Name, columnShowYes, c.Description})
			k++
			c.queued = true
		}
	}
	for i := range p.columns {
		c := &p.columns[i]
		if c.queued {
			continue
		}
		p.list.ReplaceRow(k, []string{c.Name, columnShowNo, c.Description})
		k++
		c.queued = true
	}
	p.title = name + " Column Preferences"
}

// Title returns the panel title.
func (p *ColumnPrefsPanel) Title() string { return p.title }

// List exposes the order list.
func (p *ColumnPrefsPanel) List() *widget.OrderList { return p.list }

// SetSize implements Sizer.
func (p *ColumnPrefsPanel) SetSize(width, height int) {
	p.width, p.height = width, height
	// frame (2), help text, buttons, hints and the gaps between them (7)
	p.list.SetHeight(height - 9)
}

// Init implements View.
func (p *ColumnPrefsPanel) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *ColumnPrefsPanel) Update(msg tea.Msg) (View, tea.Cmd) {
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
		if p.pref != "" {
			p.prefs.SetOpt(p.pref, p.list.OrderList(), true)
		}
		p.panels.KillPanel(p)
	case w == p.cancel && res == widget.Activated:
		p.panels.KillPanel(p)
	}
	return p, cmd
}

// View implements View.
func (p *ColumnPrefsPanel) View() string {
	theme := ThemeFromPrefs(p.prefs)
	ws := theme.WidgetStyles()
	p.list.SetStyles(ws)
	p.help.Styles, p.save.Styles, p.cancel.Styles = ws, ws, ws

	body := packV(1,
		p.list.View(),
		p.help.View(),
		buttonRow(p.width-4, p.cancel.View(), p.save.View()),
		renderHints(hintTab, hintToggle, hintOrder, hintEsc),
	)
	return renderFrame(p.title, body, p.width, p.height, theme)
}
