package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// screenItem implements list.DefaultItem for a Screen.
type screenItem struct {
	Screen
}

func (s screenItem) FilterValue() string { return s.String() }
func (s screenItem) Title() string       { return s.String() }
func (s screenItem) Description() string { return s.Screen.Description() }

// MenuView lists the preference screens. Enter is handled by the app.
type MenuView struct {
	list list.Model
}

// Ensure MenuView implements View.
var _ View = (*MenuView)(nil)

// NewMenuView creates the menu with every entry of Screens.
func NewMenuView() *MenuView {
	items := make([]list.Item, len(Screens))
	for i, s := range Screens {
		items[i] = screenItem{Screen: s}
	}
	l := list.New(items, NewMenuDelegate(), 0, 0)
	l.Title = "Preferences"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &MenuView{list: l}
}

// Selected returns the highlighted screen.
func (m *MenuView) Selected() (Screen, bool) {
	it, ok := m.list.SelectedItem().(screenItem)
	if !ok {
		return 0, false
	}
	return it.Screen, true
}

// Select highlights entry i.
func (m *MenuView) Select(i int) {
	m.list.Select(i)
}

// SetSize implements Sizer.
func (m *MenuView) SetSize(width, height int) {
	m.list.SetWidth(width)
	m.list.SetHeight(max(height-2, 1)) // hint line
}

// Init implements View.
func (m *MenuView) Init() tea.Cmd {
	return nil
}

// Update implements View. The list handles j/k and arrow navigation.
func (m *MenuView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *MenuView) View() string {
	if m.list.Width() == 0 {
		m.list.SetWidth(80)
	}
	if m.list.Height() == 0 {
		m.list.SetHeight(20)
	}
	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(renderHints(hintSelect, hintLeader, hintQuit))
	return b.String()
}
