package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"kisprefs/internal/prefs"
)

// AppModel is the root model: the screen menu underneath and a stack of
// preference panels on top of it. While a panel is open it receives every key.
type AppModel struct {
	Prefs      prefs.Store
	Menu       *MenuView
	Panels     *PanelStack
	KeyHandler *KeyHandler
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model. Panels opened before the program started are
// initialized here.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{a.Menu.Init()}
	for _, p := range a.Panels.Panels() {
		cmds = append(cmds, p.View.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Panels.SetSize(msg.Width, msg.Height)
		a.Menu.SetSize(msg.Width, msg.Height)
		return a, nil
	case OpenScreenMsg:
		return a, a.Open(msg.Screen)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if cmd, ok := a.Panels.UpdateTop(msg); ok {
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if msg.String() == "enter" {
			if s, ok := a.Menu.Selected(); ok {
				return a, a.Open(s)
			}
		}
	default:
		if a.Panels.Len() > 0 {
			return a, a.Panels.Broadcast(msg)
		}
	}

	_, cmd := a.Menu.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Menu.View()
	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		base += "\n" + help
	}
	return a.Panels.Render(base)
}

// Open puts the panel for s on top of the stack.
func (m *AppModel) Open(s Screen) tea.Cmd {
	p, ok := NewScreenPanel(s, m.Prefs, m.Panels)
	if !ok {
		return nil
	}
	return m.Panels.AddPanel(p)
}

func openScreen(s Screen) tea.Cmd {
	return func() tea.Msg { return OpenScreenMsg{Screen: s} }
}

// NewAppModel creates the root application model editing store.
func NewAppModel(store prefs.Store) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC c", openScreen(ScreenColors), "Colors")
	reg.BindWithDesc("SPC a", openScreen(ScreenServer), "Server")
	reg.BindWithDesc("SPC n", openScreen(ScreenNetlistColumns), "Network columns")
	reg.BindWithDesc("SPC l", openScreen(ScreenClientlistColumns), "Client columns")
	return &AppModel{
		Prefs:      store,
		Menu:       NewMenuView(),
		Panels:     &PanelStack{},
		KeyHandler: NewKeyHandler(reg),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
