package ui

import tea "github.com/charmbracelet/bubbletea"

// PanelStack owns the open panels. The topmost panel receives input;
// panels are drawn bottom to top over the base view.
type PanelStack struct {
	panels []Panel
	width  int
	height int
}

// Ensure PanelStack implements PanelManager.
var _ PanelManager = (*PanelStack)(nil)

// AddPanel implements PanelManager.
func (s *PanelStack) AddPanel(p Panel) tea.Cmd {
	if p.View == nil {
		return nil
	}
	if p.Bounds == nil {
		p.Bounds = FullScreen(0)
	}
	s.panels = append(s.panels, p)
	s.resize(p)
	return p.View.Init()
}

// KillPanel implements PanelManager. Unknown views are ignored.
func (s *PanelStack) KillPanel(v View) {
	if i := s.indexOf(v); i >= 0 {
		s.panels = append(s.panels[:i], s.panels[i+1:]...)
	}
}

// Top returns the topmost panel.
func (s *PanelStack) Top() (Panel, bool) {
	if len(s.panels) == 0 {
		return Panel{}, false
	}
	return s.panels[len(s.panels)-1], true
}

// Len returns the number of open panels.
func (s *PanelStack) Len() int {
	return len(s.panels)
}

// Panels returns the open panels, bottom first.
func (s *PanelStack) Panels() []Panel {
	return append([]Panel(nil), s.panels...)
}

// UpdateTop passes msg to the top panel and stores the View it returns.
// The panel may add or kill panels (itself included) while handling msg.
// Returns false when no panel is open.
func (s *PanelStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	top, ok := s.Top()
	if !ok {
		return nil, false
	}
	next, cmd := top.View.Update(msg)
	if i := s.indexOf(top.View); i >= 0 {
		s.panels[i].View = next
	}
	return cmd, true
}

// Broadcast passes a non-key msg (cursor blink, etc.) to every panel.
func (s *PanelStack) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range s.Panels() {
		next, cmd := p.View.Update(msg)
		if i := s.indexOf(p.View); i >= 0 {
			s.panels[i].View = next
		}
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// SetSize records the terminal size and lays out every panel.
func (s *PanelStack) SetSize(width, height int) {
	s.width, s.height = width, height
	for _, p := range s.panels {
		s.resize(p)
	}
}

// Render draws every panel over base at its bounds.
func (s *PanelStack) Render(base string) string {
	width, height := s.size()
	out := base
	for _, p := range s.panels {
		x, y, _, _ := p.Bounds(width, height)
		out = overlayAt(out, p.View.View(), x, y, width, height)
	}
	return out
}

func (s *PanelStack) resize(p Panel) {
	sz, ok := p.View.(Sizer)
	if !ok {
		return
	}
	width, height := s.size()
	_, _, w, h := p.Bounds(width, height)
	sz.SetSize(w, h)
}

// size falls back to a classic 80x24 terminal until the first WindowSizeMsg.
func (s *PanelStack) size() (int, int) {
	if s.width <= 0 || s.height <= 0 {
		return 80, 24
	}
	return s.width, s.height
}

func (s *PanelStack) indexOf(v View) int {
	for i := len(s.panels) - 1; i >= 0; i-- {
		if s.panels[i].View == v {
			return i
		}
	}
	return -1
}
