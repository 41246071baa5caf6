package widget

import tea "github.com/charmbracelet/bubbletea"

// FocusGroup tracks which widget of a panel is active and rotates focus on Tab.
// Exactly one widget is active at any time: widgets[Pos()].
type FocusGroup struct {
	widgets []Widget
	pos     int
}

// NewFocusGroup creates a group in tab order and activates the first widget.
func NewFocusGroup(widgets ...Widget) *FocusGroup {
	g := &FocusGroup{widgets: widgets}
	for i, w := range widgets {
		if i == 0 {
			w.Activate()
		} else {
			w.Deactivate()
		}
	}
	return g
}

// Len returns the number of widgets in tab order.
func (g *FocusGroup) Len() int {
	return len(g.widgets)
}

// Pos returns the index of the active widget.
func (g *FocusGroup) Pos() int {
	return g.pos
}

// Current returns the active widget, or nil for an empty group.
func (g *FocusGroup) Current() Widget {
	if len(g.widgets) == 0 {
		return nil
	}
	return g.widgets[g.pos]
}

// Next deactivates the current widget and activates its successor, wrapping to 0.
func (g *FocusGroup) Next() Widget {
	if len(g.widgets) == 0 {
		return nil
	}
	return g.moveTo((g.pos + 1) % len(g.widgets))
}

// Prev deactivates the current widget and activates its predecessor, wrapping to the end.
func (g *FocusGroup) Prev() Widget {
	if len(g.widgets) == 0 {
		return nil
	}
	idx := g.pos - 1
	if idx < 0 {
		idx = len(g.widgets) - 1
	}
	return g.moveTo(idx)
}

// Focus makes w the active widget. Returns false if w is not in the group.
func (g *FocusGroup) Focus(w Widget) bool {
	for i, o := range g.widgets {
		if o == w {
			g.moveTo(i)
			return true
		}
	}
	return false
}

func (g *FocusGroup) moveTo(idx int) Widget {
	g.widgets[g.pos].Deactivate()
	g.pos = idx
	g.widgets[g.pos].Activate()
	return g.widgets[g.pos]
}

// HandleKey rotates focus on tab/shift+tab; any other key goes to the active
// widget only. It returns the widget that received the key (nil on rotation)
// together with that widget's result.
func (g *FocusGroup) HandleKey(msg tea.KeyMsg) (Widget, Result, tea.Cmd) {
	switch msg.String() {
	case "tab":
		g.Next()
		return nil, Ignored, nil
	case "shift+tab":
		g.Prev()
		return nil, Ignored, nil
	}
	w := g.Current()
	if w == nil {
		return nil, Ignored, nil
	}
	res, cmd := w.HandleKey(msg)
	return w, res, cmd
}
