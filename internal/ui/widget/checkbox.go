package widget

import tea "github.com/charmbracelet/bubbletea"

// Checkbox toggles a boolean on Enter or Space.
type Checkbox struct {
	Text    string
	checked bool
	active  bool
	Styles  Styles
}

// Ensure Checkbox implements Widget.
var _ Widget = (*Checkbox)(nil)

// NewCheckbox creates an unchecked checkbox labelled text.
func NewCheckbox(text string) *Checkbox {
	return &Checkbox{Text: text, Styles: DefaultStyles()}
}

// Activate implements Widget.
func (c *Checkbox) Activate() { c.active = true }

// Deactivate implements Widget.
func (c *Checkbox) Deactivate() { c.active = false }

// Active implements Widget.
func (c *Checkbox) Active() bool { return c.active }

// Checked reports the current state.
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the current state.
func (c *Checkbox) SetChecked(v bool) { c.checked = v }

// HandleKey implements Widget.
func (c *Checkbox) HandleKey(msg tea.KeyMsg) (Result, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		c.checked = !c.checked
		return Activated, nil
	}
	return Ignored, nil
}

// View implements Widget.
func (c *Checkbox) View() string {
	mark := "[ ]"
	if c.checked {
		mark = "[X]"
	}
	if c.active {
		return c.Styles.Active.Render(mark) + " " + c.Styles.Text.Render(c.Text)
	}
	return c.Styles.Text.Render(mark + " " + c.Text)
}
