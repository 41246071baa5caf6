package widget

import tea "github.com/charmbracelet/bubbletea"

// Button fires Activated on Enter or Space while focused.
type Button struct {
	Text   string
	active bool
	Styles Styles
}

// Ensure Button implements Widget.
var _ Widget = (*Button)(nil)

// NewButton creates a button labelled text.
func NewButton(text string) *Button {
	return &Button{Text: text, Styles: DefaultStyles()}
}

// Activate implements Widget.
func (b *Button) Activate() { b.active = true }

// Deactivate implements Widget.
func (b *Button) Deactivate() { b.active = false }

// Active implements Widget.
func (b *Button) Active() bool { return b.active }

// HandleKey implements Widget.
func (b *Button) HandleKey(msg tea.KeyMsg) (Result, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		return Activated, nil
	}
	return Ignored, nil
}

// View implements Widget.
func (b *Button) View() string {
	label := "[ " + b.Text + " ]"
	if b.active {
		return b.Styles.Active.Render(label)
	}
	return b.Styles.Text.Render(label)
}
