package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CharFilter reports whether a typed rune is accepted by a TextInput.
type CharFilter func(r rune) bool

// FilterNum accepts ASCII digits.
func FilterNum(r rune) bool {
	return r >= '0' && r <= '9'
}

// FilterAlphaNumSym accepts printable ASCII except space: letters, digits and symbols.
func FilterAlphaNumSym(r rune) bool {
	return r > ' ' && r <= '~'
}

// TextInput is a labelled single-line input with a length limit and an
// optional character filter applied to typed and pasted runes.
type TextInput struct {
	Label  string
	input  textinput.Model
	filter CharFilter
	Styles Styles
}

// Ensure TextInput implements Widget.
var _ Widget = (*TextInput)(nil)

// NewTextInput creates an input with the given label, maximum length and filter (may be nil).
func NewTextInput(label string, maxLen int, filter CharFilter) *TextInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = maxLen
	ti.Width = 40
	if maxLen > 0 && maxLen < ti.Width {
		ti.Width = maxLen + 1
	}
	return &TextInput{
		Label:  label,
		input:  ti,
		filter: filter,
		Styles: DefaultStyles(),
	}
}

// Activate implements Widget.
func (t *TextInput) Activate() { t.input.Focus() }

// Deactivate implements Widget.
func (t *TextInput) Deactivate() { t.input.Blur() }

// Active implements Widget.
func (t *TextInput) Active() bool { return t.input.Focused() }

// Text returns the current value.
func (t *TextInput) Text() string { return t.input.Value() }

// SetText replaces the value verbatim (truncated to the length limit) and
// moves the cursor to the end.
func (t *TextInput) SetText(s string) {
	t.input.SetValue(s)
	t.input.CursorEnd()
}

// Init returns the cursor blink command.
func (t *TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards non-key messages (cursor blink) to the underlying input.
func (t *TextInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

// HandleKey implements Widget.
func (t *TextInput) HandleKey(msg tea.KeyMsg) (Result, tea.Cmd) {
	if msg.Type == tea.KeySpace && t.filter != nil && !t.filter(' ') {
		return Ignored, nil
	}
	if msg.Type == tea.KeyRunes && t.filter != nil {
		kept := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if t.filter(r) {
				kept = append(kept, r)
			}
		}
		if len(kept) == 0 {
			return Ignored, nil
		}
		msg.Runes = kept
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return Ignored, cmd
}

// View implements Widget.
func (t *TextInput) View() string {
	return t.Styles.Label.Render(t.Label) + " " + t.input.View()
}

// FreeText is a static, non-focusable line of text.
type FreeText struct {
	Text   string
	Styles Styles
}

// NewFreeText creates a text label.
func NewFreeText(text string) *FreeText {
	return &FreeText{Text: text, Styles: DefaultStyles()}
}

// View renders the text.
func (f *FreeText) View() string {
	return f.Styles.Text.Render(f.Text)
}
