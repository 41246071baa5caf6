package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// With a partial sequence buffered (e.g. "SPC x") it shows the next level.
func RenderKeybindHelp(h *KeyHandler) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	currentSeq := strings.Join(h.Buffer, " ")
	hints := h.Registry.LeaderHints(currentSeq)
	if len(hints) == 0 {
		return ""
	}

	bindings := make([]key.Binding, 0, len(hints)+1)
	for _, hint := range hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(hint.Key),
			key.WithHelp(hint.Key, hint.Desc),
		))
	}
	bindings = append(bindings, hintEsc)

	hm := help.New()
	hm.Styles.ShortKey = Styles.HintKey
	hm.Styles.ShortDesc = Styles.Hint
	hm.Styles.ShortSeparator = Styles.Hint

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	return Styles.Box.Render(Styles.Muted.Render(prefix) + " " + hm.ShortHelpView(bindings))
}
