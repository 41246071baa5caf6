package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ", "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestColorSwatch_RightWrapsAfterSixteen(t *testing.T) {
	for start := 0; start < PaletteSize; start++ {
		c := NewColorSwatch()
		c.cpos = start
		for i := 0; i < PaletteSize; i++ {
			c.Right()
		}
		assert.Equal(t, start, c.Pos(), "right x16 from %d", start)
	}
}

func TestColorSwatch_LeftWrapsAfterSixteen(t *testing.T) {
	for start := 0; start < PaletteSize; start++ {
		c := NewColorSwatch()
		c.cpos = start
		for i := 0; i < PaletteSize; i++ {
			c.Left()
		}
		assert.Equal(t, start, c.Pos(), "left x16 from %d", start)
	}
}

func TestColorSwatch_Edges(t *testing.T) {
	c := NewColorSwatch()
	c.Left()
	assert.Equal(t, 15, c.Pos(), "left from 0 wraps to 15")
	c.Right()
	assert.Equal(t, 0, c.Pos(), "right from 15 wraps to 0")
}

func TestColorSwatch_SetColorRoundTrip(t *testing.T) {
	for _, p := range Palette {
		for _, variant := range []string{p.Name, strings.ToLower(p.Name), strings.ToUpper(p.Name)} {
			c := NewColorSwatch()
			c.SetColor(variant)
			assert.True(t, strings.EqualFold(variant, c.Color()), "SetColor(%q) -> %q", variant, c.Color())
		}
	}
}

func TestColorSwatch_SetColorUnknownKeepsSelection(t *testing.T) {
	c := NewColorSwatch()
	c.SetColor("hi-blue")
	before := c.Color()
	c.SetColor("chartreuse")
	c.SetColor("")
	assert.Equal(t, before, c.Color())
}

func TestColorSwatch_ColorOutOfRangeIsBlack(t *testing.T) {
	c := NewColorSwatch()
	c.cpos = 42
	assert.Equal(t, "black", c.Color())
	c.cpos = -1
	assert.Equal(t, "black", c.Color())
}

func TestColorSwatch_HandleKey(t *testing.T) {
	c := NewColorSwatch()
	res, _ := c.HandleKey(keyMsg("right"))
	assert.Equal(t, Result(2), res, "move returns new position plus one")
	res, _ = c.HandleKey(keyMsg("l"))
	assert.Equal(t, Result(3), res)
	res, _ = c.HandleKey(keyMsg("left"))
	assert.Equal(t, Result(2), res)
	res, _ = c.HandleKey(keyMsg("x"))
	assert.Equal(t, Ignored, res)
}

func TestColorSwatch_View(t *testing.T) {
	c := NewColorSwatch()
	c.SetColor("Red")
	v := c.View()
	assert.Contains(t, v, "[")
	assert.Contains(t, v, "Red")
	assert.Equal(t, 16, strings.Count(v, "X"))
	assert.False(t, strings.HasPrefix(v, ">"), "inactive swatch has no indicator")

	c.Activate()
	assert.Contains(t, c.View(), ">")
}

func TestFocusGroup_TabRotation(t *testing.T) {
	ws := []Widget{NewColorSwatch(), NewColorSwatch(), NewButton("Save"), NewButton("Cancel")}
	g := NewFocusGroup(ws...)
	assertOneActive(t, ws, 0)

	for i := 1; i <= 4; i++ {
		g.HandleKey(keyMsg("tab"))
		assertOneActive(t, ws, i%4)
	}
	assert.Equal(t, 0, g.Pos(), "four tabs return to the first widget")
}

func TestFocusGroup_ShiftTabRotatesBackwards(t *testing.T) {
	ws := []Widget{NewButton("a"), NewButton("b"), NewButton("c")}
	g := NewFocusGroup(ws...)

	g.HandleKey(keyMsg("shift+tab"))
	assertOneActive(t, ws, 2)
	g.HandleKey(keyMsg("shift+tab"))
	assertOneActive(t, ws, 1)
}

func TestFocusGroup_KeysGoToActiveWidgetOnly(t *testing.T) {
	fg, bg := NewColorSwatch(), NewColorSwatch()
	g := NewFocusGroup(fg, bg)

	w, res, _ := g.HandleKey(keyMsg("right"))
	assert.Same(t, fg, w)
	assert.Equal(t, Result(2), res)
	assert.Equal(t, 1, fg.Pos())
	assert.Equal(t, 0, bg.Pos())

	w, _, _ = g.HandleKey(keyMsg("tab"))
	assert.Nil(t, w, "tab is consumed by rotation")
	g.HandleKey(keyMsg("left"))
	assert.Equal(t, 1, fg.Pos())
	assert.Equal(t, 15, bg.Pos())
}

func TestFocusGroup_Focus(t *testing.T) {
	a, b := NewButton("a"), NewButton("b")
	g := NewFocusGroup(a, b)
	assert.True(t, g.Focus(b))
	assert.Equal(t, 1, g.Pos())
	assert.False(t, a.Active())
	assert.False(t, g.Focus(NewButton("stranger")))
}

func TestFocusGroup_Empty(t *testing.T) {
	g := NewFocusGroup()
	assert.Nil(t, g.Next())
	assert.Nil(t, g.Prev())
	w, res, cmd := g.HandleKey(keyMsg("x"))
	assert.Nil(t, w)
	assert.Equal(t, Ignored, res)
	assert.Nil(t, cmd)
}

func assertOneActive(t *testing.T, ws []Widget, want int) {
	t.Helper()
	active := 0
	for i, w := range ws {
		if w.Active() {
			active++
			assert.Equal(t, want, i, "wrong widget active")
		}
	}
	require.Equal(t, 1, active, "exactly one widget must be active")
}

func TestButton_ActivatesOnEnterAndSpace(t *testing.T) {
	b := NewButton("Save")
	res, _ := b.HandleKey(keyMsg("enter"))
	assert.Equal(t, Activated, res)
	res, _ = b.HandleKey(keyMsg(" "))
	assert.Equal(t, Activated, res)
	res, _ = b.HandleKey(keyMsg("s"))
	assert.Equal(t, Ignored, res)
	assert.Contains(t, b.View(), "Save")
}

func TestCheckbox_Toggle(t *testing.T) {
	c := NewCheckbox("Auto-connect")
	assert.False(t, c.Checked())
	res, _ := c.HandleKey(keyMsg(" "))
	assert.Equal(t, Activated, res)
	assert.True(t, c.Checked())
	assert.Contains(t, c.View(), "[X]")
	c.HandleKey(keyMsg("enter"))
	assert.False(t, c.Checked())
}

func TestTextInput_NumericFilter(t *testing.T) {
	in := NewTextInput("Port", 5, FilterNum)
	in.Activate()
	for _, k := range []string{"2", "a", "5", "-", "0", " ", "1"} {
		in.HandleKey(keyMsg(k))
	}
	assert.Equal(t, "2501", in.Text())
}

func TestTextInput_LengthLimit(t *testing.T) {
	in := NewTextInput("Port", 5, FilterNum)
	in.Activate()
	in.HandleKey(keyMsg("1234567"))
	assert.Equal(t, "12345", in.Text())
}

func TestTextInput_AlphaNumSymFilter(t *testing.T) {
	in := NewTextInput("Host", 120, FilterAlphaNumSym)
	in.Activate()
	in.HandleKey(keyMsg("sensor-1.lan"))
	in.HandleKey(keyMsg(" "))
	in.HandleKey(keyMsg("é"))
	assert.Equal(t, "sensor-1.lan", in.Text())

	in.HandleKey(keyMsg("backspace"))
	assert.Equal(t, "sensor-1.la", in.Text())
}

func TestTextInput_InactiveIgnoresKeys(t *testing.T) {
	in := NewTextInput("Host", 120, nil)
	in.SetText("localhost")
	in.HandleKey(keyMsg("x"))
	assert.Equal(t, "localhost", in.Text())
}
