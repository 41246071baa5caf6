package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ColorSwatch selects one of the 16 palette colors with Left/Right.
type ColorSwatch struct {
	cpos   int
	active bool
	Styles Styles
}

// Ensure ColorSwatch implements Widget.
var _ Widget = (*ColorSwatch)(nil)

// NewColorSwatch creates a swatch selecting the first palette entry.
func NewColorSwatch() *ColorSwatch {
	return &ColorSwatch{Styles: DefaultStyles()}
}

// Activate implements Widget.
func (c *ColorSwatch) Activate() { c.active = true }

// Deactivate implements Widget.
func (c *ColorSwatch) Deactivate() { c.active = false }

// Active implements Widget.
func (c *ColorSwatch) Active() bool { return c.active }

// Pos returns the selected palette index.
func (c *ColorSwatch) Pos() int { return c.cpos }

// Right moves the selection forward, wrapping after the last color.
func (c *ColorSwatch) Right() {
	c.cpos = (c.cpos + 1) % PaletteSize
}

// Left moves the selection back, wrapping before the first color.
func (c *ColorSwatch) Left() {
	c.cpos = (c.cpos - 1 + PaletteSize) % PaletteSize
}

// SetColor selects the palette entry named name (case-insensitive).
// Unknown names leave the selection unchanged.
func (c *ColorSwatch) SetColor(name string) {
	if i := PaletteIndex(name); i >= 0 {
		c.cpos = i
	}
}

// Color returns the selected display name, or "black" if the position is out of range.
func (c *ColorSwatch) Color() string {
	if c.cpos < 0 || c.cpos >= PaletteSize {
		return "black"
	}
	return Palette[c.cpos].Name
}

// HandleKey implements Widget. Moves return the new position plus one.
func (c *ColorSwatch) HandleKey(msg tea.KeyMsg) (Result, tea.Cmd) {
	switch msg.String() {
	case "right", "l":
		c.Right()
		return Result(c.cpos + 1), nil
	case "left", "h":
		c.Left()
		return Result(c.cpos + 1), nil
	}
	return Ignored, nil
}

// View implements Widget.
func (c *ColorSwatch) View() string {
	var b strings.Builder
	if c.active {
		b.WriteString(c.Styles.Indicator.Render(">"))
	} else {
		b.WriteString(" ")
	}
	for i, p := range Palette {
		b.WriteString(" ")
		swatch := c.Styles.Text.Foreground(p.Color()).Render("X")
		if i == c.cpos {
			b.WriteString("[" + swatch + "]")
		} else {
			b.WriteString(swatch)
		}
	}
	b.WriteString(" ")
	b.WriteString(c.Styles.Text.Render(c.Color()))
	return b.String()
}
