package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisprefs/internal/prefs"
	"kisprefs/internal/ui/widget"
)

func newTestStore(extra map[string]string) *prefs.MemStore {
	s := prefs.NewMemStore(prefs.Defaults)
	for k, v := range extra {
		s.SetOpt(k, v, false)
	}
	return s
}

// times repeats key n times for press.
func times(key string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = key
	}
	return out
}

func TestColorPicker_SaveWritesPairAndCloses(t *testing.T) {
	store := newTestStore(nil)
	stack := &PanelStack{}
	p := NewColorPicker(store, stack)
	stack.AddPanel(Panel{View: p, Bounds: PickerBounds})
	p.LinkColorPref("custom_color")

	press(p, "right")               // fg Red
	press(p, "tab")                 // bg
	press(p, times("right", 12)...) // bg Hi-Blue
	assert.Equal(t, "Red", p.Foreground())
	assert.Equal(t, "Hi-Blue", p.Background())

	press(p, "tab", "enter") // Save
	assert.Equal(t, "Red,Hi-Blue", store.FetchOpt("custom_color"))
	assert.True(t, store.IsDirty("custom_color"))
	assert.Equal(t, 0, stack.Len(), "save closes the picker")

	again := NewColorPicker(store, stack)
	again.LinkColorPref("custom_color")
	assert.Equal(t, "Red", again.Foreground())
	assert.Equal(t, "Hi-Blue", again.Background())
}

func TestColorPicker_SeedsCaseInsensitively(t *testing.T) {
	store := newTestStore(map[string]string{"c": "HI-GREEN, magenta"})
	p := NewColorPicker(store, &PanelStack{})
	p.LinkColorPref("c")
	assert.Equal(t, "Hi-Green", p.Foreground())
	assert.Equal(t, "Magenta", p.Background())
	assert.Equal(t, "c", p.PrefName())
}

func TestColorPicker_OneTokenSeedsForegroundOnly(t *testing.T) {
	store := newTestStore(map[string]string{"c": "green"})
	p := NewColorPicker(store, &PanelStack{})
	p.LinkColorPref("c")
	assert.Equal(t, "Green", p.Foreground())
	assert.Equal(t, "Black", p.Background())
}

func TestColorPicker_UnknownNamesKeepDefaults(t *testing.T) {
	store := newTestStore(map[string]string{"c": "mauve,teal"})
	p := NewColorPicker(store, &PanelStack{})
	p.LinkColorPref("c")
	assert.Equal(t, "Black", p.Foreground())
	assert.Equal(t, "Black", p.Background())
}

func TestColorPicker_CancelWritesNothing(t *testing.T) {
	store := newTestStore(map[string]string{"c": "red,black"})
	stack := &PanelStack{}
	p := NewColorPicker(store, stack)
	stack.AddPanel(Panel{View: p})
	p.LinkColorPref("c")

	press(p, "right", "tab", "tab", "tab", "enter") // change fg, then Cancel
	assert.Equal(t, "red,black", store.FetchOpt("c"))
	assert.False(t, store.IsDirty("c"))
	assert.Equal(t, 0, stack.Len())
}

func TestColorPicker_EscCancels(t *testing.T) {
	store := newTestStore(map[string]string{"c": "red,black"})
	stack := &PanelStack{}
	p := NewColorPicker(store, stack)
	stack.AddPanel(Panel{View: p})
	p.LinkColorPref("c")

	press(p, "right", "esc")
	assert.Equal(t, "red,black", store.FetchOpt("c"))
	assert.Equal(t, 0, stack.Len())
}

func TestColorPicker_TabRotation(t *testing.T) {
	p := NewColorPicker(newTestStore(nil), &PanelStack{})
	order := []widget.Widget{p.fg, p.bg, p.save, p.cancel}
	for i := 0; i < 8; i++ {
		want := order[i%4]
		assert.Same(t, want, p.focus.Current(), "step %d", i)
		active := 0
		for _, w := range order {
			if w.Active() {
				active++
			}
		}
		assert.Equal(t, 1, active, "exactly one active widget at step %d", i)
		press(p, "tab")
	}
	press(p, "shift+tab")
	assert.Same(t, p.cancel, p.focus.Current())
}

func TestColorPicker_MoveKeysDoNotClose(t *testing.T) {
	store := newTestStore(map[string]string{"c": "black,black"})
	stack := &PanelStack{}
	p := NewColorPicker(store, stack)
	stack.AddPanel(Panel{View: p})
	p.LinkColorPref("c")

	// Move results are cpos+1, never confused with a button activation.
	press(p, "right", "left", "l", "h", "right")
	assert.Equal(t, 1, stack.Len())
	assert.Equal(t, "black,black", store.FetchOpt("c"))
}

func TestColorPicker_View(t *testing.T) {
	store := newTestStore(map[string]string{"c": "red,blue"})
	p := NewColorPicker(store, &PanelStack{})
	p.LinkColorPref("c")
	out := p.View()
	assert.Contains(t, out, "Edit Color: c")
	assert.Contains(t, out, "Foreground:")
	assert.Contains(t, out, "Red")
	assert.Contains(t, out, "Blue")
	assert.Contains(t, out, "[ Save ]")
	assert.Contains(t, out, "[ Cancel ]")
	assert.Len(t, strings.Split(out, "\n"), 10)
}

func TestColorPicker_NoPrefSkipsWrite(t *testing.T) {
	store := newTestStore(nil)
	stack := &PanelStack{}
	p := NewColorPicker(store, stack)
	stack.AddPanel(Panel{View: p})
	press(p, "tab", "tab", "enter")
	assert.Equal(t, 0, stack.Len())
	assert.Empty(t, store.FetchOpt(""))
}

func newColorList(store prefs.Store) (*ColorList, *PanelStack) {
	stack := &PanelStack{}
	l := NewColorList(store, stack)
	l.AddColorPref(prefs.KeyPanelTextColor, "Panel text")
	l.AddColorPref(prefs.KeyPanelBorderColor, "Panel border")
	stack.AddPanel(Panel{View: l})
	return l, stack
}

func TestColorList_EnterOpensPickerForRow(t *testing.T) {
	store := newTestStore(nil)
	l, stack := newColorList(store)

	press(l, "down")
	require.Equal(t, 1, l.Selected())
	press(l, "enter")

	require.Equal(t, 2, stack.Len())
	top, _ := stack.Top()
	picker, ok := top.View.(*ColorPicker)
	require.True(t, ok, "got %T", top.View)
	assert.Equal(t, prefs.KeyPanelBorderColor, picker.PrefName())
	assert.Equal(t, "Blue", picker.Foreground())
	assert.Equal(t, "Black", picker.Background())
}

func TestColorList_ShowsValueEditedInPicker(t *testing.T) {
	store := newTestStore(nil)
	l, stack := newColorList(store)

	press(l, "down", "enter")
	for _, k := range []string{"right", "tab", "tab", "enter"} { // Blue -> Magenta, Save
		stack.UpdateTop(keyMsg(k))
	}
	require.Equal(t, 1, stack.Len())
	assert.Equal(t, "Magenta,Black", store.FetchOpt(prefs.KeyPanelBorderColor))
	assert.Contains(t, l.View(), "magenta,black")
}

func TestColorList_CloseRowAndEsc(t *testing.T) {
	l, stack := newColorList(newTestStore(nil))
	l.Select(2)
	press(l, "enter")
	assert.Equal(t, 0, stack.Len())

	l, stack = newColorList(newTestStore(nil))
	press(l, "esc")
	assert.Equal(t, 0, stack.Len())
}

func TestColorList_View(t *testing.T) {
	l, _ := newColorList(newTestStore(nil))
	out := l.View()
	assert.Contains(t, out, "Colors")
	assert.Contains(t, out, "Panel text")
	assert.Contains(t, out, "white,black")
	assert.Contains(t, out, "Close")
}

func TestAutoConnect_SeedsFromStore(t *testing.T) {
	store := newTestStore(map[string]string{prefs.KeyAutoConnect: "false"})
	p := NewAutoConnectPanel(store, &PanelStack{})
	assert.Equal(t, "localhost", p.host.Text())
	assert.Equal(t, "2501", p.port.Text())
	assert.False(t, p.check.Checked())
	assert.True(t, p.host.Active(), "host field starts focused")
}

func TestAutoConnect_SaveRoundTrip(t *testing.T) {
	store := newTestStore(nil)
	stack := &PanelStack{}
	p := NewAutoConnectPanel(store, stack)
	stack.AddPanel(Panel{View: p, Bounds: AutoConnectBounds})

	// Port: clear 2501 and type 3501; x is filtered out.
	press(p, "tab")
	press(p, times("backspace", 4)...)
	press(p, "3", "x", "5", "0", "1")
	// Uncheck auto-connect, then Save.
	press(p, "tab", " ")
	press(p, "tab", "enter")

	assert.Equal(t, 0, stack.Len())
	assert.Equal(t, "localhost", store.FetchOpt(prefs.KeyDefaultHost))
	assert.Equal(t, "3501", store.FetchOpt(prefs.KeyDefaultPort))
	assert.Equal(t, "false", store.FetchOpt(prefs.KeyAutoConnect))

	reopened := NewAutoConnectPanel(store, stack)
	assert.Equal(t, "3501", reopened.port.Text())
	assert.False(t, reopened.check.Checked())
}

func TestAutoConnect_CancelWritesNothing(t *testing.T) {
	store := newTestStore(nil)
	stack := &PanelStack{}
	p := NewAutoConnectPanel(store, stack)
	stack.AddPanel(Panel{View: p})

	press(p, "z", "tab", "tab", "tab", "tab", "enter")
	assert.Equal(t, 0, stack.Len())
	assert.Equal(t, "localhost", store.FetchOpt(prefs.KeyDefaultHost))
	assert.False(t, store.IsDirty(prefs.KeyDefaultHost))
}

func TestAutoConnect_View(t *testing.T) {
	p := NewAutoConnectPanel(newTestStore(nil), &PanelStack{})
	out := p.View()
	assert.Contains(t, out, "Connect to Server")
	assert.Contains(t, out, "Host")
	assert.Contains(t, out, "localhost")
	assert.Contains(t, out, "[X] Auto-connect")
}

func newColumnPanel(value string) (*ColumnPrefsPanel, *prefs.MemStore, *PanelStack) {
	store := newTestStore(map[string]string{"cols": value})
	stack := &PanelStack{}
	p := NewColumnPrefsPanel(store, stack)
	p.AddColumn("alpha", "First")
	p.AddColumn("beta", "Second")
	p.AddColumn("gamma", "Third")
	p.ColumnPref("cols", "Test")
	stack.AddPanel(Panel{View: p, Bounds: ColumnPrefsBounds})
	return p, store, stack
}

func TestColumnPrefs_PreferenceOrderFirst(t *testing.T) {
	p, _, _ := newColumnPanel("beta,alpha")
	assert.Equal(t, [][]string{
		{"beta", "Yes", "Second"},
		{"alpha", "Yes", "First"},
		{"gamma", "No", "Third"},
	}, p.List().Rows())
	assert.Equal(t, "Test Column Preferences", p.Title())
}

func TestColumnPrefs_EachColumnOnce(t *testing.T) {
	p, _, _ := newColumnPanel("BETA,beta,unknown,alpha")
	assert.Equal(t, [][]string{
		{"beta", "Yes", "Second"},
		{"alpha", "Yes", "First"},
		{"gamma", "No", "Third"},
	}, p.List().Rows())
}

func TestColumnPrefs_EmptyPreferenceHidesAll(t *testing.T) {
	p, _, _ := newColumnPanel("")
	require.Equal(t, 3, p.List().Len())
	for _, r := range p.List().Rows() {
		assert.Equal(t, "No", r[1])
	}
	assert.Equal(t, "", p.List().OrderList())
}

func TestColumnPrefs_SaveWritesOrder(t *testing.T) {
	p, store, stack := newColumnPanel("beta,alpha")

	// Show gamma, move it above alpha, Save.
	press(p, "down", "down", " ")
	press(p, "-")
	press(p, "tab", "enter")

	assert.Equal(t, 0, stack.Len())
	assert.Equal(t, "beta,gamma,alpha", store.FetchOpt("cols"))
	assert.True(t, store.IsDirty("cols"))
}

func TestColumnPrefs_CancelAndEsc(t *testing.T) {
	p, store, stack := newColumnPanel("beta,alpha")
	press(p, " ", "tab", "tab", "enter") // hide beta, Cancel
	assert.Equal(t, 0, stack.Len())
	assert.Equal(t, "beta,alpha", store.FetchOpt("cols"))

	p, store, stack = newColumnPanel("beta,alpha")
	press(p, " ", "esc")
	assert.Equal(t, 0, stack.Len())
	assert.Equal(t, "beta,alpha", store.FetchOpt("cols"))
}

func TestColumnPrefs_View(t *testing.T) {
	p, _, _ := newColumnPanel("beta")
	out := p.View()
	assert.Contains(t, out, "Test Column Preferences")
	assert.Contains(t, out, "Select with space, change order with +/-")
	assert.Contains(t, out, "gamma")
}
