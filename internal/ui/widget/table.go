package widget

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kisprefs/internal/ui/textutil"
)

// Column describes one table column.
type Column struct {
	Title string
	Width int
	Align lipgloss.Position // lipgloss.Left (default) or lipgloss.Right
}

// Table is a scrollable table of string rows with one selected row.
// Rows are owned by the Table; the bubbles table only renders them.
type Table struct {
	columns []Column
	rows    [][]string
	model   table.Model
	Styles  Styles
}

// Ensure Table implements Widget.
var _ Widget = (*Table)(nil)

// NewTable creates an empty table with the given columns.
func NewTable(columns []Column) *Table {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}
	// Space and enter belong to the panels (toggle/select), not paging.
	km := table.DefaultKeyMap()
	km.PageDown = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down"))
	km.PageUp = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up"))

	t := &Table{
		columns: columns,
		model: table.New(
			table.WithColumns(cols),
			table.WithHeight(10),
			table.WithKeyMap(km),
		),
	}
	t.SetStyles(DefaultStyles())
	return t
}

// SetStyles replaces the widget styles and re-applies them to the table.
func (t *Table) SetStyles(s Styles) {
	t.Styles = s
	ts := table.DefaultStyles()
	ts.Header = s.Header.Padding(0, 1)
	ts.Selected = s.Selected
	t.model.SetStyles(ts)
}

// Activate implements Widget.
func (t *Table) Activate() { t.model.Focus() }

// Deactivate implements Widget.
func (t *Table) Deactivate() { t.model.Blur() }

// Active implements Widget.
func (t *Table) Active() bool { return t.model.Focused() }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns a copy of row i, or nil if out of range.
func (t *Table) Row(i int) []string {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return append([]string(nil), t.rows[i]...)
}

// Rows returns a copy of all rows in display order.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i := range t.rows {
		out[i] = append([]string(nil), t.rows[i]...)
	}
	return out
}

// ReplaceRow sets row i to fields. An index at or past the end appends.
func (t *Table) ReplaceRow(i int, fields []string) {
	row := append([]string(nil), fields...)
	if i < 0 {
		return
	}
	if i >= len(t.rows) {
		t.rows = append(t.rows, row)
	} else {
		t.rows[i] = row
	}
	t.sync()
}

// Clear removes all rows.
func (t *Table) Clear() {
	t.rows = nil
	t.sync()
}

// Selected returns the index of the selected row, or -1 for an empty table.
func (t *Table) Selected() int {
	if len(t.rows) == 0 {
		return -1
	}
	return t.model.Cursor()
}

// SetSelected moves the selection, clamped to the table.
func (t *Table) SetSelected(i int) {
	t.model.SetCursor(i)
}

// SetHeight sets the visible height including the header.
func (t *Table) SetHeight(h int) {
	if h < 2 {
		h = 2
	}
	t.model.SetHeight(h)
}

// HandleKey implements Widget. Navigation keys move the selection.
func (t *Table) HandleKey(msg tea.KeyMsg) (Result, tea.Cmd) {
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return Ignored, cmd
}

// View implements Widget.
func (t *Table) View() string {
	return t.model.View()
}

// sync pushes owned rows to the renderer, applying column alignment.
func (t *Table) sync() {
	cursor := t.model.Cursor()
	display := make([]table.Row, len(t.rows))
	for i, r := range t.rows {
		row := make(table.Row, len(t.columns))
		for c, col := range t.columns {
			if c >= len(r) {
				continue
			}
			if col.Align == lipgloss.Right {
				row[c] = textutil.PadLeft(r[c], col.Width)
			} else {
				row[c] = r[c]
			}
		}
		display[i] = row
	}
	t.model.SetRows(display)
	if cursor < 0 {
		cursor = 0
	}
	t.model.SetCursor(cursor)
}
