package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// OrderList is a Table whose rows can be reordered and switched on/off.
// Row order is the persisted order: OrderList returns the key field of every
// enabled row, in row order.
type OrderList struct {
	*Table
	orderable   bool
	enableField int
	fieldYes    string
	fieldNo     string
	keyField    int
}

// Ensure OrderList implements Widget.
var _ Widget = (*OrderList)(nil)

// NewOrderList creates an order list with no enable or key field configured.
func NewOrderList(columns []Column) *OrderList {
	return &OrderList{
		Table:       NewTable(columns),
		enableField: -1,
		keyField:    -1,
	}
}

// SetOrderable turns +/- reordering on or off.
func (o *OrderList) SetOrderable(v bool) {
	o.orderable = v
}

// SetEnableField makes field idx the toggle field, holding yes or no.
func (o *OrderList) SetEnableField(idx int, yes, no string) {
	o.enableField = idx
	o.fieldYes = yes
	o.fieldNo = no
}

// SetColumnField makes field idx the value collected by OrderList.
func (o *OrderList) SetColumnField(idx int) {
	o.keyField = idx
}

// MoveUp swaps the selected row with its predecessor; the selection follows the row.
// Returns false when the selected row is already first.
func (o *OrderList) MoveUp() bool {
	i := o.Selected()
	if i <= 0 || i >= len(o.rows) {
		return false
	}
	o.rows[i-1], o.rows[i] = o.rows[i], o.rows[i-1]
	o.sync()
	o.SetSelected(i - 1)
	return true
}

// MoveDown swaps the selected row with its successor; the selection follows the row.
// Returns false when the selected row is already last.
func (o *OrderList) MoveDown() bool {
	i := o.Selected()
	if i < 0 || i >= len(o.rows)-1 {
		return false
	}
	o.rows[i+1], o.rows[i] = o.rows[i], o.rows[i+1]
	o.sync()
	o.SetSelected(i + 1)
	return true
}

// Toggle flips the enable field of row between the yes and no values.
// Anything other than the no value flips to no. Out-of-range rows and rows
// too short to hold the field are left alone.
func (o *OrderList) Toggle(row int) bool {
	if o.enableField < 0 || row < 0 || row >= len(o.rows) {
		return false
	}
	r := o.rows[row]
	if len(r) <= o.enableField {
		return false
	}
	if r[o.enableField] == o.fieldNo {
		r[o.enableField] = o.fieldYes
	} else {
		r[o.enableField] = o.fieldNo
	}
	o.sync()
	return true
}

// OrderList returns the key fields of enabled rows, in row order, joined with ",".
func (o *OrderList) OrderList() string {
	if o.keyField < 0 || o.enableField < 0 {
		return ""
	}
	var keys []string
	for _, r := range o.rows {
		if len(r) <= o.enableField || len(r) <= o.keyField {
			continue
		}
		if r[o.enableField] == o.fieldYes {
			keys = append(keys, r[o.keyField])
		}
	}
	return strings.Join(keys, ",")
}

// HandleKey implements Widget.
// "-" / "+" (also shift+up / shift+down) reorder when orderable; space and
// enter toggle the enable field; everything else navigates the table.
func (o *OrderList) HandleKey(msg tea.KeyMsg) (Result, tea.Cmd) {
	s := msg.String()
	if o.orderable {
		switch s {
		case "-", "shift+up", "K":
			o.MoveUp()
			return Ignored, nil
		case "+", "=", "shift+down", "J":
			o.MoveDown()
			return Ignored, nil
		}
	}
	if o.enableField >= 0 && (s == " " || s == "enter") {
		if o.Toggle(o.Selected()) {
			return Activated, nil
		}
		return Ignored, nil
	}
	return o.Table.HandleKey(msg)
}
