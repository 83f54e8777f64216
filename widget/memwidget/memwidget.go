// Package memwidget provides a complete in-memory implementation of the
// widget contract. It is meant for tests and for headless hosts which manage
// their own rendering.
package memwidget

import (
	"github.com/tableaux-project/tablesort"
	"github.com/tableaux-project/tablesort/widget"
)

// Table is an in-memory widget.Table.
type Table struct {
	columns       []*Column
	items         []*Item
	selection     int
	redrawEnabled bool
	redrawTrace   []bool
	sortColumn    widget.Column
	sortDirection tablesort.Order
}

// New creates a new in-memory table with the given number of columns.
func New(columnCount int) *Table {
	columns := make([]*Column, columnCount)
	for i := range columns {
		columns[i] = &Column{}
	}

	return &Table{
		columns:       columns,
		selection:     -1,
		redrawEnabled: true,
	}
}

// Columns returns all column handles of the table, in display order.
func (tbl *Table) Columns() []widget.Column {
	columns := make([]widget.Column, len(tbl.columns))
	for i, column := range tbl.columns {
		columns[i] = column
	}

	return columns
}

// Column returns the concrete column handle at the given index, so hosts
// can simulate header activation.
func (tbl *Table) Column(index int) *Column {
	return tbl.columns[index]
}

// Items returns all row handles of the table, in display order.
func (tbl *Table) Items() []widget.Item {
	items := make([]widget.Item, len(tbl.items))
	for i, item := range tbl.items {
		items[i] = item
	}

	return items
}

// AddRow appends a new row with the given cell texts and returns its handle.
// Surplus texts beyond the column count are discarded.
func (tbl *Table) AddRow(texts ...string) *Item {
	item := &Item{texts: make([]string, len(tbl.columns))}
	copy(item.texts, texts)

	tbl.items = append(tbl.items, item)

	return item
}

// NewItem creates a fresh empty row, appended after all current rows.
func (tbl *Table) NewItem() widget.Item {
	return tbl.AddRow()
}

// SelectionIndex returns the index of the currently selected row, or -1 if
// no row is selected.
func (tbl *Table) SelectionIndex() int {
	return tbl.selection
}

// Select moves the selection marker to the row at the given index. Indices
// outside the current row range are ignored.
func (tbl *Table) Select(index int) {
	if index >= 0 && index < len(tbl.items) {
		tbl.selection = index
	}
}

// Remove removes the rows in the given index range, both ends inclusive.
// A selection inside the removed range is cleared, a selection behind it
// is shifted accordingly.
func (tbl *Table) Remove(start, end int) {
	if start < 0 || end >= len(tbl.items) || start > end {
		panic("memwidget: remove range out of bounds")
	}

	tbl.items = append(tbl.items[:start], tbl.items[end+1:]...)

	if tbl.selection > end {
		tbl.selection -= end - start + 1
	} else if tbl.selection >= start {
		tbl.selection = -1
	}
}

// SetRedraw suspends or resumes visual updates. The in-memory table has
// nothing to redraw, but records every call for inspection.
func (tbl *Table) SetRedraw(enabled bool) {
	tbl.redrawEnabled = enabled
	tbl.redrawTrace = append(tbl.redrawTrace, enabled)
}

// RedrawEnabled reports whether redrawing is currently enabled.
func (tbl *Table) RedrawEnabled() bool {
	return tbl.redrawEnabled
}

// RedrawTrace returns all values passed to SetRedraw, in call order.
func (tbl *Table) RedrawTrace() []bool {
	trace := make([]bool, len(tbl.redrawTrace))
	copy(trace, tbl.redrawTrace)

	return trace
}

// SetSortColumn marks the given column as the one the table is currently
// sorted by.
func (tbl *Table) SetSortColumn(column widget.Column) {
	tbl.sortColumn = column
}

// SortColumn returns the column the table is currently marked as sorted by.
func (tbl *Table) SortColumn() widget.Column {
	return tbl.sortColumn
}

// SetSortDirection marks the direction the table is currently sorted in.
func (tbl *Table) SetSortDirection(direction tablesort.Order) {
	tbl.sortDirection = direction
}

// SortDirection returns the direction the table is currently marked as
// sorted in.
func (tbl *Table) SortDirection() tablesort.Order {
	return tbl.sortDirection
}

// Column is an in-memory widget.Column.
type Column struct {
	handlers []func()
}

// OnActivate registers a handler to be invoked on header activation.
func (column *Column) OnActivate(handler func()) {
	column.handlers = append(column.handlers, handler)
}

// Activate simulates a header activation, e.g. a mouse click, by invoking
// all registered handlers in registration order.
func (column *Column) Activate() {
	for _, handler := range column.handlers {
		handler()
	}
}

// Item is an in-memory widget.Item.
type Item struct {
	texts      []string
	background interface{}
	foreground interface{}
	font       interface{}
	checked    bool
	grayed     bool
	data       interface{}
}

// Text returns the cell text of the given column, or an empty string for
// columns outside the table.
func (item *Item) Text(column int) string {
	if column < 0 || column >= len(item.texts) {
		return ""
	}

	return item.texts[column]
}

// SetText sets the cell text of the given column. Columns outside the
// table are ignored.
func (item *Item) SetText(column int, text string) {
	if column >= 0 && column < len(item.texts) {
		item.texts[column] = text
	}
}

func (item *Item) Background() interface{} {
	return item.background
}

func (item *Item) SetBackground(background interface{}) {
	item.background = background
}

func (item *Item) Foreground() interface{} {
	return item.foreground
}

func (item *Item) SetForeground(foreground interface{}) {
	item.foreground = foreground
}

func (item *Item) Font() interface{} {
	return item.font
}

func (item *Item) SetFont(font interface{}) {
	item.font = font
}

func (item *Item) Checked() bool {
	return item.checked
}

func (item *Item) SetChecked(checked bool) {
	item.checked = checked
}

func (item *Item) Grayed() bool {
	return item.grayed
}

func (item *Item) SetGrayed(grayed bool) {
	item.grayed = grayed
}

// Data returns the opaque payload attached to the row.
func (item *Item) Data() interface{} {
	return item.data
}

// SetData attaches an opaque payload to the row.
func (item *Item) SetData(data interface{}) {
	item.data = data
}
