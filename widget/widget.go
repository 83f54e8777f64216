// Package widget contains the implementation agnostic contract between
// tablesort and a hosting tabular display widget. Sub packages contain
// reference implementations, such as an in-memory one.
package widget

import (
	"github.com/tableaux-project/tablesort"
)

// Table defines the central contract between tablesort and a hosting
// display widget. The widget owns its rows and columns; tablesort only
// computes orderings and asks the widget to display rows in that order.
type Table interface {
	// Columns returns all column handles of the widget, in display order.
	// This is read once, when a sorter is constructed - columns added
	// afterwards are not picked up.
	Columns() []Column

	// Items returns all row handles of the widget, in display order.
	Items() []Item

	// SelectionIndex returns the index of the currently selected row, or
	// -1 if no row is selected.
	SelectionIndex() int

	// Select moves the selection marker to the row at the given index.
	Select(index int)

	// NewItem creates a fresh row handle, appended after all current rows.
	NewItem() Item

	// Remove removes the rows in the given index range, both ends inclusive.
	Remove(start, end int)

	// SetRedraw suspends or resumes visual updates. Suspending during bulk
	// row manipulation is a flicker-avoidance contract with the widget.
	SetRedraw(enabled bool)

	// SetSortColumn marks the given column as the one the display is
	// currently sorted by.
	SetSortColumn(column Column)

	// SetSortDirection marks the direction the display is currently
	// sorted in.
	SetSortDirection(direction tablesort.Order)
}

// Column is a handle to a single column of a hosting display widget.
type Column interface {
	// OnActivate registers a handler which the widget invokes whenever the
	// column header is activated, e.g. by a mouse click.
	OnActivate(handler func())
}

// Item is a handle to a single row of a hosting display widget. All values
// must be copied, never aliased, when rows are rebuilt in a new order.
type Item interface {
	// Text returns the cell text of the given column.
	Text(column int) string

	// SetText sets the cell text of the given column.
	SetText(column int, text string)

	Background() interface{}
	SetBackground(background interface{})

	Foreground() interface{}
	SetForeground(foreground interface{})

	Font() interface{}
	SetFont(font interface{})

	Checked() bool
	SetChecked(checked bool)

	Grayed() bool
	SetGrayed(grayed bool)

	// Data returns the opaque payload attached to the row.
	Data() interface{}

	// SetData attaches an opaque payload to the row.
	SetData(data interface{})
}
