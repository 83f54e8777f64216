// Package sortable decorates a tabular display widget with user driven, per
// column sorting, without touching the widget's rendering or selection
// machinery. The widget stays the owner of rows and columns; this package
// only computes orderings and rebuilds the rows in the computed order.
package sortable

import (
	"errors"
	"sort"

	"gopkg.in/birkirb/loggers.v1/log"

	"github.com/tableaux-project/tablesort"
	"github.com/tableaux-project/tablesort/sortable/comparator"
	"github.com/tableaux-project/tablesort/widget"
)

var (
	// ErrUnknownColumn indicates that a column index outside the hosting
	// table's column range was passed.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNotSorted indicates that an operation requiring an active sort
	// column was invoked before any sort was performed.
	ErrNotSorted = errors.New("table has not been sorted yet")
)

// sortedColumn groups everything required for maintaining sorting order on
// a specific column.
type sortedColumn struct {
	column     widget.Column
	index      int
	direction  tablesort.Order
	comparator comparator.Comparator
}

// Table decorates a hosting display widget with per column sorting. It
// tracks, per column, the bound comparator and the direction the column was
// last sorted in, plus the column the whole table is currently sorted by.
//
// All operations are synchronous and run to completion on the calling
// thread. A Table provides no internal locking; confine it to the thread
// driving the hosting widget.
type Table struct {
	tbl           widget.Table
	columns       []*sortedColumn
	current       *sortedColumn
	selectionMode tablesort.SelectionMode
}

// New decorates the given widget. Every column present on the widget is
// bound to the lexicographic Text comparator with ascending direction, and
// hooked up so that a header activation sorts by that column in toggle
// mode. Columns added to the widget afterwards are not picked up.
func New(tbl widget.Table) *Table {
	columns := tbl.Columns()

	sortable := &Table{
		tbl:           tbl,
		columns:       make([]*sortedColumn, len(columns)),
		selectionMode: tablesort.SelectionByPosition,
	}

	for i, column := range columns {
		sortable.columns[i] = &sortedColumn{
			column:     column,
			index:      i,
			direction:  tablesort.OrderAsc,
			comparator: comparator.Text{Common: &comparator.Common{Column: i}},
		}

		index := i
		column.OnActivate(func() {
			if err := sortable.SortByColumn(index); err != nil {
				log.WithFields(
					"column", index,
					"error", err,
				).Error("Failed to sort by activated column")
			}
		})
	}

	return sortable
}

// SetComparator binds a custom comparator to a single column, replacing the
// previously bound one. The direction the column was last sorted in is kept,
// and no resort is triggered.
func (sortable *Table) SetComparator(columnIndex int, cmp comparator.Comparator) error {
	if columnIndex < 0 || columnIndex >= len(sortable.columns) {
		return ErrUnknownColumn
	}

	sortable.columns[columnIndex].comparator = cmp

	return nil
}

// SetSelectionMode changes how the selection marker is restored after a
// sort. The default is SelectionByPosition.
func (sortable *Table) SetSelectionMode(mode tablesort.SelectionMode) {
	sortable.selectionMode = mode
}

// CurrentSortColumn returns the index of the column the table was last
// sorted by, or ErrNotSorted if no sort has been performed yet.
func (sortable *Table) CurrentSortColumn() (int, error) {
	if sortable.current == nil {
		return 0, ErrNotSorted
	}

	return sortable.current.index, nil
}

// CurrentSortDirection returns the direction of the last performed sort, or
// ErrNotSorted if no sort has been performed yet.
func (sortable *Table) CurrentSortDirection() (tablesort.Order, error) {
	if sortable.current == nil {
		return "", ErrNotSorted
	}

	return sortable.current.direction, nil
}

// Resort sorts the table again with the last used column and direction, or
// returns ErrNotSorted if no sort has been performed yet.
func (sortable *Table) Resort() error {
	if sortable.current == nil {
		return ErrNotSorted
	}

	return sortable.SortByColumnDirected(sortable.current.index, sortable.current.direction)
}

// SortByColumn sorts the table by the given column, reversing the direction
// the column was last sorted in.
func (sortable *Table) SortByColumn(columnIndex int) error {
	if columnIndex < 0 || columnIndex >= len(sortable.columns) {
		return ErrUnknownColumn
	}

	return sortable.SortByColumnDirected(columnIndex, sortable.columns[columnIndex].direction.Reverse())
}

// SortByColumnDirected sorts the table by the given column in the given
// direction, using the comparator bound to the column. The sort is stable,
// so rows compared as equal keep their prior relative order. The rows are
// rebuilt in the computed order with every preserved attribute copied onto
// the fresh rows, redraw suspended for the duration of the rebuild, and the
// selection restored according to the selection mode.
//
// Under PolicyFailFast a malformed cell aborts the sort with a
// MalformedCellError before the display is touched.
func (sortable *Table) SortByColumnDirected(columnIndex int, direction tablesort.Order) error {
	if columnIndex < 0 || columnIndex >= len(sortable.columns) {
		return ErrUnknownColumn
	}

	state := sortable.columns[columnIndex]

	log.WithFields(
		"column", columnIndex,
		"direction", direction,
	).Debug("Sorting by column")

	sortable.current = state
	state.direction = direction

	items := sortable.tbl.Items()
	selection := sortable.tbl.SelectionIndex()

	ordered := make([]widget.Item, len(items))
	copy(ordered, items)

	var compareErr error
	sort.SliceStable(ordered, func(i, j int) bool {
		result, err := state.comparator.Compare(ordered[i], ordered[j])
		if err != nil && compareErr == nil {
			compareErr = err
		}

		if direction == tablesort.OrderDesc {
			result = -result
		}

		return result < 0
	})

	if compareErr != nil {
		return compareErr
	}

	sortable.tbl.SetRedraw(false)
	defer sortable.tbl.SetRedraw(true)

	sortable.tbl.SetSortColumn(state.column)
	sortable.tbl.SetSortDirection(direction)

	columnCount := len(sortable.columns)
	for _, item := range ordered {
		fresh := sortable.tbl.NewItem()
		fresh.SetBackground(item.Background())
		fresh.SetChecked(item.Checked())
		fresh.SetData(item.Data())
		fresh.SetFont(item.Font())
		fresh.SetForeground(item.Foreground())
		fresh.SetGrayed(item.Grayed())

		for j := 0; j < columnCount; j++ {
			fresh.SetText(j, item.Text(j))
		}
	}

	if len(items) > 0 {
		sortable.tbl.Remove(0, len(items)-1)
	}

	if selection >= 0 && selection < len(items) {
		sortable.tbl.Select(sortable.restoredSelection(items, ordered, selection))
	}

	return nil
}

// restoredSelection maps the pre-sort selection index to the post-sort one,
// according to the selection mode.
func (sortable *Table) restoredSelection(items, ordered []widget.Item, selection int) int {
	if sortable.selectionMode == tablesort.SelectionByItem {
		for i, item := range ordered {
			if item == items[selection] {
				return i
			}
		}
	}

	return selection
}

// Widget returns the decorated hosting widget.
func (sortable *Table) Widget() widget.Table {
	return sortable.tbl
}
