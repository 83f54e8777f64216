package tablesort

// Order describes a direction to order a column by.
type Order string

const (
	// OrderAsc describes ascending column order.
	OrderAsc Order = "ASC"

	// OrderDesc describes descending column order.
	OrderDesc Order = "DESC"
)

func (order Order) Reverse() Order {
	if order == OrderAsc {
		return OrderDesc
	}

	return OrderAsc
}

// Policy is an abstract definition of how a comparator reacts to cell
// values it cannot make sense of.
type Policy string

const (
	// PolicyFailSoft indicates that malformed cell values are logged and
	// compared as equal, so a single bad cell cannot abort a sort. This is
	// the default.
	PolicyFailSoft Policy = "FAIL_SOFT"

	// PolicyFailFast indicates that malformed cell values abort the sort
	// with an error, leaving the display untouched.
	PolicyFailFast Policy = "FAIL_FAST"
)

// SelectionMode is an abstract definition of how the selection marker is
// restored after rows have been reordered.
type SelectionMode string

const (
	// SelectionByPosition indicates that the selection marker stays on the
	// positional index it had before the sort, regardless of which row ends
	// up there.
	SelectionByPosition SelectionMode = "POSITION"

	// SelectionByItem indicates that the selection marker follows the
	// originally selected row to its new position.
	SelectionByItem SelectionMode = "ITEM"
)
