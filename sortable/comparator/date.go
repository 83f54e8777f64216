package comparator

import (
	"time"

	"github.com/tableaux-project/tablesort/widget"
)

// DefaultDateLayout is the layout used by Date comparators which were not
// given one at construction.
const DefaultDateLayout = "01/02/2006"

// Date compares cell values as dates, for columns that have their data
// always formatted in some standard date form. Layout is a reference time
// layout as understood by the time package; if empty, DefaultDateLayout
// is used.
type Date struct {
	*Common
	Layout string
}

func (comparator Date) Compare(a, b widget.Item) (int, error) {
	layout := comparator.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}

	textA := a.Text(comparator.Column)
	textB := b.Text(comparator.Column)

	dateA, err := time.Parse(layout, textA)
	if err != nil {
		return comparator.malformed(textA, textB, err)
	}

	dateB, err := time.Parse(layout, textB)
	if err != nil {
		return comparator.malformed(textA, textB, err)
	}

	switch {
	case dateA.Before(dateB):
		return -1, nil
	case dateA.After(dateB):
		return 1, nil
	}

	return 0, nil
}
