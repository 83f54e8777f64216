package comparator

import (
	"strconv"

	"github.com/tableaux-project/tablesort/widget"
)

// Integer compares cell values as base 10 integers, for columns that will
// only ever contain integers.
type Integer struct {
	*Common
}

func (comparator Integer) Compare(a, b widget.Item) (int, error) {
	textA := a.Text(comparator.Column)
	textB := b.Text(comparator.Column)

	intA, err := strconv.ParseInt(textA, 10, 64)
	if err != nil {
		return comparator.malformed(textA, textB, err)
	}

	intB, err := strconv.ParseInt(textB, 10, 64)
	if err != nil {
		return comparator.malformed(textA, textB, err)
	}

	switch {
	case intA < intB:
		return -1, nil
	case intA > intB:
		return 1, nil
	}

	return 0, nil
}
