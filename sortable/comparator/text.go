package comparator

import (
	"strings"

	"github.com/tableaux-project/tablesort/widget"
)

// Text is the default implementation of a Comparator, which simply compares
// the raw cell texts lexicographically, without any kind of parsing or
// conversion. It never fails.
type Text struct {
	*Common
}

func (comparator Text) Compare(a, b widget.Item) (int, error) {
	return strings.Compare(a.Text(comparator.Column), b.Text(comparator.Column)), nil
}
