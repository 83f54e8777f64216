package comparator

import (
	"github.com/shopspring/decimal"

	"github.com/tableaux-project/tablesort/widget"
)

// Decimal compares cell values as arbitrary precision decimals, for columns
// with values where floating point precision is not sufficient.
type Decimal struct {
	*Common
}

func (comparator Decimal) Compare(a, b widget.Item) (int, error) {
	textA := a.Text(comparator.Column)
	textB := b.Text(comparator.Column)

	decimalA, err := decimal.NewFromString(textA)
	if err != nil {
		return comparator.malformed(textA, textB, err)
	}

	decimalB, err := decimal.NewFromString(textB)
	if err != nil {
		return comparator.malformed(textA, textB, err)
	}

	return decimalA.Cmp(decimalB), nil
}
