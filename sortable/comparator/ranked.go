package comparator

import (
	"github.com/tableaux-project/tablesort/config"
	"github.com/tableaux-project/tablesort/widget"
)

// Ranked compares cell values by their position in an explicitly configured
// Ranking, for enum-like columns whose natural order is not the
// lexicographic order of their display texts. Values missing from the
// ranking are treated as malformed.
type Ranked struct {
	*Common
	Ranking config.Ranking
}

func (comparator Ranked) Compare(a, b widget.Item) (int, error) {
	textA := a.Text(comparator.Column)
	textB := b.Text(comparator.Column)

	rankA, err := comparator.Ranking.Rank(textA)
	if err != nil {
		return comparator.malformed(textA, textB, err)
	}

	rankB, err := comparator.Ranking.Rank(textB)
	if err != nil {
		return comparator.malformed(textA, textB, err)
	}

	switch {
	case rankA < rankB:
		return -1, nil
	case rankA > rankB:
		return 1, nil
	}

	return 0, nil
}
