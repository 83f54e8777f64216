package sortable

import (
	"strings"

	"github.com/tableaux-project/tablesort"
	"github.com/tableaux-project/tablesort/config"
	"github.com/tableaux-project/tablesort/sortable/comparator"
)

// comparatorBuilder constructs a comparator for a single column from its
// schema definition.
type comparatorBuilder func(common *comparator.Common, column config.SortSchemaColumn, rankings config.RankingMapper) (comparator.Comparator, error)

var comparatorBuilders = map[string]comparatorBuilder{
	"":        newTextComparator,
	"string":  newTextComparator,
	"integer": newIntegerComparator,
	"decimal": newDecimalComparator,
	"date":    newDateComparator,
	"ranked":  newRankedComparator,
}

func newTextComparator(common *comparator.Common, _ config.SortSchemaColumn, _ config.RankingMapper) (comparator.Comparator, error) {
	return comparator.Text{Common: common}, nil
}

func newIntegerComparator(common *comparator.Common, _ config.SortSchemaColumn, _ config.RankingMapper) (comparator.Comparator, error) {
	return comparator.Integer{Common: common}, nil
}

func newDecimalComparator(common *comparator.Common, _ config.SortSchemaColumn, _ config.RankingMapper) (comparator.Comparator, error) {
	return comparator.Decimal{Common: common}, nil
}

func newDateComparator(common *comparator.Common, column config.SortSchemaColumn, _ config.RankingMapper) (comparator.Comparator, error) {
	return comparator.Date{Common: common, Layout: column.DateLayout}, nil
}

func newRankedComparator(common *comparator.Common, column config.SortSchemaColumn, rankings config.RankingMapper) (comparator.Comparator, error) {
	ranking, err := rankings.Ranking(column.Ranking)
	if err != nil {
		return nil, err
	}

	return comparator.Ranked{Common: common, Ranking: ranking}, nil
}

// ApplySchema binds a comparator to every column the given schema covers,
// by position. The schema is validated against the given RankingMapper
// first, and a schema covering more columns than the hosting table is
// rejected with ErrUnknownColumn. Columns not covered by the schema keep
// their current binding. No resort is triggered.
func (sortable *Table) ApplySchema(schema config.SortSchema, rankings config.RankingMapper) error {
	if err := schema.ValidateIntegrity(rankings); err != nil {
		return err
	}

	if len(schema.Columns) > len(sortable.columns) {
		return ErrUnknownColumn
	}

	for i, column := range schema.Columns {
		common := &comparator.Common{
			Column: i,
			Policy: tablesort.Policy(column.Policy),
		}

		build := comparatorBuilders[strings.ToLower(column.Comparator)]

		cmp, err := build(common, column, rankings)
		if err != nil {
			return err
		}

		sortable.columns[i].comparator = cmp
	}

	return nil
}
