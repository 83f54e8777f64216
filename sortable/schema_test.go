package sortable_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"path/filepath"

	"github.com/tableaux-project/tablesort"
	"github.com/tableaux-project/tablesort/config"
	"github.com/tableaux-project/tablesort/sortable"
	"github.com/tableaux-project/tablesort/widget/memwidget"
)

var _ = Describe("Schema application", func() {
	var (
		tbl      *memwidget.Table
		sorted   *sortable.Table
		schemas  config.SortSchemaMapper
		rankings config.RankingMapper
	)

	BeforeEach(func() {
		var err error

		schemas, err = config.NewSortSchemaMapperFromFolder(filepath.Join("testfiles", "sortschema"))
		Expect(err).NotTo(HaveOccurred())

		rankings, err = config.NewRankingMapperFromFolder(filepath.Join("testfiles", "ranking"))
		Expect(err).NotTo(HaveOccurred())

		tbl = memwidget.New(4)
		tbl.AddRow("3", "1.50", "CLOSED", "2019-01-05")
		tbl.AddRow("10", "1.5", "OPEN", "2018-12-24")
		tbl.AddRow("2", "0.75", "SHIPPED", "2019-01-01")

		sorted = sortable.New(tbl)
	})

	Context("when applying the invoice schema", func() {
		BeforeEach(func() {
			schema, err := schemas.Schema("invoices")
			Expect(err).NotTo(HaveOccurred())

			Expect(sorted.ApplySchema(schema, rankings)).To(Succeed())
		})

		It("should sort the number column numerically", func() {
			Expect(sorted.SortByColumnDirected(0, tablesort.OrderAsc)).To(Succeed())
			Expect(columnTexts(tbl, 0)).To(Equal([]string{"2", "3", "10"}))
		})

		It("should sort the total column by decimal value", func() {
			Expect(sorted.SortByColumnDirected(1, tablesort.OrderAsc)).To(Succeed())
			Expect(columnTexts(tbl, 1)).To(Equal([]string{"0.75", "1.50", "1.5"}))
		})

		It("should sort the status column by rank", func() {
			Expect(sorted.SortByColumnDirected(2, tablesort.OrderAsc)).To(Succeed())
			Expect(columnTexts(tbl, 2)).To(Equal([]string{"OPEN", "SHIPPED", "CLOSED"}))
		})

		It("should sort the created column chronologically with the configured layout", func() {
			Expect(sorted.SortByColumnDirected(3, tablesort.OrderAsc)).To(Succeed())
			Expect(columnTexts(tbl, 3)).To(Equal([]string{"2018-12-24", "2019-01-01", "2019-01-05"}))
		})
	})

	Context("when applying a schema covering more columns than the table", func() {
		It("should reject the schema", func() {
			schema := config.SortSchema{
				Table: "too-wide",
				Columns: []config.SortSchemaColumn{
					{Path: "a"}, {Path: "b"}, {Path: "c"}, {Path: "d"}, {Path: "e"},
				},
			}

			Expect(sorted.ApplySchema(schema, rankings)).To(Equal(sortable.ErrUnknownColumn))
		})
	})

	Context("when applying a schema with an unknown comparator type", func() {
		It("should reject the schema", func() {
			schema := config.SortSchema{
				Table: "bad",
				Columns: []config.SortSchemaColumn{
					{Path: "a", Comparator: "wat"},
				},
			}

			err := sorted.ApplySchema(schema, rankings)
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&config.UnknownComparatorTypeError{}))
		})
	})

	Context("when applying a ranked column without its ranking", func() {
		It("should reject the schema", func() {
			schema := config.SortSchema{
				Table: "bad",
				Columns: []config.SortSchemaColumn{
					{Path: "a", Comparator: "ranked", Ranking: "nope"},
				},
			}

			err := sorted.ApplySchema(schema, rankings)
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&config.UnresolvableRankingError{}))
		})
	})
})
