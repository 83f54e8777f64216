package config_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tableaux-project/tablesort/config"
)

var _ = Describe("Sort schema", func() {
	var (
		mapper config.SortSchemaMapper
		err    error
	)

	Describe("While working with broken files", func() {
		Context("when trying to load the broken test files", func() {
			var (
				err error
			)

			BeforeEach(func() {
				_, err = config.NewSortSchemaMapperFromFolder(filepath.Join("testfiles", "sortschema-broken-files"))
			})

			It("should error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err).To(BeAssignableToTypeOf(&json.SyntaxError{}))
			})
		})

		Context("when trying to load a non existent path", func() {
			var (
				err error
			)

			BeforeEach(func() {
				_, err = config.NewSortSchemaMapperFromFolder("i can't exist")
			})

			It("should error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err).To(BeAssignableToTypeOf(&os.PathError{}))
			})
		})

		Context("when trying to validate a file which contains an unknown comparator type", func() {
			var (
				err error
			)

			BeforeEach(func() {
				mapper, mapperErr := config.NewSortSchemaMapperFromFolder(filepath.Join("testfiles", "sortschema-unknown-type"))
				Expect(mapperErr).ToNot(HaveOccurred())

				err = mapper.ValidateIntegrity(config.RankingMapper{})
			})

			It("should error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err).To(BeAssignableToTypeOf(&config.UnknownComparatorTypeError{}))
				Expect(err.Error()).To(Equal("Unknown comparator type wat in column invoice_number of schema invoices"))
			})
		})

		Context("when trying to validate a file which contains an unknown policy", func() {
			var (
				err error
			)

			BeforeEach(func() {
				mapper, mapperErr := config.NewSortSchemaMapperFromFolder(filepath.Join("testfiles", "sortschema-unknown-policy"))
				Expect(mapperErr).ToNot(HaveOccurred())

				err = mapper.ValidateIntegrity(config.RankingMapper{})
			})

			It("should error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err).To(BeAssignableToTypeOf(&config.UnknownPolicyError{}))
				Expect(err.Error()).To(Equal("Unknown policy WHENEVER in column invoice_number of schema invoices"))
			})
		})

		Context("when trying to validate a file which references an unknown ranking", func() {
			var (
				err error
			)

			BeforeEach(func() {
				mapper, mapperErr := config.NewSortSchemaMapperFromFolder(filepath.Join("testfiles", "sortschema-unknown-ranking"))
				Expect(mapperErr).ToNot(HaveOccurred())

				err = mapper.ValidateIntegrity(config.RankingMapper{})
			})

			It("should error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err).To(BeAssignableToTypeOf(&config.UnresolvableRankingError{}))
				Expect(err.Error()).To(Equal("cannot resolve ranking nope in column invoice_status of schema invoices"))
			})
		})
	})

	Describe("While working with correct files", func() {
		var (
			rankings config.RankingMapper
		)

		BeforeEach(func() {
			mapper, err = config.NewSortSchemaMapperFromFolder(filepath.Join("testfiles", "sortschema-test-files"))

			var rankingErr error
			rankings, rankingErr = config.NewRankingMapperFromFolder(filepath.Join("testfiles", "ranking-test-files"))
			Expect(rankingErr).NotTo(HaveOccurred())
		})

		Context("when trying to load the test files", func() {
			It("should not error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("contain exactly two schemas", func() {
				Expect(len(mapper.Schemas())).To(Equal(2))
			})

			It("should contain the test schema file", func() {
				validSchema, err := mapper.Schema("invoices")
				Expect(err).NotTo(HaveOccurred())
				Expect(validSchema.Columns).To(HaveLen(5))
			})

			It("should contain the schema file from the sub folder", func() {
				validSchema, err := mapper.Schema("subfolder/orders")
				Expect(err).NotTo(HaveOccurred())
				Expect(validSchema.Table).To(Equal("orders"))
			})

			It("should error, when trying to access an unknown schema", func() {
				sortSchema, err := mapper.Schema("wat")

				Expect(err).To(Equal(config.ErrUnknownSortSchema))
				Expect(sortSchema).To(Equal(config.SortSchema{}))
			})

			It("should validate all schemas against the loaded rankings", func() {
				Expect(mapper.ValidateIntegrity(rankings)).To(Succeed())
			})
		})

		Context("when working with a single schema", func() {
			var (
				schema config.SortSchema
			)

			JustBeforeEach(func() {
				schema, err = mapper.Schema("invoices")
				Expect(err).NotTo(HaveOccurred())
			})

			It("should be able to access a single column by path", func() {
				column, err := schema.Column("invoice_created")

				Expect(err).NotTo(HaveOccurred())
				Expect(column.Comparator).To(Equal("date"))
				Expect(column.DateLayout).To(Equal("2006-01-02"))
			})

			It("should error when trying to access an unknown column", func() {
				column, err := schema.Column("wat")

				Expect(err).To(Equal(config.ErrUnknownColumn))
				Expect(column).To(Equal(config.SortSchemaColumn{}))
			})

			It("should treat a column without comparator as valid", func() {
				column, err := schema.Column("invoice_customer")

				Expect(err).NotTo(HaveOccurred())
				Expect(column.Comparator).To(Equal(""))
			})
		})
	})
})
