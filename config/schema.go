package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/birkirb/loggers.v1/log"
)

var (
	// ErrUnknownSortSchema indicates that a requested sort schema is not
	// known to a SortSchemaMapper.
	ErrUnknownSortSchema = errors.New("unknown sort schema")

	// ErrUnknownColumn indicates that a requested column is
	// not known to a SortSchema.
	ErrUnknownColumn = errors.New("unknown column")
)

// UnknownComparatorTypeError indicates that an unknown comparator type was
// found during integrity checking of a SortSchema.
type UnknownComparatorTypeError struct {
	schema         string
	column         string
	comparatorType string
}

func (e UnknownComparatorTypeError) Error() string {
	return fmt.Sprintf("Unknown comparator type %s in column %s of schema %s", e.comparatorType, e.column, e.schema)
}

// UnknownPolicyError indicates that an unknown malformed-cell policy was
// found during integrity checking of a SortSchema.
type UnknownPolicyError struct {
	schema string
	column string
	policy string
}

func (e UnknownPolicyError) Error() string {
	return fmt.Sprintf("Unknown policy %s in column %s of schema %s", e.policy, e.column, e.schema)
}

// UnresolvableRankingError indicates that a ranked column references a
// ranking that is not known to the RankingMapper used for integrity checking.
type UnresolvableRankingError struct {
	schema  string
	column  string
	ranking string
}

func (e UnresolvableRankingError) Error() string {
	return fmt.Sprintf("cannot resolve ranking %s in column %s of schema %s", e.ranking, e.column, e.schema)
}

// SortSchema describes how a single hosting table is to be sorted, with all
// its column meta data. Columns are positional: the i-th entry configures
// the i-th column of the hosting table.
type SortSchema struct {
	Table   string             `json:"table"`
	Columns []SortSchemaColumn `json:"columns"`
}

var validComparatorTypes = map[string]struct{}{
	"":        {},
	"string":  {},
	"integer": {},
	"decimal": {},
	"date":    {},
	"ranked":  {},
}

var validPolicies = map[string]struct{}{
	"":          {},
	"FAIL_SOFT": {},
	"FAIL_FAST": {},
}

// ValidateIntegrity checks that the schema is valid. The given RankingMapper
// is used to check that referenced rankings exist.
func (schema SortSchema) ValidateIntegrity(mapper RankingMapper) error {
	for _, column := range schema.Columns {
		comparatorType := strings.ToLower(column.Comparator)
		if _, exists := validComparatorTypes[comparatorType]; !exists {
			return &UnknownComparatorTypeError{
				schema:         schema.Table,
				column:         column.Path,
				comparatorType: column.Comparator,
			}
		}

		if _, exists := validPolicies[column.Policy]; !exists {
			return &UnknownPolicyError{
				schema: schema.Table,
				column: column.Path,
				policy: column.Policy,
			}
		}

		if comparatorType == "ranked" {
			if _, err := mapper.Ranking(column.Ranking); err != nil {
				return &UnresolvableRankingError{
					schema:  schema.Table,
					column:  column.Path,
					ranking: column.Ranking,
				}
			}
		}
	}

	return nil
}

// Column retrieves the SortSchemaColumn for a single column path, or
// returns an ErrUnknownColumn, if the path does not exist.
func (schema SortSchema) Column(path string) (SortSchemaColumn, error) {
	for _, column := range schema.Columns {
		if column.Path == path {
			return column, nil
		}
	}

	return SortSchemaColumn{}, ErrUnknownColumn
}

// SortSchemaColumn is a single column of a SortSchema, defining all the
// required (and optional) properties for sorting a single column.
type SortSchemaColumn struct {
	Title      string `json:"title"`
	Path       string `json:"path"`
	Comparator string `json:"comparator"`
	DateLayout string `json:"dateLayout"`
	Ranking    string `json:"ranking"`
	Policy     string `json:"policy"`
}

// SortSchemaMapper is a mapper which maps schema names to sort schemas.
type SortSchemaMapper struct {
	schemas map[string]SortSchema
}

func readFromPath(schemaPath string) (SortSchema, error) {
	file, err := ioutil.ReadFile(schemaPath)
	if err != nil {
		return SortSchema{}, err
	}

	dat := SortSchema{}
	if err := json.Unmarshal(file, &dat); err != nil {
		return SortSchema{}, err
	}

	return dat, nil
}

// NewSortSchemaMapperFromFolder builds a new sort schema mapper from a given
// folder, recursively loading all schema jsons which are found in there.
func NewSortSchemaMapperFromFolder(schemaRoot string) (SortSchemaMapper, error) {
	// Normalize the path, and eliminate separator inconsistencies
	normalizedRoot, err := filepath.Abs(schemaRoot)
	if err != nil {
		return SortSchemaMapper{}, err
	}

	schemas := make(map[string]SortSchema)
	if walkErr := filepath.Walk(normalizedRoot, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if filepath.Ext(path) == dotJSON {
			schema, err := readFromPath(path)
			if err != nil {
				return err
			}

			schemas[normalizeSchemaKey(path, normalizedRoot)] = schema
		} else if !f.IsDir() {
			log.WithField("file", path).Debug("Ignoring file, as not a json file!")
		}

		return nil
	}); walkErr != nil {
		return SortSchemaMapper{}, walkErr
	}

	log.WithField("count", len(schemas)).Info("Successfully loaded sort schemas")

	return SortSchemaMapper{schemas: schemas}, nil
}

// normalizeSchemaKey calculates the name of a schema by its path relative
// to the root of all schemas. This method also normalizes system specific
// path separators (e.g. / or \) to "/".
func normalizeSchemaKey(schemaPath, schemaRoot string) string {
	normalizedPath := strings.TrimSuffix(
		// Remove Extension
		strings.TrimPrefix(
			// Remove Separator
			strings.TrimPrefix(
				// Remove schemaRoot
				schemaPath,
				schemaRoot,
			),
			string(os.PathSeparator),
		),
		filepath.Ext(schemaPath),
	)

	return strings.Replace(strings.ToLower(normalizedPath), string(os.PathSeparator), "/", -1)
}

// Schema retrieves a specific schema from the mapper if existing, or returns
// a ErrUnknownSortSchema otherwise.
func (schemaMapper SortSchemaMapper) Schema(schema string) (SortSchema, error) {
	if _, exists := schemaMapper.schemas[schema]; !exists {
		return SortSchema{}, ErrUnknownSortSchema
	}

	return schemaMapper.schemas[schema], nil
}

// Schemas returns all schemas which the mapper knows, in no particular order.
func (schemaMapper SortSchemaMapper) Schemas() []SortSchema {
	schemas := make([]SortSchema, len(schemaMapper.schemas))

	i := 0
	for _, v := range schemaMapper.schemas {
		schemas[i] = v
		i++
	}

	return schemas
}

// ValidateIntegrity iteratively checks all schemas known to the mapper for
// integrity. The given RankingMapper is used to check that all referenced
// rankings exist.
func (schemaMapper SortSchemaMapper) ValidateIntegrity(mapper RankingMapper) error {
	for _, schema := range schemaMapper.schemas {
		if err := schema.ValidateIntegrity(mapper); err != nil {
			return err
		}
	}

	return nil
}
