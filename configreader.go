package tablesort

import (
	"os"
	"path/filepath"

	"github.com/tableaux-project/tablesort/config"
)

// NewSortSchemaMapperFromAssets creates a new SortSchemaMapper from the asset folder, relative to the executing binary.
func NewSortSchemaMapperFromAssets() (config.SortSchemaMapper, error) {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}

	return config.NewSortSchemaMapperFromFolder(filepath.Dir(ex) + "/assets/sortschema/")
}

// NewRankingMapperFromAssets creates a new RankingMapper from the asset folder, relative to the executing binary.
func NewRankingMapperFromAssets() (config.RankingMapper, error) {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}

	return config.NewRankingMapperFromFolder(filepath.Dir(ex) + "/assets/ranking/")
}
