package config

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/birkirb/loggers.v1/log"
)

var (
	// ErrUnknownRanking indicates that a requested ranking is not
	// known to a RankingMapper.
	ErrUnknownRanking = errors.New("unknown ranking")

	// ErrUnknownRankingKey indicates that a requested key is
	// not known to a Ranking.
	ErrUnknownRankingKey = errors.New("unknown ranking key")
)

const dotJSON = ".json"

// Ranking is an explicit ordering of cell values, ranking each value before
// all values that follow it. E.g. "OPEN" before "SHIPPED" before "CLOSED",
// regardless of their lexicographic order.
type Ranking struct {
	keys  []string
	ranks map[string]int
}

// NewRanking constructs a new Ranking from the given keys. Duplicate keys
// keep their first rank.
func NewRanking(keys []string) Ranking {
	ranks := make(map[string]int, len(keys))
	for i, key := range keys {
		if _, exists := ranks[key]; !exists {
			ranks[key] = i
		}
	}

	return Ranking{
		keys:  keys,
		ranks: ranks,
	}
}

// Rank retrieves the rank of a single key, or returns an
// ErrUnknownRankingKey, if the key does not exist.
func (ranking Ranking) Rank(key string) (int, error) {
	rank, exists := ranking.ranks[key]
	if !exists {
		return 0, ErrUnknownRankingKey
	}

	return rank, nil
}

// Entries returns all keys of the ranking, in rank order.
func (ranking Ranking) Entries() []string {
	entries := make([]string, len(ranking.keys))
	copy(entries, ranking.keys)

	return entries
}

// RankingMapper is a mapper which maps ranking names to their rankings.
type RankingMapper struct {
	rankings map[string]Ranking
}

// NewRankingMapperFromFolder builds a new ranking mapper from a given folder,
// recursively loading all ranking jsons which are found in there.
func NewRankingMapperFromFolder(rankingPath string) (RankingMapper, error) {
	rankings := make(map[string]Ranking)

	regex := regexp.MustCompile(`[\\/]`)
	err := filepath.Walk(rankingPath, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if filepath.Ext(path) == dotJSON {
			relativePath, err := filepath.Rel(rankingPath, path)
			if err != nil {
				return err
			}

			ranking, err := loadRankingFile(path)
			if err != nil {
				return err
			}

			name := regex.ReplaceAllString(strings.TrimSuffix(relativePath, filepath.Ext(path)), "")

			rankings[name] = ranking
		} else if !f.IsDir() {
			log.WithField("file", path).Debug("Ignoring file, as not a json file!")
		}

		return nil
	})

	if err != nil {
		return RankingMapper{}, err
	}

	log.WithField("count", len(rankings)).Info("Successfully loaded rankings")

	return RankingMapper{rankings: rankings}, nil
}

// RankInRanking is a shortcut method for getting a ranking, and immediately
// fetching the rank of a key from it.
func (rankingMapper RankingMapper) RankInRanking(ranking, key string) (int, error) {
	fetchedRanking, err := rankingMapper.Ranking(ranking)
	if err != nil {
		return 0, err
	}

	return fetchedRanking.Rank(key)
}

// Ranking retrieves a specific ranking from the mapper if existing, or
// returns an error otherwise.
func (rankingMapper RankingMapper) Ranking(ranking string) (Ranking, error) {
	if _, exists := rankingMapper.rankings[ranking]; !exists {
		return Ranking{}, ErrUnknownRanking
	}

	return rankingMapper.rankings[ranking], nil
}

// Rankings returns all rankings which the mapper knows, in no particular order.
func (rankingMapper RankingMapper) Rankings() []Ranking {
	rankings := make([]Ranking, len(rankingMapper.rankings))

	i := 0
	for _, v := range rankingMapper.rankings {
		rankings[i] = v
		i++
	}

	return rankings
}

func loadRankingFile(path string) (Ranking, error) {
	file, err := ioutil.ReadFile(path)
	if err != nil {
		return Ranking{}, err
	}

	var keys []string
	if err := json.Unmarshal(file, &keys); err != nil {
		return Ranking{}, err
	}

	return NewRanking(keys), nil
}
