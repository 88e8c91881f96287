package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/unlockedcoding/catalog/internal/pkg/logger"
)

// Reviews reads the site-wide reviews file. A missing or malformed file
// yields a typed empty payload, never an error.
func (s *Store) Reviews() ReviewsData {
	empty := ReviewsData{Reviews: []Review{}}

	path := filepath.Join(s.baseDir, "data", "reviews.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("file", "reviews.json").Msg("Reviews data unavailable, serving empty")
		return empty
	}

	var data ReviewsData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Warn().Err(err).Str("file", "reviews.json").Msg("Reviews data malformed, serving empty")
		return empty
	}
	if data.Reviews == nil {
		data.Reviews = []Review{}
	}
	return data
}

// Placements reads the placements file. A missing or malformed file yields a
// typed empty payload with the zero package label.
func (s *Store) Placements() PlacementsData {
	empty := PlacementsData{Placements: []Placement{}, AveragePackage: "₹0 LPA"}

	path := filepath.Join(s.baseDir, "data", "placements.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("file", "placements.json").Msg("Placements data unavailable, serving empty")
		return empty
	}

	var data PlacementsData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Warn().Err(err).Str("file", "placements.json").Msg("Placements data malformed, serving empty")
		return empty
	}
	if data.Placements == nil {
		data.Placements = []Placement{}
	}
	return data
}
