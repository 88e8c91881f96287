package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/unlockedcoding/catalog/internal/pkg/logger"
)

type rawCategory struct {
	Category        string `json:"category"`
	Des             string `json:"des"`
	ImageOfCategory string `json:"imageofcategory"`
	Rank            Rank   `json:"rank"`
}

// categoriesDir resolves the category source directory, preferring the data/
// layout and falling back to the legacy top-level directory.
func (s *Store) categoriesDir() string {
	preferred := filepath.Join(s.baseDir, "data", "category")
	if _, err := os.Stat(preferred); err == nil {
		return preferred
	}
	return filepath.Join(s.baseDir, "category")
}

// Categories reads every category file and attaches to each the number of
// corpus courses whose category matches case-insensitively. Counts are
// recomputed from the current corpus on every call, never cached on their
// own. Empty files are skipped quietly, malformed ones with a log line.
func (s *Store) Categories() []Category {
	counts := make(map[string]int)
	for _, course := range s.Courses() {
		counts[strings.ToLower(course.Category)]++
	}

	dir := s.categoriesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("Category directory unreadable, serving no categories")
		return []Category{}
	}

	categories := make([]Category, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		raw, readErr := os.ReadFile(filepath.Join(dir, entry.Name()))
		if readErr != nil {
			logger.Warn().Err(readErr).Str("file", entry.Name()).Msg("Skipping unreadable category file")
			continue
		}
		if strings.TrimSpace(string(raw)) == "" {
			continue
		}

		var record rawCategory
		if err := json.Unmarshal(raw, &record); err != nil {
			logger.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping malformed category file")
			continue
		}

		categories = append(categories, Category{
			ID:           strings.TrimSuffix(entry.Name(), ".json"),
			Name:         record.Category,
			Description:  record.Des,
			Image:        record.ImageOfCategory,
			TotalCourses: counts[strings.ToLower(record.Category)],
			Rank:         rankOr(record.Rank, courseDefaults.Rank),
		})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return rankedBefore(categories[i].Rank, categories[i].Name, categories[j].Rank, categories[j].Name)
	})

	return categories
}

// CategoriesByRank filters the category list to one rank tier.
func (s *Store) CategoriesByRank(rank Rank) []Category {
	var out []Category
	for _, category := range s.Categories() {
		if category.Rank == rank {
			out = append(out, category)
		}
	}
	return out
}
