package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/unlockedcoding/catalog/internal/pkg/logger"
	"github.com/unlockedcoding/catalog/internal/pkg/slug"
)

// UnknownTeacherKey is the sentinel instructor key used when a course file
// names no teacher at all. It keeps the instructor key invariant: never empty.
const UnknownTeacherKey = "unknown-teacher"

// registry maps every normalized alias of a teacher (id, display name, raw
// name) to one owned profile. It lives for the duration of a single corpus
// build and is rebuilt, not shared, on each cache miss.
type registry struct {
	byAlias map[string]*TeacherProfile
}

// buildRegistry indexes profiles under all of their aliases. The first
// profile to claim an alias keeps it.
func buildRegistry(profiles []TeacherProfile) *registry {
	reg := &registry{byAlias: make(map[string]*TeacherProfile, len(profiles)*3)}
	for i := range profiles {
		p := &profiles[i]
		for _, alias := range []string{p.ID, p.DisplayName, p.Name} {
			key := slug.Normalize(alias)
			if key == "" {
				continue
			}
			if _, taken := reg.byAlias[key]; !taken {
				reg.byAlias[key] = p
			}
		}
	}
	return reg
}

// lookup returns the profile registered under key, or nil.
func (r *registry) lookup(key string) *TeacherProfile {
	return r.byAlias[key]
}

// TeacherProfiles loads every instructor profile from the per-file teacher
// directory. Each file may hold a single object or an array, with fragment
// recovery for trailing commas and missing array brackets. Profiles are
// deduplicated by normalized id, first occurrence winning. When the directory
// yields nothing, the legacy combined teachers.json file is tried. A
// malformed file is logged and skipped; no failure aborts the load.
func (s *Store) TeacherProfiles() []TeacherProfile {
	dir := filepath.Join(s.baseDir, "data", "teachers")
	entries, err := os.ReadDir(dir)
	if err == nil {
		profiles := make([]TeacherProfile, 0, len(entries))
		seen := make(map[string]bool, len(entries))

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
				continue
			}

			raw, readErr := os.ReadFile(filepath.Join(dir, entry.Name()))
			if readErr != nil {
				logger.Warn().Err(readErr).Str("file", entry.Name()).Msg("Skipping unreadable teacher file")
				continue
			}

			records := parseFragments[TeacherProfile](raw)
			if len(records) == 0 {
				if strings.TrimSpace(string(raw)) != "" {
					logger.Warn().Str("file", entry.Name()).Msg("Skipping malformed teacher file")
				}
				continue
			}

			for _, record := range records {
				id := slug.Normalize(firstNonEmpty(record.ID, record.DisplayName, record.Name))
				if id == "" || seen[id] {
					continue
				}

				record.ID = id
				record.DisplayName = firstNonEmpty(record.DisplayName, record.Name, id)
				record.Name = firstNonEmpty(record.Name, record.DisplayName)

				profiles = append(profiles, record)
				seen[id] = true
			}
		}

		if len(profiles) > 0 {
			return profiles
		}
	}

	return s.legacyTeacherProfiles()
}

// legacyTeacherProfiles reads the single combined teachers file kept for
// backward compatibility with the old data layout.
func (s *Store) legacyTeacherProfiles() []TeacherProfile {
	path := filepath.Join(s.baseDir, "data", "teachers.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var profiles []TeacherProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		logger.Warn().Err(err).Str("file", "teachers.json").Msg("Skipping malformed legacy teachers file")
		return nil
	}
	return profiles
}

// TeacherDetails finds one instructor profile by id, name, or display name,
// case-insensitively. When no exact match exists it falls back to substring
// matching, mirroring how teacher page URLs are resolved.
func (s *Store) TeacherDetails(instructorName string) *TeacherProfile {
	profiles := s.TeacherProfiles()
	needle := strings.ToLower(instructorName)

	for i := range profiles {
		p := &profiles[i]
		if strings.ToLower(p.ID) == needle ||
			strings.ToLower(p.Name) == needle ||
			strings.ToLower(p.DisplayName) == needle {
			return p
		}
	}

	for i := range profiles {
		p := &profiles[i]
		name := strings.ToLower(p.Name)
		display := strings.ToLower(p.DisplayName)
		id := strings.ToLower(p.ID)
		if strings.Contains(name, needle) || strings.Contains(display, needle) ||
			strings.Contains(needle, name) || strings.Contains(needle, display) ||
			(id != "" && strings.Contains(needle, id)) {
			return p
		}
	}

	return nil
}
