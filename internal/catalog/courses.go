package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/unlockedcoding/catalog/internal/pkg/logger"
	"github.com/unlockedcoding/catalog/internal/pkg/slug"
)

// rawCourse mirrors the on-disk course file shape, optional fields left at
// their zero values until normalization applies the defaults table.
type rawCourse struct {
	CourseName        string         `json:"courseName"`
	CourseCategory    string         `json:"coursecategory"`
	ViewType          string         `json:"viewtype"`
	Des               string         `json:"des"`
	Copyright         bool           `json:"copyright"`
	TeacherID         string         `json:"teacherId"`
	InstructorName    string         `json:"instructorname"`
	ImageOfInstructor string         `json:"imageofinstructur"`
	ImageOfCourse     string         `json:"imageofcourse"`
	Audio             string         `json:"audio"`
	Cost              float64        `json:"cost"`
	VideoType         VideoType      `json:"videoType"`
	RedirectURL       string         `json:"redirecturl"`
	RedirectSyllabus  []string       `json:"redirectsyllabus"`
	Subsection        StringList     `json:"subsection"`
	Videos            []Video        `json:"videos"`
	Rank              Rank           `json:"rank"`
	Homepage          bool           `json:"homepage"`
	Syllabus          []SyllabusItem `json:"syllabus"`
	WhatYouWillLearn  []string       `json:"whatYouWillLearn"`
	Requirements      []string       `json:"requirements"`
	Rating            *Rating        `json:"rating"`
	Duration          string         `json:"duration"`
	Level             string         `json:"level"`
	Language          string         `json:"language"`
	StudentsEnrolled  int            `json:"studentsEnrolled"`
	LastUpdated       string         `json:"lastUpdated"`
	Features          []string       `json:"features"`
}

// coursesDir resolves the course source directory, preferring the data/
// layout and falling back to the legacy top-level directory.
func (s *Store) coursesDir() string {
	preferred := filepath.Join(s.baseDir, "data", "courses")
	if _, err := os.Stat(preferred); err == nil {
		return preferred
	}
	return filepath.Join(s.baseDir, "courses")
}

// loadCourses reads every course file, joins each against the teacher
// registry, and returns the sorted corpus. The second result is false when
// the source directory itself is unreadable; individual bad files are logged
// and skipped without failing the load.
func (s *Store) loadCourses(now time.Time) ([]Course, bool) {
	dir := s.coursesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("Course directory unreadable, serving empty corpus")
		return nil, false
	}

	reg := buildRegistry(s.TeacherProfiles())

	courses := make([]Course, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		raw, readErr := os.ReadFile(filepath.Join(dir, entry.Name()))
		if readErr != nil {
			logger.Warn().Err(readErr).Str("file", entry.Name()).Msg("Skipping unreadable course file")
			continue
		}

		var record rawCourse
		if err := json.Unmarshal(raw, &record); err != nil {
			logger.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping malformed course file")
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		courses = append(courses, normalizeCourse(id, record, reg, now))
	}

	sort.SliceStable(courses, func(i, j int) bool {
		return rankedBefore(courses[i].Rank, courses[i].Name, courses[j].Rank, courses[j].Name)
	})

	return courses, true
}

// normalizeCourse turns a raw course file into the canonical Course record:
// instructor key derived through the slug normalizer (with the unknown-teacher
// sentinel), display name and avatar resolved through the registry chains,
// category case-folded, and every optional field filled from the defaults
// table.
func normalizeCourse(id string, raw rawCourse, reg *registry, now time.Time) Course {
	key := slug.Normalize(firstNonEmpty(raw.TeacherID, raw.InstructorName))
	if key == "" {
		key = UnknownTeacherKey
	}

	profile := reg.lookup(key)
	displayName := resolveDisplayName(profile, raw, key)
	teacherImage := resolveTeacherImage(profile, raw)

	rating := courseDefaults.Rating
	if raw.Rating != nil {
		rating = *raw.Rating
	}

	return Course{
		ID:                    id,
		Name:                  raw.CourseName,
		Category:              strings.ToLower(raw.CourseCategory),
		ViewType:              stringOr(raw.ViewType, courseDefaults.ViewType),
		Description:           raw.Des,
		Copyright:             raw.Copyright,
		TeacherID:             key,
		InstructorSlug:        key,
		InstructorName:        key,
		InstructorDisplayName: displayName,
		TeacherImage:          teacherImage,
		InstructorImage:       teacherImage,
		Image:                 raw.ImageOfCourse,
		Audio:                 stringOr(raw.Audio, courseDefaults.Audio),
		Cost:                  raw.Cost,
		VideoType:             raw.VideoType,
		RedirectURL:           raw.RedirectURL,
		RedirectSyllabus:      emptyIfNil(raw.RedirectSyllabus),
		Subsections:           raw.Subsection,
		Videos:                emptyIfNil(raw.Videos),
		Rank:                  rankOr(raw.Rank, courseDefaults.Rank),
		Homepage:              raw.Homepage,
		Syllabus:              emptyIfNil(raw.Syllabus),
		WhatYouWillLearn:      emptyIfNil(raw.WhatYouWillLearn),
		Requirements:          emptyIfNil(raw.Requirements),
		Rating:                rating,
		Duration:              stringOr(raw.Duration, courseDefaults.Duration),
		Level:                 stringOr(raw.Level, courseDefaults.Level),
		Language:              stringOr(raw.Language, courseDefaults.Language),
		StudentsEnrolled:      raw.StudentsEnrolled,
		LastUpdated:           stringOr(raw.LastUpdated, defaultLastUpdated(now)),
		Features:              emptyIfNil(raw.Features),
	}
}

func rankOr(value, fallback Rank) Rank {
	if value != "" {
		return value
	}
	return fallback
}

// emptyIfNil keeps JSON output rendering [] rather than null for list fields.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
