package catalog

import (
	"sort"
	"strings"

	"github.com/unlockedcoding/catalog/internal/pkg/slug"
)

// defaultSimilarLimit bounds SimilarCourses when the caller passes no limit.
const defaultSimilarLimit = 4

// maxUniqueTeachers caps the teacher summary list on the homepage.
const maxUniqueTeachers = 8

// CoursesByCategory returns every course whose category matches name,
// case-insensitively.
func (s *Store) CoursesByCategory(name string) []Course {
	needle := strings.ToLower(name)
	var out []Course
	for _, course := range s.Courses() {
		if strings.ToLower(course.Category) == needle {
			out = append(out, course)
		}
	}
	return out
}

// CourseByName finds one course by category (case-insensitive) and exact
// course name. Returns nil when absent.
func (s *Store) CourseByName(category, name string) *Course {
	needle := strings.ToLower(category)
	for _, course := range s.Courses() {
		if strings.ToLower(course.Category) == needle && course.Name == name {
			c := course
			return &c
		}
	}
	return nil
}

// CourseByTeacherAndName finds one course by normalized instructor key and
// exact course name. Returns nil when absent.
func (s *Store) CourseByTeacherAndName(teacherSlug, name string) *Course {
	needle := slug.Normalize(teacherSlug)
	for _, course := range s.Courses() {
		key := slug.Normalize(firstNonEmpty(course.InstructorSlug, course.TeacherID, course.InstructorName))
		if key == needle && course.Name == name {
			c := course
			return &c
		}
	}
	return nil
}

// matchesSubsection reports whether the course lists the named subsection,
// case-insensitively.
func matchesSubsection(course Course, name string) bool {
	needle := strings.ToLower(name)
	for _, sub := range course.Subsections {
		if strings.ToLower(sub) == needle {
			return true
		}
	}
	return false
}

// CoursesBySubsection returns every course carrying the named subsection.
func (s *Store) CoursesBySubsection(name string) []Course {
	var out []Course
	for _, course := range s.Courses() {
		if matchesSubsection(course, name) {
			out = append(out, course)
		}
	}
	return out
}

// Subsections returns the sorted set of distinct subsection names across the
// corpus, lower-cased.
func (s *Store) Subsections() []string {
	set := make(map[string]bool)
	for _, course := range s.Courses() {
		for _, sub := range course.Subsections {
			set[strings.ToLower(sub)] = true
		}
	}

	out := make([]string, 0, len(set))
	for sub := range set {
		out = append(out, sub)
	}
	sort.Strings(out)
	return out
}

// HomepageCourses returns the courses flagged for the homepage carousel.
func (s *Store) HomepageCourses() []Course {
	var out []Course
	for _, course := range s.Courses() {
		if course.Homepage {
			out = append(out, course)
		}
	}
	return out
}

// LightCourses projects the whole corpus into the listing-page shape.
func (s *Store) LightCourses() []LightCourse {
	courses := s.Courses()
	out := make([]LightCourse, len(courses))
	for i, course := range courses {
		out[i] = course.Light()
	}
	return out
}

// LightCoursesByCategory projects one category's courses.
func (s *Store) LightCoursesByCategory(name string) []LightCourse {
	courses := s.CoursesByCategory(name)
	out := make([]LightCourse, len(courses))
	for i, course := range courses {
		out[i] = course.Light()
	}
	return out
}

// LightCoursesBySubsection projects one subsection's courses.
func (s *Store) LightCoursesBySubsection(name string) []LightCourse {
	courses := s.CoursesBySubsection(name)
	out := make([]LightCourse, len(courses))
	for i, course := range courses {
		out[i] = course.Light()
	}
	return out
}

// SimilarCourses returns up to limit courses sharing the given category,
// excluding the named course, ordered by rank tier then rating average
// descending. A non-positive limit takes the default.
func (s *Store) SimilarCourses(category, excludeName string, limit int) []LightCourse {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	needle := strings.ToLower(category)
	var similar []LightCourse
	for _, course := range s.LightCourses() {
		if strings.ToLower(course.Category) == needle && course.Name != excludeName {
			similar = append(similar, course)
		}
	}

	sort.SliceStable(similar, func(i, j int) bool {
		if similar[i].Rank.Order() != similar[j].Rank.Order() {
			return similar[i].Rank.Order() < similar[j].Rank.Order()
		}
		return similar[i].Rating.Average > similar[j].Rating.Average
	})

	if len(similar) > limit {
		similar = similar[:limit]
	}
	return similar
}

// UniqueTeachers folds the corpus into one summary per instructor key,
// accumulating the course count and the set of distinct categories, ordered
// by course count descending and capped at the homepage limit.
func (s *Store) UniqueTeachers() []TeacherSummary {
	byKey := make(map[string]*TeacherSummary)
	var order []string

	for _, course := range s.Courses() {
		key := firstNonEmpty(course.TeacherID, UnknownTeacherKey)

		summary, seen := byKey[key]
		if !seen {
			summary = &TeacherSummary{
				Name:       key,
				Image:      course.TeacherImage,
				Categories: []string{},
			}
			byKey[key] = summary
			order = append(order, key)
		}

		summary.CourseCount++
		if !containsString(summary.Categories, course.Category) {
			summary.Categories = append(summary.Categories, course.Category)
		}
	}

	teachers := make([]TeacherSummary, 0, len(order))
	for _, key := range order {
		teachers = append(teachers, *byKey[key])
	}

	sort.SliceStable(teachers, func(i, j int) bool {
		return teachers[i].CourseCount > teachers[j].CourseCount
	})

	if len(teachers) > maxUniqueTeachers {
		teachers = teachers[:maxUniqueTeachers]
	}
	return teachers
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
