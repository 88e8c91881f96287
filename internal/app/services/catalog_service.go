package services

import (
	"fmt"
	"strings"

	"github.com/unlockedcoding/catalog/internal/catalog"
	"github.com/unlockedcoding/catalog/internal/pkg/apperrors"
)

// CatalogService exposes the file-backed catalog to the API layer. List
// operations never fail; lookup operations translate a miss into the matching
// sentinel so the error middleware can map it to a 404.
type CatalogService struct {
	store *catalog.Store
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(store *catalog.Store) *CatalogService {
	return &CatalogService{store: store}
}

// Categories returns every category ordered by rank then name.
func (s *CatalogService) Categories() []catalog.Category {
	return s.store.Categories()
}

// CategoryByName finds one category case-insensitively.
func (s *CatalogService) CategoryByName(name string) (*catalog.Category, error) {
	needle := strings.ToLower(name)
	for _, category := range s.store.Categories() {
		if strings.ToLower(category.Name) == needle {
			c := category
			return &c, nil
		}
	}
	return nil, apperrors.NewCustomError(apperrors.ErrCategoryNotFound, fmt.Sprintf("category %q not found", name))
}

// Courses returns the full normalized corpus.
func (s *CatalogService) Courses() []catalog.Course {
	return s.store.Courses()
}

// LightCourses returns the listing projection of the corpus.
func (s *CatalogService) LightCourses() []catalog.LightCourse {
	return s.store.LightCourses()
}

// CoursesByCategory returns one category's courses in the listing projection.
func (s *CatalogService) CoursesByCategory(category string) []catalog.LightCourse {
	return s.store.LightCoursesByCategory(category)
}

// CoursesBySubsection returns one subsection's courses in the listing projection.
func (s *CatalogService) CoursesBySubsection(subsection string) []catalog.LightCourse {
	return s.store.LightCoursesBySubsection(subsection)
}

// Subsections returns the distinct subsection names across the corpus.
func (s *CatalogService) Subsections() []string {
	return s.store.Subsections()
}

// HomepageCourses returns the courses flagged for the homepage.
func (s *CatalogService) HomepageCourses() []catalog.Course {
	return s.store.HomepageCourses()
}

// CourseByName finds one course by category and exact name.
func (s *CatalogService) CourseByName(category, name string) (*catalog.Course, error) {
	if course := s.store.CourseByName(category, name); course != nil {
		return course, nil
	}
	return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound, fmt.Sprintf("course %q not found in category %q", name, category))
}

// CourseByTeacherAndName finds one course by instructor slug and exact name.
func (s *CatalogService) CourseByTeacherAndName(teacher, name string) (*catalog.Course, error) {
	if course := s.store.CourseByTeacherAndName(teacher, name); course != nil {
		return course, nil
	}
	return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound, fmt.Sprintf("course %q by %q not found", name, teacher))
}

// SimilarCourses returns courses related to one course within its category.
func (s *CatalogService) SimilarCourses(category, excludeName string, limit int) []catalog.LightCourse {
	return s.store.SimilarCourses(category, excludeName, limit)
}

// UniqueTeachers returns the per-instructor corpus fold for the homepage.
func (s *CatalogService) UniqueTeachers() []catalog.TeacherSummary {
	return s.store.UniqueTeachers()
}

// TeacherProfiles returns every instructor profile.
func (s *CatalogService) TeacherProfiles() []catalog.TeacherProfile {
	return s.store.TeacherProfiles()
}

// TeacherByName finds one instructor profile, tolerating slugs and partial names.
func (s *CatalogService) TeacherByName(name string) (*catalog.TeacherProfile, error) {
	if profile := s.store.TeacherDetails(name); profile != nil {
		return profile, nil
	}
	return nil, apperrors.NewCustomError(apperrors.ErrTeacherNotFound, fmt.Sprintf("teacher %q not found", name))
}

// CoursesByTeacher returns the listing projection of one instructor's courses,
// matched on the normalized instructor key.
func (s *CatalogService) CoursesByTeacher(key string) []catalog.LightCourse {
	var out []catalog.LightCourse
	for _, course := range s.store.LightCourses() {
		if course.TeacherID == key {
			out = append(out, course)
		}
	}
	return out
}

// BlogPosts returns every blog post.
func (s *CatalogService) BlogPosts() []catalog.BlogPost {
	return s.store.BlogPosts()
}

// BlogPostByID finds one blog post by its identifier.
func (s *CatalogService) BlogPostByID(id string) (*catalog.BlogPost, error) {
	if post := s.store.BlogPostByID(id); post != nil {
		return post, nil
	}
	return nil, apperrors.NewCustomError(apperrors.ErrBlogPostNotFound, fmt.Sprintf("blog post %q not found", id))
}

// Reviews returns the site-wide review payload.
func (s *CatalogService) Reviews() catalog.ReviewsData {
	return s.store.Reviews()
}

// Placements returns the placement statistics payload.
func (s *CatalogService) Placements() catalog.PlacementsData {
	return s.store.Placements()
}
