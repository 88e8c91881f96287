package dto

import "github.com/unlockedcoding/catalog/internal/catalog"

// CategoryDetailResponse pairs a category with its courses.
type CategoryDetailResponse struct {
	Category catalog.Category      `json:"category"`
	Courses  []catalog.LightCourse `json:"courses"`
}

// TeacherDetailResponse pairs an instructor profile with their courses.
type TeacherDetailResponse struct {
	Teacher catalog.TeacherProfile `json:"teacher"`
	Courses []catalog.LightCourse  `json:"courses"`
}
