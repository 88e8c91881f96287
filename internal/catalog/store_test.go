package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeDataFile creates a file under base, making parent directories as needed.
func writeDataFile(t *testing.T, base string, rel string, content string) {
	t.Helper()
	path := filepath.Join(base, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestCoursesAppliesDefaultsAndJoinsTeacher(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/teachers/jane.json", `{"id":"jane-doe","name":"Jane Doe","image":"/img/jane.png"}`)
	writeDataFile(t, dir, "data/courses/go-basics.json", `{
		"courseName": "Go Basics",
		"coursecategory": "Programming",
		"des": "Learn Go",
		"teacherId": "Jane Doe",
		"imageofcourse": "/img/go.png",
		"videoType": "youtube",
		"videos": [{"title":"Intro","url":"https://example.com/1"}]
	}`)

	store := NewStore(dir)
	courses := store.Courses()
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}

	c := courses[0]
	if c.ID != "go-basics" {
		t.Errorf("expected id from filename, got %q", c.ID)
	}
	if c.Category != "programming" {
		t.Errorf("expected lower-cased category, got %q", c.Category)
	}
	if c.TeacherID != "jane-doe" {
		t.Errorf("expected normalized instructor key 'jane-doe', got %q", c.TeacherID)
	}
	if c.InstructorDisplayName != "Jane Doe" {
		t.Errorf("expected display name from registry, got %q", c.InstructorDisplayName)
	}
	if c.TeacherImage != "/img/jane.png" {
		t.Errorf("expected teacher image from registry, got %q", c.TeacherImage)
	}

	// defaults
	if c.Rank != RankMid {
		t.Errorf("expected default rank mid, got %q", c.Rank)
	}
	if c.Level != "Beginner" || c.Language != "English" || c.Duration != "N/A" {
		t.Errorf("unexpected defaults: level=%q language=%q duration=%q", c.Level, c.Language, c.Duration)
	}
	if c.Audio != "english" || c.ViewType != "both" {
		t.Errorf("unexpected defaults: audio=%q viewtype=%q", c.Audio, c.ViewType)
	}
	if c.Rating.Average != 4.5 || c.Rating.Count != 0 {
		t.Errorf("unexpected default rating: %+v", c.Rating)
	}
}

func TestCoursesUnknownTeacherSentinel(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/courses/orphan.json", `{
		"courseName": "Orphan",
		"coursecategory": "misc",
		"des": "",
		"imageofcourse": "",
		"videoType": "hls",
		"videos": []
	}`)

	store := NewStore(dir)
	courses := store.Courses()
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	if courses[0].TeacherID != UnknownTeacherKey {
		t.Errorf("expected sentinel %q, got %q", UnknownTeacherKey, courses[0].TeacherID)
	}
	if courses[0].InstructorDisplayName == "" {
		t.Error("display name must never be empty")
	}
}

func TestCoursesSortedByRankThenName(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/courses/b-low.json", `{"courseName":"B Course","coursecategory":"c","des":"","imageofcourse":"","videoType":"hls","videos":[],"rank":"low"}`)
	writeDataFile(t, dir, "data/courses/a-high.json", `{"courseName":"A Course","coursecategory":"c","des":"","imageofcourse":"","videoType":"hls","videos":[],"rank":"high"}`)
	writeDataFile(t, dir, "data/courses/z-medium.json", `{"courseName":"Z Course","coursecategory":"c","des":"","imageofcourse":"","videoType":"hls","videos":[],"rank":"medium"}`)
	writeDataFile(t, dir, "data/courses/m-mid.json", `{"courseName":"M Course","coursecategory":"c","des":"","imageofcourse":"","videoType":"hls","videos":[],"rank":"mid"}`)

	store := NewStore(dir)
	courses := store.Courses()
	got := make([]string, len(courses))
	for i, c := range courses {
		got[i] = c.Name
	}

	want := []string{"A Course", "M Course", "Z Course", "B Course"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sort order mismatch: got %v, want %v", got, want)
		}
	}
}

func TestCoursesSkipsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/courses/good.json", `{"courseName":"Good","coursecategory":"c","des":"","imageofcourse":"","videoType":"hls","videos":[]}`)
	writeDataFile(t, dir, "data/courses/bad.json", `{"courseName": "Broken"`)

	store := NewStore(dir)
	courses := store.Courses()
	if len(courses) != 1 {
		t.Fatalf("expected malformed file to be skipped, got %d courses", len(courses))
	}
	if courses[0].Name != "Good" {
		t.Errorf("unexpected surviving course %q", courses[0].Name)
	}
}

func TestCoursesMissingDirectoryIsEmpty(t *testing.T) {
	store := NewStore(t.TempDir())
	if courses := store.Courses(); len(courses) != 0 {
		t.Errorf("expected empty corpus, got %d courses", len(courses))
	}
}

func TestCoursesCacheFreshness(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/courses/one.json", `{"courseName":"One","coursecategory":"c","des":"","imageofcourse":"","videoType":"hls","videos":[]}`)

	store := NewStore(dir)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	store.now = func() time.Time { return current }

	first := store.Courses()
	current = base.Add(4 * time.Minute)
	second := store.Courses()
	if &first[0] != &second[0] {
		t.Error("calls within the freshness window must return the cached corpus")
	}

	current = base.Add(6 * time.Minute)
	third := store.Courses()
	if len(third) != 1 {
		t.Fatalf("expected reloaded corpus of 1, got %d", len(third))
	}
	if &first[0] == &third[0] {
		t.Error("a call after the window must reload the corpus")
	}
}
