package catalog

import (
	"strings"
	"testing"
)

func seedQueryData(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	writeDataFile(t, dir, "data/teachers/jane.json", `{"id":"jane-doe","name":"Jane Doe","image":"/img/jane.png"}`)

	writeDataFile(t, dir, "data/courses/go-basics.json", `{
		"courseName":"Go Basics","coursecategory":"Programming","des":"","imageofcourse":"",
		"teacherId":"jane-doe","videoType":"youtube","videos":[{"title":"a","url":"u"}],
		"rank":"high","homepage":true,"subsection":"backend",
		"rating":{"average":4.9,"count":10,"breakdown":{"1":0,"2":0,"3":0,"4":1,"5":9}}
	}`)
	writeDataFile(t, dir, "data/courses/go-advanced.json", `{
		"courseName":"Go Advanced","coursecategory":"programming","des":"","imageofcourse":"",
		"teacherId":"jane-doe","videoType":"hls","videos":[{"title":"a","url":"u"},{"title":"b","url":"u"}],
		"rank":"mid","subsection":["backend","systems"],
		"rating":{"average":4.2,"count":5,"breakdown":{"1":0,"2":0,"3":1,"4":2,"5":2}}
	}`)
	writeDataFile(t, dir, "data/courses/rust-intro.json", `{
		"courseName":"Rust Intro","coursecategory":"programming","des":"","imageofcourse":"",
		"instructorname":"Sam_Smith","videoType":"redirect","redirecturl":"https://example.com",
		"videos":[],"rank":"mid",
		"rating":{"average":4.7,"count":3,"breakdown":{"1":0,"2":0,"3":0,"4":1,"5":2}}
	}`)
	writeDataFile(t, dir, "data/courses/figma.json", `{
		"courseName":"Figma Fast","coursecategory":"Design","des":"","imageofcourse":"",
		"instructorname":"Sam_Smith","videoType":"wistia","videos":[]
	}`)

	return NewStore(dir)
}

func TestCoursesByCategory(t *testing.T) {
	store := seedQueryData(t)
	courses := store.CoursesByCategory("PROGRAMMING")
	if len(courses) != 3 {
		t.Fatalf("expected 3 programming courses, got %d", len(courses))
	}
	for _, c := range courses {
		if c.Category != "programming" {
			t.Errorf("unexpected category %q", c.Category)
		}
	}
}

func TestCourseByName(t *testing.T) {
	store := seedQueryData(t)
	if c := store.CourseByName("Programming", "Go Basics"); c == nil || c.ID != "go-basics" {
		t.Fatalf("lookup failed: %+v", c)
	}
	if c := store.CourseByName("programming", "No Such Course"); c != nil {
		t.Errorf("expected nil for unknown course, got %+v", c)
	}
}

func TestCourseByTeacherAndName(t *testing.T) {
	store := seedQueryData(t)
	c := store.CourseByTeacherAndName("Jane Doe", "Go Basics")
	if c == nil {
		t.Fatal("expected course for display-name-shaped teacher slug")
	}
	if c.TeacherID != "jane-doe" {
		t.Errorf("expected resolved instructor key 'jane-doe', got %q", c.TeacherID)
	}
	if c.InstructorDisplayName != "Jane Doe" {
		t.Errorf("expected display name 'Jane Doe', got %q", c.InstructorDisplayName)
	}
}

func TestCoursesBySubsection(t *testing.T) {
	store := seedQueryData(t)

	backend := store.CoursesBySubsection("Backend")
	if len(backend) != 2 {
		t.Fatalf("expected 2 backend courses (string and list forms), got %d", len(backend))
	}

	systems := store.CoursesBySubsection("systems")
	if len(systems) != 1 || systems[0].Name != "Go Advanced" {
		t.Fatalf("unexpected systems courses: %+v", systems)
	}
}

func TestSubsections(t *testing.T) {
	store := seedQueryData(t)
	subs := store.Subsections()
	want := []string{"backend", "systems"}
	if len(subs) != len(want) {
		t.Fatalf("expected %v, got %v", want, subs)
	}
	for i := range want {
		if subs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, subs)
		}
	}
}

func TestHomepageCourses(t *testing.T) {
	store := seedQueryData(t)
	homepage := store.HomepageCourses()
	if len(homepage) != 1 || homepage[0].Name != "Go Basics" {
		t.Fatalf("unexpected homepage courses: %+v", homepage)
	}
}

func TestLightCoursesKeepOnlyVideoCount(t *testing.T) {
	store := seedQueryData(t)
	for _, light := range store.LightCourses() {
		if light.Name == "Go Advanced" && light.Videos.Length != 2 {
			t.Errorf("expected video count 2, got %d", light.Videos.Length)
		}
	}
}

func TestSimilarCourses(t *testing.T) {
	store := seedQueryData(t)
	similar := store.SimilarCourses("programming", "Go Basics", 2)

	if len(similar) > 2 {
		t.Fatalf("limit not honored: %d results", len(similar))
	}
	for _, c := range similar {
		if c.Name == "Go Basics" {
			t.Error("excluded course present in similar results")
		}
		if !strings.EqualFold(c.Category, "programming") {
			t.Errorf("similar course from wrong category: %q", c.Category)
		}
	}

	// both remaining programming courses are mid rank; higher rating first
	if len(similar) == 2 && similar[0].Rating.Average < similar[1].Rating.Average {
		t.Errorf("expected rating-descending order, got %v then %v",
			similar[0].Rating.Average, similar[1].Rating.Average)
	}
}

func TestUniqueTeachers(t *testing.T) {
	store := seedQueryData(t)
	teachers := store.UniqueTeachers()
	if len(teachers) != 2 {
		t.Fatalf("expected 2 unique teachers, got %d", len(teachers))
	}

	// jane-doe has 2 courses, sam-smith 2 as well; counts descending
	for i := 1; i < len(teachers); i++ {
		if teachers[i-1].CourseCount < teachers[i].CourseCount {
			t.Error("teachers not sorted by course count descending")
		}
	}

	for _, teacher := range teachers {
		if teacher.Name == "sam-smith" {
			if len(teacher.Categories) != 2 {
				t.Errorf("expected sam-smith in 2 categories, got %v", teacher.Categories)
			}
		}
	}
}

func TestUniqueTeachersCap(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := string(rune('a' + i))
		writeDataFile(t, dir, "data/courses/"+name+".json",
			`{"courseName":"C-`+name+`","coursecategory":"x","des":"","imageofcourse":"","videoType":"hls","videos":[],"teacherId":"teacher-`+name+`"}`)
	}

	store := NewStore(dir)
	teachers := store.UniqueTeachers()
	if len(teachers) != maxUniqueTeachers {
		t.Fatalf("expected teacher list capped at %d, got %d", maxUniqueTeachers, len(teachers))
	}
}

func TestResolverChainPrecedence(t *testing.T) {
	profile := &TeacherProfile{Name: "Registry Name", DisplayName: "Registry Display", Image: "/registry.png"}
	raw := rawCourse{InstructorName: "raw_instructor-name", ImageOfInstructor: "/raw.png"}

	if got := resolveDisplayName(profile, raw, "key"); got != "Registry Name" {
		t.Errorf("registry name must win, got %q", got)
	}

	profile.Name = ""
	if got := resolveDisplayName(profile, raw, "key"); got != "Registry Display" {
		t.Errorf("registry display name is second, got %q", got)
	}

	if got := resolveDisplayName(nil, raw, "key"); got != "raw instructor name" {
		t.Errorf("spaced raw instructor name is third, got %q", got)
	}

	if got := resolveDisplayName(nil, rawCourse{}, "some-key"); got != "some-key" {
		t.Errorf("normalized key is the last fallback, got %q", got)
	}

	if got := resolveTeacherImage(profile, raw); got != "/registry.png" {
		t.Errorf("registry image must win, got %q", got)
	}
	if got := resolveTeacherImage(nil, raw); got != "/raw.png" {
		t.Errorf("course image is the fallback, got %q", got)
	}
	if got := resolveTeacherImage(nil, rawCourse{}); got != "" {
		t.Errorf("expected empty image, got %q", got)
	}
}
