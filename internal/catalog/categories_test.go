package catalog

import "testing"

func TestCategoriesCountCoursesCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/category/webdev.json", `{"category":"Web-Development","des":"build sites","imageofcategory":"/img/web.png"}`)
	for i, name := range []string{"one", "two", "three"} {
		writeDataFile(t, dir, "data/courses/"+name+".json",
			`{"courseName":"Course `+string(rune('A'+i))+`","coursecategory":"web-development","des":"","imageofcourse":"","videoType":"hls","videos":[]}`)
	}
	writeDataFile(t, dir, "data/courses/other.json", `{"courseName":"Other","coursecategory":"design","des":"","imageofcourse":"","videoType":"hls","videos":[]}`)

	store := NewStore(dir)
	categories := store.Categories()
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}
	if categories[0].TotalCourses != 3 {
		t.Errorf("expected 3 matching courses, got %d", categories[0].TotalCourses)
	}
	if categories[0].Rank != RankMid {
		t.Errorf("expected default rank mid, got %q", categories[0].Rank)
	}
}

func TestCategoriesSkipEmptyAndMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/category/empty.json", "   ")
	writeDataFile(t, dir, "data/category/bad.json", `{"category": `)
	writeDataFile(t, dir, "data/category/good.json", `{"category":"DevOps","des":"","imageofcategory":""}`)
	writeDataFile(t, dir, "data/courses/.keep", "")

	store := NewStore(dir)
	categories := store.Categories()
	if len(categories) != 1 || categories[0].Name != "DevOps" {
		t.Fatalf("expected only the good category to survive, got %+v", categories)
	}
}

func TestCategoriesSortedByRankThenName(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/courses/.keep", "")
	writeDataFile(t, dir, "data/category/z.json", `{"category":"Zeta","des":"","imageofcategory":"","rank":"high"}`)
	writeDataFile(t, dir, "data/category/a.json", `{"category":"Alpha","des":"","imageofcategory":"","rank":"low"}`)
	writeDataFile(t, dir, "data/category/m.json", `{"category":"Mu","des":"","imageofcategory":""}`)

	store := NewStore(dir)
	categories := store.Categories()
	got := make([]string, len(categories))
	for i, c := range categories {
		got[i] = c.Name
	}

	want := []string{"Zeta", "Mu", "Alpha"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sort order mismatch: got %v, want %v", got, want)
		}
	}
}

func TestCategoriesByRank(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/courses/.keep", "")
	writeDataFile(t, dir, "data/category/a.json", `{"category":"Alpha","des":"","imageofcategory":"","rank":"high"}`)
	writeDataFile(t, dir, "data/category/b.json", `{"category":"Beta","des":"","imageofcategory":"","rank":"low"}`)

	store := NewStore(dir)
	high := store.CategoriesByRank(RankHigh)
	if len(high) != 1 || high[0].Name != "Alpha" {
		t.Errorf("unexpected high-rank categories: %+v", high)
	}
}
