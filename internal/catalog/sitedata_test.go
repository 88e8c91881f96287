package catalog

import "testing"

func TestReviewsMissingFileServesEmpty(t *testing.T) {
	store := NewStore(t.TempDir())
	data := store.Reviews()
	if data.Reviews == nil || len(data.Reviews) != 0 {
		t.Errorf("expected typed empty reviews, got %+v", data)
	}
}

func TestReviewsLoaded(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/reviews.json",
		`{"reviews":[{"id":1,"name":"A","rating":5,"review":"great","course":"Go","location":"Delhi"}],"averageRating":5,"totalReviews":1}`)

	store := NewStore(dir)
	data := store.Reviews()
	if len(data.Reviews) != 1 || data.TotalReviews != 1 {
		t.Fatalf("unexpected reviews payload: %+v", data)
	}
}

func TestPlacementsMissingFileServesEmpty(t *testing.T) {
	store := NewStore(t.TempDir())
	data := store.Placements()
	if data.Placements == nil || len(data.Placements) != 0 {
		t.Errorf("expected typed empty placements, got %+v", data)
	}
	if data.AveragePackage == "" {
		t.Error("average package label must have its zero default")
	}
}

func TestPlacementsMalformedFileServesEmpty(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/placements.json", `{"placements": [`)

	store := NewStore(dir)
	data := store.Placements()
	if len(data.Placements) != 0 {
		t.Errorf("expected empty placements for malformed file, got %+v", data)
	}
}
