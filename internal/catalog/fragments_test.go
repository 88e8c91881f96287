package catalog

import "testing"

type fragmentRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestParseFragmentsArray(t *testing.T) {
	records := parseFragments[fragmentRecord]([]byte(`[{"id":"a"},{"id":"b"}]`))
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "a" || records[1].ID != "b" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestParseFragmentsSingleObject(t *testing.T) {
	records := parseFragments[fragmentRecord]([]byte(`{"id":"solo","name":"Solo"}`))
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Name != "Solo" {
		t.Errorf("expected name 'Solo', got %q", records[0].Name)
	}
}

func TestParseFragmentsTrailingComma(t *testing.T) {
	records := parseFragments[fragmentRecord]([]byte(`{"id":"x"},`))
	if len(records) != 1 || records[0].ID != "x" {
		t.Fatalf("trailing comma not recovered, got %+v", records)
	}
}

func TestParseFragmentsMissingBrackets(t *testing.T) {
	records := parseFragments[fragmentRecord]([]byte(`{"id":"a"},{"id":"b"},`))
	if len(records) != 2 {
		t.Fatalf("expected 2 records from bracketless list, got %d", len(records))
	}
}

func TestParseFragmentsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "not json", "null", "42"} {
		if records := parseFragments[fragmentRecord]([]byte(in)); len(records) != 0 {
			t.Errorf("parseFragments(%q) = %+v, want empty", in, records)
		}
	}
}

func TestParseFragmentsLoneComma(t *testing.T) {
	// Stripping the trailing comma from these leaves nothing to decode;
	// they must yield empty, not panic.
	for _, in := range []string{",", " , ", ",\n", "\t,\t"} {
		if records := parseFragments[fragmentRecord]([]byte(in)); len(records) != 0 {
			t.Errorf("parseFragments(%q) = %+v, want empty", in, records)
		}
	}
}

func TestTeacherFileLoneCommaSkipped(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/teachers/bad.json", ",")
	writeDataFile(t, dir, "data/teachers/jane.json", `{"id":"jane-doe","name":"Jane Doe"}`)

	store := NewStore(dir)
	profiles := store.TeacherProfiles()
	if len(profiles) != 1 || profiles[0].ID != "jane-doe" {
		t.Fatalf("expected the valid profile to survive a lone-comma file, got %+v", profiles)
	}
}
