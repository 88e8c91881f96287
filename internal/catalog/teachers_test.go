package catalog

import "testing"

func TestTeacherProfilesDeduplicatesById(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/teachers/a.json", `{"id":"Jane Doe","bio":"first"}`)
	writeDataFile(t, dir, "data/teachers/b.json", `{"name":"jane-doe","bio":"second"}`)

	store := NewStore(dir)
	profiles := store.TeacherProfiles()
	if len(profiles) != 1 {
		t.Fatalf("expected duplicate id to be dropped, got %d profiles", len(profiles))
	}
	if profiles[0].Bio != "first" {
		t.Errorf("first occurrence must win, got bio %q", profiles[0].Bio)
	}
}

func TestTeacherProfilesFillsIdentityFields(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/teachers/only-name.json", `{"name":"Hitesh Choudhary"}`)

	store := NewStore(dir)
	profiles := store.TeacherProfiles()
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}

	p := profiles[0]
	if p.ID != "hitesh-choudhary" {
		t.Errorf("expected normalized id, got %q", p.ID)
	}
	if p.DisplayName != "Hitesh Choudhary" || p.Name != "Hitesh Choudhary" {
		t.Errorf("identity fields not filled: name=%q displayName=%q", p.Name, p.DisplayName)
	}
}

func TestTeacherProfilesSkipsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/teachers/a.json", `{"id":"alpha"}`)
	writeDataFile(t, dir, "data/teachers/bad.json", `{"id": "broken",`+"\n"+`"name"`)
	writeDataFile(t, dir, "data/teachers/b.json", `{"id":"beta"}`)

	store := NewStore(dir)
	profiles := store.TeacherProfiles()
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles with the malformed file skipped, got %d", len(profiles))
	}
}

func TestTeacherProfilesArrayAndFragmentFiles(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/teachers/many.json", `[{"id":"one"},{"id":"two"}]`)
	writeDataFile(t, dir, "data/teachers/loose.json", `{"id":"three"},`)

	store := NewStore(dir)
	profiles := store.TeacherProfiles()
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles across array and fragment files, got %d", len(profiles))
	}
}

func TestTeacherProfilesLegacyFallback(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/teachers.json", `[{"id":"legacy","name":"Legacy Teacher"}]`)

	store := NewStore(dir)
	profiles := store.TeacherProfiles()
	if len(profiles) != 1 || profiles[0].ID != "legacy" {
		t.Fatalf("expected legacy combined file fallback, got %+v", profiles)
	}
}

func TestBuildRegistryAliases(t *testing.T) {
	profiles := []TeacherProfile{{
		ID:          "jane-doe",
		Name:        "Jane Doe",
		DisplayName: "Jane D.",
	}}

	reg := buildRegistry(profiles)
	for _, alias := range []string{"jane-doe", "jane-d"} {
		got := reg.lookup(alias)
		if got == nil {
			t.Fatalf("alias %q not registered", alias)
		}
		if got != reg.lookup("jane-doe") {
			t.Errorf("alias %q must point at the same owned record", alias)
		}
	}
	if reg.lookup("someone-else") != nil {
		t.Error("unknown alias must resolve to nil")
	}
}

func TestTeacherDetailsLookup(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/teachers/jane.json", `{"id":"jane-doe","name":"Jane Doe","displayName":"Jane"}`)

	store := NewStore(dir)
	if p := store.TeacherDetails("jane-doe"); p == nil || p.ID != "jane-doe" {
		t.Errorf("exact id lookup failed: %+v", p)
	}
	if p := store.TeacherDetails("JANE DOE"); p == nil {
		t.Error("name lookup must be case-insensitive")
	}
	if p := store.TeacherDetails("jane doe teaches go"); p == nil {
		t.Error("substring fallback lookup failed")
	}
	if p := store.TeacherDetails("nobody-here-at-all"); p != nil {
		t.Errorf("expected nil for unknown teacher, got %+v", p)
	}
}
