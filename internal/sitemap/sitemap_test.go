package sitemap

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/unlockedcoding/catalog/internal/catalog"
)

func writeFile(t *testing.T, base string, rel string, content string) {
	t.Helper()
	path := filepath.Join(base, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func seedStore(t *testing.T) *catalog.Store {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "data/category/programming.json",
		`{"category":"Programming","des":"Code","imageofcategory":"/img/p.png"}`)
	writeFile(t, dir, "data/teachers/jane.json",
		`{"id":"jane-doe","name":"Jane Doe","image":"/img/jane.png"}`)
	writeFile(t, dir, "data/courses/go-basics.json", `{
		"courseName": "Go Basics",
		"coursecategory": "Programming",
		"des": "Learn Go",
		"teacherId": "jane-doe",
		"imageofcourse": "/img/go.png",
		"videoType": "youtube",
		"videos": []
	}`)
	writeFile(t, dir, "data/blog/install-node.json",
		`{"id":"install-node","name":"Install Node"}`)
	return catalog.NewStore(dir)
}

func TestBuildStaticPagesFirst(t *testing.T) {
	urls := Build(seedStore(t), "https://unlockedcoding.com/", time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))

	if len(urls) == 0 {
		t.Fatal("expected a non-empty URL set")
	}
	if urls[0].Loc != "https://unlockedcoding.com" {
		t.Errorf("home page must come first, got %q", urls[0].Loc)
	}
	if urls[0].Priority != "1.0" {
		t.Errorf("home page priority must be 1.0, got %q", urls[0].Priority)
	}
	if urls[0].LastMod != "2026-08-29" {
		t.Errorf("unexpected lastmod %q", urls[0].LastMod)
	}
}

func TestBuildDerivedURLsUseSlugs(t *testing.T) {
	urls := Build(seedStore(t), "https://unlockedcoding.com", time.Now())

	locs := make(map[string]bool, len(urls))
	for _, u := range urls {
		locs[u.Loc] = true
	}

	for _, want := range []string{
		"https://unlockedcoding.com/categories/programming",
		"https://unlockedcoding.com/categories/programming/courses/go-basics",
		"https://unlockedcoding.com/teachers/jane-doe",
		"https://unlockedcoding.com/blog/install-node",
	} {
		if !locs[want] {
			t.Errorf("missing URL %q", want)
		}
	}
}

func TestWriteProducesValidXML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "sitemap.xml")
	urls := []URL{{Loc: "https://unlockedcoding.com", Priority: "1.0"}}

	if err := Write(out, urls); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !strings.HasPrefix(string(raw), xml.Header) {
		t.Error("output must start with the XML header")
	}
	if !strings.Contains(string(raw), xmlns) {
		t.Error("output must declare the sitemap namespace")
	}

	var parsed urlSet
	if err := xml.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if len(parsed.URLs) != 1 || parsed.URLs[0].Loc != "https://unlockedcoding.com" {
		t.Errorf("unexpected parsed content: %+v", parsed.URLs)
	}
}
