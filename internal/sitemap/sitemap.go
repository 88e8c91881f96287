// Package sitemap renders the public site's URL set from the catalog data.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/unlockedcoding/catalog/internal/catalog"
	"github.com/unlockedcoding/catalog/internal/pkg/slug"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap entry.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// staticPaths are the fixed pages of the site, always present in the sitemap.
var staticPaths = []string{"", "/categories", "/courses", "/teachers", "/blog", "/reviews", "/placements"}

// Build assembles the URL set: static pages first, then category, course,
// teacher and blog pages derived from the catalog. Course URLs use normalized
// slugs so they stay stable across cosmetic renames of the data files.
func Build(store *catalog.Store, baseURL string, now time.Time) []URL {
	base := strings.TrimRight(baseURL, "/")
	lastMod := now.UTC().Format("2006-01-02")

	var urls []URL
	add := func(path, changeFreq, priority string) {
		urls = append(urls, URL{
			Loc:        base + path,
			LastMod:    lastMod,
			ChangeFreq: changeFreq,
			Priority:   priority,
		})
	}

	for _, path := range staticPaths {
		priority := "0.8"
		if path == "" {
			priority = "1.0"
		}
		add(path, "weekly", priority)
	}

	for _, category := range store.Categories() {
		add("/categories/"+slug.Normalize(category.Name), "weekly", "0.8")
	}

	for _, course := range store.Courses() {
		add(fmt.Sprintf("/categories/%s/courses/%s",
			slug.Normalize(course.Category), slug.Normalize(course.Name)), "weekly", "0.7")
	}

	for _, teacher := range store.TeacherProfiles() {
		add("/teachers/"+teacher.ID, "monthly", "0.6")
	}

	for _, post := range store.BlogPosts() {
		add("/blog/"+post.ID, "monthly", "0.6")
	}

	return urls
}

// Write marshals the URL set and writes it to outPath, creating parent
// directories as needed.
func Write(outPath string, urls []URL) error {
	payload, err := xml.MarshalIndent(urlSet{Xmlns: xmlns, URLs: urls}, "", "  ")
	if err != nil {
		return fmt.Errorf("sitemap: marshal: %w", err)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("sitemap: mkdir %s: %w", dir, err)
		}
	}

	content := append([]byte(xml.Header), payload...)
	content = append(content, '\n')
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return fmt.Errorf("sitemap: write %s: %w", outPath, err)
	}

	return nil
}
