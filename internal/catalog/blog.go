package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/unlockedcoding/catalog/internal/pkg/logger"
)

// BlogPosts loads every blog entry from the per-file blog directory with the
// same fragment recovery and first-wins id deduplication as teacher profiles,
// falling back to the legacy combined blogs.json when the directory yields
// nothing. List fields are normalized to empty slices.
func (s *Store) BlogPosts() []BlogPost {
	dir := filepath.Join(s.baseDir, "data", "blog")
	entries, err := os.ReadDir(dir)
	if err == nil {
		posts := make([]BlogPost, 0, len(entries))
		seen := make(map[string]bool, len(entries))

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
				continue
			}

			raw, readErr := os.ReadFile(filepath.Join(dir, entry.Name()))
			if readErr != nil {
				logger.Warn().Err(readErr).Str("file", entry.Name()).Msg("Skipping unreadable blog file")
				continue
			}

			for _, post := range parseFragments[BlogPost](raw) {
				if post.ID == "" || seen[post.ID] {
					continue
				}
				posts = append(posts, normalizeBlogPost(post))
				seen[post.ID] = true
			}
		}

		if len(posts) > 0 {
			return posts
		}
	}

	return s.legacyBlogPosts()
}

func normalizeBlogPost(post BlogPost) BlogPost {
	post.Requirements = emptyIfNil(post.Requirements)
	post.Steps = emptyIfNil(post.Steps)
	post.Links = emptyIfNil(post.Links)
	post.Tags = emptyIfNil(post.Tags)
	post.Benefits = emptyIfNil(post.Benefits)
	post.UseCases = emptyIfNil(post.UseCases)
	post.Troubleshooting = emptyIfNil(post.Troubleshooting)
	post.FAQs = emptyIfNil(post.FAQs)
	post.RelatedResources = emptyIfNil(post.RelatedResources)
	return post
}

func (s *Store) legacyBlogPosts() []BlogPost {
	path := filepath.Join(s.baseDir, "data", "blogs.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var posts []BlogPost
	if err := json.Unmarshal(raw, &posts); err != nil {
		logger.Warn().Err(err).Str("file", "blogs.json").Msg("Skipping malformed legacy blogs file")
		return nil
	}
	return posts
}

// BlogPostByID finds one blog post by id. Returns nil when absent.
func (s *Store) BlogPostByID(id string) *BlogPost {
	for _, post := range s.BlogPosts() {
		if post.ID == id {
			p := post
			return &p
		}
	}
	return nil
}
