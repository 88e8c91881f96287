package catalog

import "testing"

func TestBlogPostsDeduplicateAndNormalize(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/blog/a.json", `{"id":"install-node","name":"Install Node"}`)
	writeDataFile(t, dir, "data/blog/b.json", `{"id":"install-node","name":"Duplicate"}`)
	writeDataFile(t, dir, "data/blog/c.json", `[{"id":"vscode-setup","name":"VS Code Setup","tags":["editor"]}]`)

	store := NewStore(dir)
	posts := store.BlogPosts()
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts after dedupe, got %d", len(posts))
	}

	for _, post := range posts {
		if post.ID == "install-node" && post.Name != "Install Node" {
			t.Errorf("first occurrence must win, got %q", post.Name)
		}
		if post.Steps == nil || post.FAQs == nil {
			t.Errorf("list fields must be normalized to empty slices: %+v", post)
		}
	}
}

func TestBlogPostsLegacyFallback(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/blogs.json", `[{"id":"legacy-post","name":"Legacy"}]`)

	store := NewStore(dir)
	posts := store.BlogPosts()
	if len(posts) != 1 || posts[0].ID != "legacy-post" {
		t.Fatalf("expected legacy combined file fallback, got %+v", posts)
	}
}

func TestBlogPostByID(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "data/blog/a.json", `{"id":"install-node","name":"Install Node"}`)

	store := NewStore(dir)
	if post := store.BlogPostByID("install-node"); post == nil || post.Name != "Install Node" {
		t.Errorf("lookup failed: %+v", post)
	}
	if post := store.BlogPostByID("missing"); post != nil {
		t.Errorf("expected nil for unknown id, got %+v", post)
	}
}
