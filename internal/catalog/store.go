// Package catalog is the data layer of the course site: it loads course,
// category, teacher, and blog records from per-file JSON sources on disk,
// normalizes them into typed view models, and answers read queries over a
// time-boxed in-memory corpus cache.
//
// The layer never fails a caller: missing directories read as empty
// collections, malformed files are logged and skipped, and absent optional
// fields take declared defaults. Page generation always receives a valid,
// possibly empty, value.
package catalog

import (
	"sync"
	"time"
)

// corpusTTL is the freshness window of the course cache. There is no
// invalidation hook; staleness is purely elapsed-time based.
const corpusTTL = 5 * time.Minute

// Store owns the course corpus cache and exposes all catalog reads. The cache
// holds exactly two states: fresh (age below the window) and stale or empty.
// Any read of a stale cache performs a full reload under the store lock, so
// concurrent callers never duplicate the disk work.
type Store struct {
	baseDir string
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	courses  []Course
	loadedAt time.Time
}

// NewStore creates a Store rooted at baseDir. Data files are expected under
// baseDir/data with legacy top-level fallbacks for courses and categories.
func NewStore(baseDir string) *Store {
	if baseDir == "" {
		baseDir = "."
	}
	return &Store{
		baseDir: baseDir,
		ttl:     corpusTTL,
		now:     time.Now,
	}
}

// Courses returns the full normalized course corpus, sorted by rank tier then
// name. A result produced within the last five minutes is returned as-is;
// otherwise the corpus is reloaded from disk. Callers must treat the returned
// slice as read-only.
func (s *Store) Courses() []Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.courses != nil && now.Sub(s.loadedAt) < s.ttl {
		return s.courses
	}

	courses, ok := s.loadCourses(now)
	if !ok {
		// The source directory was unreadable. Serve empty but leave the
		// cache untouched so the next read retries immediately.
		return []Course{}
	}

	s.courses = courses
	s.loadedAt = now
	return s.courses
}

// rankedBefore implements the shared listing order: high before mid/medium
// before low, ties broken lexicographically on name.
func rankedBefore(aRank Rank, aName string, bRank Rank, bName string) bool {
	if aRank.Order() != bRank.Order() {
		return aRank.Order() < bRank.Order()
	}
	return aName < bName
}
