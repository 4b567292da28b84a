// Package cache provides a two-layer pass-through cache for raw upstream
// fetches: a TTL memory cache in front of a JSON file cache on disk. Only the
// raw API responses are cached; picks are recomputed on every invocation.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// SnapshotStore caches serialized upstream snapshots keyed by name.
type SnapshotStore struct {
	dir      string
	memory   *gocache.Cache
	mu       sync.Mutex
	hitCount uint64
	missCount uint64
}

// NewSnapshotStore creates a store rooted at dir, creating it if needed.
// ttl bounds how long a memory entry is served before falling back to disk.
func NewSnapshotStore(dir string, ttl time.Duration) (*SnapshotStore, error) {
	if dir == "" {
		dir = "cfb_cache"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &SnapshotStore{
		dir:    dir,
		memory: gocache.New(ttl, ttl*2),
	}, nil
}

// RatingsKey names the cached SP+ snapshot for a season.
func RatingsKey(year int) string {
	return fmt.Sprintf("sp_%d", year)
}

// LinesKey names the cached lines snapshot for a week.
func LinesKey(year int, seasonType string, week int) string {
	return fmt.Sprintf("lines_%d_%s_wk%d", year, seasonType, week)
}

// Get loads a cached snapshot into out. Memory is consulted first, then the
// JSON file on disk; a disk hit repopulates memory. Returns false when the
// snapshot is absent from both layers.
func (s *SnapshotStore) Get(key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, found := s.memory.Get(key); found {
		s.hitCount++
		if data, ok := raw.([]byte); ok {
			return true, json.Unmarshal(data, out)
		}
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			s.missCount++
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache file: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		// A corrupt cache file is treated as a miss; the next Set rewrites it.
		s.missCount++
		return false, nil
	}
	s.hitCount++
	s.memory.SetDefault(key, data)
	return true, nil
}

// Set stores a snapshot in both layers.
func (s *SnapshotStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	s.memory.SetDefault(key, data)
	return nil
}

// Invalidate drops a snapshot from both layers.
func (s *SnapshotStore) Invalidate(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memory.Delete(key)
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	return nil
}

// Stats returns hit/miss counts and the hit ratio.
func (s *SnapshotStore) Stats() (hits, misses uint64, ratio float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hits = s.hitCount
	misses = s.missCount
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

func (s *SnapshotStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
