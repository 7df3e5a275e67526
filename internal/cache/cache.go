// Package cache memoizes encoded icon results per filesystem path,
// invalidating on TTL expiry and on any change to the file's observed
// (size, mtime) pair. Keys are raw path strings: two spellings of the
// same file are distinct entries on purpose, since canonicalization
// would cost a filesystem round trip per lookup.
package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/muandane/special-stack/icond/internal/probe"
)

// IconCache is a bounded, freshness-aware in-memory cache. Construct
// one instance at startup and inject it; the zero value is not usable.
type IconCache struct {
	mu         sync.Mutex
	entries    map[string]Entry
	maxEntries int
	ttl        time.Duration
}

func New(maxEntries int, ttl time.Duration) *IconCache {
	return &IconCache{
		entries:    make(map[string]Entry),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

// Get returns the entry for a path only if it is still fresh: younger
// than the TTL and with the file's current (size, mtime) matching the
// observed pair. A stale entry is treated as absent but not deleted
// here; cleanup happens lazily on Set.
func (c *IconCache) Get(path string) (Entry, bool) {
	c.mu.Lock()
	entry, ok := c.entries[path]
	c.mu.Unlock()
	if !ok {
		return Entry{}, false
	}
	if !c.isValid(path, entry) {
		return Entry{}, false
	}
	return entry, true
}

// Set records an encoded result for a path. File metadata is re-probed
// here, not reused from extraction time, so the freshness fields always
// reflect the most recent observation. When the cache is at capacity,
// eviction runs before the insert.
func (c *IconCache) Set(path, encodedImage, format, fingerprint string) error {
	st, err := probe.Stat(path)
	if err != nil {
		return err
	}
	if fingerprint == "" {
		fingerprint = probe.Fingerprint(path, st)
	}

	entry := Entry{
		EncodedImage: encodedImage,
		Format:       format,
		Fingerprint:  fingerprint,
		CachedAt:     time.Now(),
		FileSize:     st.Size,
		ModTime:      st.ModTime,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[path] = entry
	return nil
}

// Clear unconditionally empties the cache.
func (c *IconCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Entry)
}

// GetStats reports entry count and configuration.
func (c *IconCache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		TotalEntries: len(c.entries),
		MaxEntries:   c.maxEntries,
		TTLSeconds:   int64(c.ttl / time.Second),
	}
}

// evictLocked runs under c.mu. First pass drops every expired entry;
// if the cache is still at capacity, the oldest entries by insertion
// time go next, down to half of maxEntries so saturation does not cost
// an eviction on every subsequent insert.
func (c *IconCache) evictLocked() {
	now := time.Now()
	for path, entry := range c.entries {
		if now.Sub(entry.CachedAt) > c.ttl {
			delete(c.entries, path)
		}
	}

	if len(c.entries) < c.maxEntries {
		return
	}

	type aged struct {
		path     string
		cachedAt time.Time
	}
	byAge := make([]aged, 0, len(c.entries))
	for path, entry := range c.entries {
		byAge = append(byAge, aged{path, entry.CachedAt})
	}
	sort.Slice(byAge, func(i, j int) bool {
		return byAge[i].cachedAt.Before(byAge[j].cachedAt)
	})

	toRemove := len(c.entries) - c.maxEntries/2
	for _, a := range byAge[:toRemove] {
		delete(c.entries, a.path)
	}
}

// isValid checks the freshness invariant without holding the lock; the
// entry is a copy and the stat call must not serialize other readers.
func (c *IconCache) isValid(path string, entry Entry) bool {
	if time.Since(entry.CachedAt) > c.ttl {
		return false
	}
	st, err := probe.Stat(path)
	if err != nil {
		// File gone or unreadable: the cached icon no longer
		// reflects anything on disk.
		return false
	}
	return st.Size == entry.FileSize && st.ModTime.Equal(entry.ModTime)
}
