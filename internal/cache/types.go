package cache

import "time"

// Entry is the internal cache record for one path. It is owned
// exclusively by the cache and only ever replaced whole by a fresh Set,
// never partially updated.
type Entry struct {
	EncodedImage string
	Format       string
	Fingerprint  string
	CachedAt     time.Time
	FileSize     int64
	ModTime      time.Time
}

// Stats is the read-only introspection view of the cache.
type Stats struct {
	TotalEntries int   `json:"total_entries"`
	MaxEntries   int   `json:"max_entries"`
	TTLSeconds   int64 `json:"ttl_seconds"`
}
