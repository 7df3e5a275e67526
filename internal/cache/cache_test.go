package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeCacheFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
	return path
}

func TestSetAndGet(t *testing.T) {
	c := New(10, time.Hour)
	path := writeCacheFile(t, t.TempDir(), "a.txt")

	require.NoError(t, c.Set(path, "encoded", "png", "fp1"))

	entry, ok := c.Get(path)
	require.True(t, ok)
	require.Equal(t, "encoded", entry.EncodedImage)
	require.Equal(t, "png", entry.Format)
	require.Equal(t, "fp1", entry.Fingerprint)
}

func TestGet_UnknownPath(t *testing.T) {
	c := New(10, time.Hour)
	_, ok := c.Get("/no/such/path")
	require.False(t, ok)
}

func TestSet_MissingFile(t *testing.T) {
	c := New(10, time.Hour)
	err := c.Set(filepath.Join(t.TempDir(), "gone.txt"), "encoded", "png", "")
	require.Error(t, err)
	require.Zero(t, c.GetStats().TotalEntries)
}

func TestSet_ComputesFingerprintWhenEmpty(t *testing.T) {
	c := New(10, time.Hour)
	path := writeCacheFile(t, t.TempDir(), "a.txt")

	require.NoError(t, c.Set(path, "encoded", "png", ""))

	entry, ok := c.Get(path)
	require.True(t, ok)
	require.NotEmpty(t, entry.Fingerprint)
}

func TestFreshness_FileMutationInvalidates(t *testing.T) {
	c := New(10, time.Hour)
	path := writeCacheFile(t, t.TempDir(), "a.txt")

	require.NoError(t, c.Set(path, "encoded", "png", "fp"))

	// Change both size and mtime.
	require.NoError(t, os.WriteFile(path, []byte("different content"), 0o644))
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	_, ok := c.Get(path)
	require.False(t, ok)

	// Stale reads do not delete: the entry still counts until Set
	// pressure sweeps it.
	require.Equal(t, 1, c.GetStats().TotalEntries)
}

func TestFreshness_FileDeletionInvalidates(t *testing.T) {
	c := New(10, time.Hour)
	path := writeCacheFile(t, t.TempDir(), "a.txt")

	require.NoError(t, c.Set(path, "encoded", "png", "fp"))
	require.NoError(t, os.Remove(path))

	_, ok := c.Get(path)
	require.False(t, ok)
}

func TestTTL_Expiry(t *testing.T) {
	c := New(10, 50*time.Millisecond)
	path := writeCacheFile(t, t.TempDir(), "a.txt")

	require.NoError(t, c.Set(path, "encoded", "png", "fp"))

	_, ok := c.Get(path)
	require.True(t, ok)

	time.Sleep(80 * time.Millisecond)

	_, ok = c.Get(path)
	require.False(t, ok)
}

func TestCapacity_NeverExceeded(t *testing.T) {
	c := New(10, time.Hour)
	dir := t.TempDir()

	paths := make([]string, 15)
	for i := range paths {
		paths[i] = writeCacheFile(t, dir, fmt.Sprintf("f%02d.txt", i))
		require.NoError(t, c.Set(paths[i], "encoded", "png", "fp"))
		require.LessOrEqual(t, c.GetStats().TotalEntries, 10)
		time.Sleep(time.Millisecond)
	}

	// The five earliest inserts were evicted by the oldest-first pass.
	for _, p := range paths[:5] {
		_, ok := c.Get(p)
		require.False(t, ok, "expected %s evicted", p)
	}
	// The newest entries survived.
	for _, p := range paths[10:] {
		_, ok := c.Get(p)
		require.True(t, ok, "expected %s cached", p)
	}
}

func TestEviction_ExpiredSweepMakesRoom(t *testing.T) {
	c := New(3, 50*time.Millisecond)
	dir := t.TempDir()

	old := []string{
		writeCacheFile(t, dir, "old1.txt"),
		writeCacheFile(t, dir, "old2.txt"),
		writeCacheFile(t, dir, "old3.txt"),
	}
	for _, p := range old {
		require.NoError(t, c.Set(p, "encoded", "png", "fp"))
	}
	require.Equal(t, 3, c.GetStats().TotalEntries)

	time.Sleep(80 * time.Millisecond)

	// Inserting into a full cache of expired entries sweeps them all.
	fresh := writeCacheFile(t, dir, "fresh.txt")
	require.NoError(t, c.Set(fresh, "encoded", "png", "fp"))

	require.Equal(t, 1, c.GetStats().TotalEntries)
	_, ok := c.Get(fresh)
	require.True(t, ok)
}

func TestClear(t *testing.T) {
	c := New(10, time.Hour)
	path := writeCacheFile(t, t.TempDir(), "a.txt")

	require.NoError(t, c.Set(path, "encoded", "png", "fp"))
	c.Clear()

	require.Zero(t, c.GetStats().TotalEntries)
	_, ok := c.Get(path)
	require.False(t, ok)
}

func TestGetStats(t *testing.T) {
	c := New(123, 90*time.Second)
	stats := c.GetStats()
	require.Zero(t, stats.TotalEntries)
	require.Equal(t, 123, stats.MaxEntries)
	require.EqualValues(t, 90, stats.TTLSeconds)
}

func TestConcurrentAccess(t *testing.T) {
	c := New(100, time.Hour)
	dir := t.TempDir()
	path := writeCacheFile(t, dir, "shared.txt")
	require.NoError(t, c.Set(path, "encoded", "png", "fp"))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				c.Get(path)
				p := writeCacheFile(t, dir, fmt.Sprintf("w%d-%d.txt", n, j))
				_ = c.Set(p, "encoded", "png", "fp")
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	require.LessOrEqual(t, c.GetStats().TotalEntries, 100)
}
