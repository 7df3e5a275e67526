package probe

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// ErrNotAccessible is returned when a path does not exist or its
// metadata cannot be read.
var ErrNotAccessible = errors.New("path not accessible")

// FileStat holds the freshness fields of a path: its byte size and
// modification time, truncated to second granularity.
type FileStat struct {
	Size    int64
	ModTime time.Time
}

// FileInfo is the full probe result served by the file-info endpoint.
type FileInfo struct {
	Exists      bool       `json:"exists"`
	IsFile      bool       `json:"is_file"`
	IsDirectory bool       `json:"is_directory"`
	Name        string     `json:"file_name"`
	Extension   string     `json:"file_extension,omitempty"`
	Size        *int64     `json:"file_size,omitempty"`
	ModTime     *time.Time `json:"modified_time,omitempty"`
}

// Stat reads a path's size and modification time. No retries; a
// transient failure surfaces to the caller as ErrNotAccessible.
func Stat(path string) (FileStat, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileStat{}, fmt.Errorf("%w: %s", ErrNotAccessible, path)
	}
	return FileStat{
		Size:    fi.Size(),
		ModTime: fi.ModTime().Truncate(time.Second),
	}, nil
}

// Info collects existence, kind, name and freshness fields for a path.
// Unlike Stat it never fails: a missing path yields Exists=false.
func Info(path string) FileInfo {
	info := FileInfo{
		Name:      filepath.Base(path),
		Extension: Extension(path),
	}

	fi, err := os.Stat(path)
	if err != nil {
		return info
	}

	info.Exists = true
	info.IsDirectory = fi.IsDir()
	info.IsFile = fi.Mode().IsRegular()
	if info.IsFile {
		size := fi.Size()
		mod := fi.ModTime().Truncate(time.Second)
		info.Size = &size
		info.ModTime = &mod
	}
	return info
}

// Extension returns the lower-cased extension of a path without the
// leading dot, or "" when the path has none.
func Extension(path string) string {
	ext := filepath.Ext(path)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Fingerprint derives a change-detection token from a path and its
// observed metadata. It hashes path, size and mtime seconds, not file
// content, so it is cheap but not a cryptographic content hash.
func Fingerprint(path string, st FileStat) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%d", path, st.Size, st.ModTime.Unix())
	return fmt.Sprintf("%x", h.Sum64())
}

// ValidatePath rejects empty paths and, on Windows-style paths,
// characters the filesystem itself forbids. It does not touch the
// filesystem; existence is checked separately.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("file path is empty")
	}
	if strings.ContainsAny(path, `<>"|?*`) {
		return fmt.Errorf("file path contains invalid character")
	}
	// Drive-letter sanity for paths like C:\...
	if len(path) >= 2 && path[1] == ':' {
		if !unicode.IsLetter(rune(path[0])) || path[0] > unicode.MaxASCII {
			return fmt.Errorf("invalid drive letter in path")
		}
	}
	return nil
}
