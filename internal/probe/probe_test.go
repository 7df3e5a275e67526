package probe

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStat_ExistingFile(t *testing.T) {
	path := writeTempFile(t, "a.txt", "hello")

	st, err := Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(5), st.Size)
	require.False(t, st.ModTime.IsZero())
	// Second granularity: no sub-second component survives.
	require.Zero(t, st.ModTime.Nanosecond())
}

func TestStat_MissingPath(t *testing.T) {
	_, err := Stat(filepath.Join(t.TempDir(), "no-such-file"))
	require.ErrorIs(t, err, ErrNotAccessible)
}

func TestInfo(t *testing.T) {
	path := writeTempFile(t, "doc.PDF", "content")

	info := Info(path)
	require.True(t, info.Exists)
	require.True(t, info.IsFile)
	require.False(t, info.IsDirectory)
	require.Equal(t, "doc.PDF", info.Name)
	require.Equal(t, "pdf", info.Extension)
	require.NotNil(t, info.Size)
	require.Equal(t, int64(7), *info.Size)
	require.NotNil(t, info.ModTime)
}

func TestInfo_MissingPath(t *testing.T) {
	info := Info(filepath.Join(t.TempDir(), "gone.txt"))
	require.False(t, info.Exists)
	require.Equal(t, "gone.txt", info.Name)
	require.Equal(t, "txt", info.Extension)
	require.Nil(t, info.Size)
	require.Nil(t, info.ModTime)
}

func TestInfo_Directory(t *testing.T) {
	dir := t.TempDir()
	info := Info(dir)
	require.True(t, info.Exists)
	require.True(t, info.IsDirectory)
	require.False(t, info.IsFile)
	require.Nil(t, info.Size)
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"tool.exe", "exe"},
		{"TOOL.EXE", "exe"},
		{`C:\apps\report.PDF`, "pdf"},
		{"/tmp/archive.tar", "tar"},
		{"noext", ""},
		{".hidden", "hidden"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Extension(tt.path), "path %q", tt.path)
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	st := FileStat{Size: 42, ModTime: time.Unix(1700000000, 0)}

	a := Fingerprint("/tmp/a", st)
	b := Fingerprint("/tmp/a", st)
	require.Equal(t, a, b)
	require.NotEmpty(t, a)
}

func TestFingerprint_ChangesWithMetadata(t *testing.T) {
	st := FileStat{Size: 42, ModTime: time.Unix(1700000000, 0)}

	base := Fingerprint("/tmp/a", st)
	require.NotEqual(t, base, Fingerprint("/tmp/b", st))
	require.NotEqual(t, base, Fingerprint("/tmp/a", FileStat{Size: 43, ModTime: st.ModTime}))
	require.NotEqual(t, base, Fingerprint("/tmp/a", FileStat{Size: 42, ModTime: st.ModTime.Add(time.Second)}))
}

func TestValidatePath(t *testing.T) {
	require.Error(t, ValidatePath(""))
	require.Error(t, ValidatePath(`C:\apps\bad<name>.exe`))
	require.Error(t, ValidatePath("what?.txt"))
	require.Error(t, ValidatePath(`1:\apps\tool.exe`))
	require.NoError(t, ValidatePath(`C:\apps\tool.exe`))
	require.NoError(t, ValidatePath("/usr/bin/true"))
}
