package icon

import (
	"encoding/base64"

	"github.com/muandane/special-stack/icond/internal/probe"
)

// Placeholder glyph categories keyed by file extension. Folders and
// unknown extensions share the default glyph.
var placeholderGlyphs = map[string]string{
	"exe": "⚙️", "msi": "⚙️",
	"txt": "📄", "md": "📄", "doc": "📄", "docx": "📄",
	"pdf": "📕",
	"jpg": "🖼️", "jpeg": "🖼️", "png": "🖼️", "gif": "🖼️", "bmp": "🖼️",
	"mp3": "🎵", "wav": "🎵", "flac": "🎵", "aac": "🎵",
	"mp4": "🎬", "avi": "🎬", "mkv": "🎬", "mov": "🎬",
	"zip": "📦", "rar": "📦", "7z": "📦", "tar": "📦",
	"html": "🌐", "htm": "🌐",
	"js": "💻", "ts": "💻", "py": "💻", "rs": "💻", "cpp": "💻", "c": "💻",
}

const defaultGlyph = "📁"

// GlyphForExtension maps a file extension (any case, with or without
// a path) to its placeholder glyph. The mapping is total: unknown
// extensions get the default glyph.
func GlyphForExtension(ext string) string {
	if g, ok := placeholderGlyphs[ext]; ok {
		return g
	}
	return defaultGlyph
}

// GlyphForPath resolves a path's extension and returns its glyph.
// Directories should use the default glyph directly.
func GlyphForPath(path string) string {
	return GlyphForExtension(probe.Extension(path))
}

// encodeGlyph wraps a placeholder glyph as a base64 payload so both
// pipeline branches hand the caller an encoded string.
func encodeGlyph(glyph string) string {
	return base64.StdEncoding.EncodeToString([]byte(glyph))
}
