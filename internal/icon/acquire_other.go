//go:build !windows

package icon

import "os"

// placeholderAcquirer serves platforms without a native shell icon
// subsystem. It never fails: every path maps deterministically to a
// placeholder glyph keyed by extension, so the normalize and encode
// stages are short-circuited entirely.
type placeholderAcquirer struct{}

// NewAcquirer returns the extension-keyed placeholder acquirer.
func NewAcquirer() Acquirer {
	return placeholderAcquirer{}
}

func (placeholderAcquirer) Acquire(path string, _ Size) (*Acquisition, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return &Acquisition{Glyph: defaultGlyph}, nil
	}
	return &Acquisition{Glyph: GlyphForPath(path)}, nil
}
