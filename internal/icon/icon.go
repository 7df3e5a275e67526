// Package icon extracts a portable, encoded icon image for a
// filesystem path. On Windows it asks the shell for a native icon and
// converts the device-dependent bitmap into a PNG data URI; elsewhere
// it falls back to an extension-keyed placeholder glyph.
package icon

import "errors"

// Size selects the shell icon variant to request.
type Size string

const (
	SizeSmall Size = "small"
	SizeLarge Size = "large"
)

// ParseSize maps a request parameter onto a Size, defaulting to large.
func ParseSize(s string) Size {
	if s == string(SizeSmall) {
		return SizeSmall
	}
	return SizeLarge
}

// Image formats carried by Result.Format.
const (
	FormatPNG         = "png"
	FormatPlaceholder = "text"
)

// Result is the outward-facing lookup value. It is created fresh on
// every pipeline run and never mutated afterwards.
type Result struct {
	EncodedImage string `json:"encoded_image"`
	Format       string `json:"image_format"`
	FromCache    bool   `json:"served_from_cache"`
	Fingerprint  string `json:"content_fingerprint,omitempty"`
}

// Acquisition is what the platform acquirer hands back: exactly one of
// Image (native pixels, already normalized to top-down RGBA) or Glyph
// (placeholder text) is set.
type Acquisition struct {
	Image *RGBA
	Glyph string
}

// Acquirer obtains an icon representation for an existing path. The
// implementation is selected at build time; callers never see OS
// handles, which are acquired and released within a single call.
type Acquirer interface {
	Acquire(path string, size Size) (*Acquisition, error)
}

// RGBA is a canonical top-down, 8-bit-per-channel pixel buffer.
type RGBA struct {
	Pix    []byte
	Width  int
	Height int
}

var (
	// ErrIconNotFound means the OS shell returned no icon for the path.
	ErrIconNotFound = errors.New("no icon available for path")
	// ErrNullHandle means the shell returned a degenerate icon handle.
	ErrNullHandle = errors.New("icon handle is null")
	// ErrInfoQuery means the bitmap header query failed.
	ErrInfoQuery = errors.New("failed to query bitmap info")
	// ErrPixelRead means reading the bitmap pixel data failed.
	ErrPixelRead = errors.New("failed to read bitmap pixels")
	// ErrBadPixelBuffer means the pixel buffer length does not match
	// width*height*4.
	ErrBadPixelBuffer = errors.New("pixel buffer length mismatch")
)
