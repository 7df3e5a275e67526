package icon

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

const pngDataURIPrefix = "data:image/png;base64,"

// EncodeDataURI serializes a canonical RGBA buffer as a PNG wrapped in
// a self-describing data URI.
func EncodeDataURI(img *RGBA) (string, error) {
	if len(img.Pix) != img.Width*img.Height*4 {
		return "", ErrBadPixelBuffer
	}

	rgba := &image.RGBA{
		Pix:    img.Pix,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return "", fmt.Errorf("failed to encode png: %w", err)
	}

	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
