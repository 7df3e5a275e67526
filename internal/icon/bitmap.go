package icon

// Byte-level bitmap transforms shared by the native acquirer. These are
// platform-independent on purpose: the Windows code only wires OS calls
// around them.

// swapBGRAToRGBA reorders every 4-byte pixel group in place, exchanging
// the blue and red channels. Device bitmaps store BGRA; encoders want
// RGBA.
func swapBGRAToRGBA(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

// flipRows returns a vertically mirrored copy of a top-down/bottom-up
// pixel buffer, exchanging each row y with row height-1-y via full-row
// block copies. Bottom-up device bitmaps must pass through this before
// encoding, since the encoder assumes top-down input.
func flipRows(pix []byte, width, height int) []byte {
	rowSize := width * 4
	flipped := make([]byte, len(pix))
	for y := 0; y < height; y++ {
		src := y * rowSize
		dst := (height - 1 - y) * rowSize
		copy(flipped[dst:dst+rowSize], pix[src:src+rowSize])
	}
	return flipped
}

// normalizeDIB converts raw 32bpp device bitmap bytes into a canonical
// top-down RGBA buffer. topDown reports how the source rows are stored
// (a negative bitmap height on Windows means top-down).
func normalizeDIB(pix []byte, width, height int, topDown bool) (*RGBA, error) {
	if len(pix) != width*height*4 {
		return nil, ErrBadPixelBuffer
	}
	swapBGRAToRGBA(pix)
	if !topDown {
		pix = flipRows(pix, width, height)
	}
	return &RGBA{Pix: pix, Width: width, Height: height}, nil
}
