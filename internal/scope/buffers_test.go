package scope

// Shared deterministic fixtures for the analyzer tests.

// solidBuffer builds a w×h buffer filled with one opaque color.
func solidBuffer(w, h int, r, g, b byte) *PixelBuffer {
	pix := make([]byte, w*h*4)
	for off := 0; off < len(pix); off += 4 {
		pix[off] = r
		pix[off+1] = g
		pix[off+2] = b
		pix[off+3] = 255
	}
	return &PixelBuffer{Width: w, Height: h, Pix: pix}
}

// gradientBuffer builds a horizontal gray gradient, dark on the left,
// bright on the right.
func gradientBuffer(w, h int) *PixelBuffer {
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(x * 255 / (w - 1))
			off := (y*w + x) * 4
			pix[off] = v
			pix[off+1] = v
			pix[off+2] = v
			pix[off+3] = 255
		}
	}
	return &PixelBuffer{Width: w, Height: h, Pix: pix}
}

// emptyBuffer is a zero-area frame.
func emptyBuffer() *PixelBuffer {
	return &PixelBuffer{Width: 0, Height: 0, Pix: nil}
}
