package scope

// HistogramData holds per-channel and luminance intensity counts.
// The sum of any channel's bins equals the number of pixels sampled.
type HistogramData struct {
	Red       [256]uint32 `json:"red"`
	Green     [256]uint32 `json:"green"`
	Blue      [256]uint32 `json:"blue"`
	Luminance [256]uint32 `json:"luminance"`
	// MaxCount is the largest single bin across all four channels;
	// renderers scale bar heights against it.
	MaxCount uint32 `json:"max_count"`
}

// AnalyzeHistogram counts sampled pixel intensities per channel plus BT.709
// luminance. Sampling is a flat byte-stride walk: every sampleRate-th pixel
// of the whole buffer, regardless of row boundaries. A degenerate buffer
// yields all-zero bins and MaxCount 0.
func AnalyzeHistogram(buf *PixelBuffer, sampleRate int) *HistogramData {
	if sampleRate < 1 {
		sampleRate = 1
	}

	h := &HistogramData{}
	pix := buf.Pix
	step := 4 * sampleRate

	for off := 0; off+4 <= len(pix); off += step {
		r, g, b := pix[off], pix[off+1], pix[off+2]
		h.Red[r]++
		h.Green[g]++
		h.Blue[b]++
		h.Luminance[Luma(r, g, b)]++
	}

	for _, bins := range [4]*[256]uint32{&h.Red, &h.Green, &h.Blue, &h.Luminance} {
		for _, n := range bins {
			if n > h.MaxCount {
				h.MaxCount = n
			}
		}
	}
	return h
}
