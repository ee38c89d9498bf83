package scope

// ExposureLevel estimates over/under-exposure from the luminance channel
// of a histogram. 0 is balanced; negative means underexposed, positive
// overexposed; the range is roughly [-1, 1]. An empty histogram yields 0.
func ExposureLevel(h *HistogramData) float64 {
	var sum, weighted uint64
	for i, n := range h.Luminance {
		sum += uint64(n)
		weighted += uint64(n) * uint64(i)
	}
	if sum == 0 {
		return 0
	}
	avg := float64(weighted) / float64(sum)
	return (avg - 128) / 128
}

// ClippingRatios reports the fraction of sampled pixels whose luminance is
// crushed to 0 (shadows) or blown to 255 (highlights). Both are 0 for an
// empty histogram.
func ClippingRatios(h *HistogramData) (shadows, highlights float64) {
	var sum uint64
	for _, n := range h.Luminance {
		sum += uint64(n)
	}
	if sum == 0 {
		return 0, 0
	}
	total := float64(sum)
	return float64(h.Luminance[0]) / total, float64(h.Luminance[255]) / total
}

// NormalizeHistogram scales bins to [0, 1] against maxCount for display.
// A zero maxCount yields all zeros rather than dividing by zero.
func NormalizeHistogram(bins []uint32, maxCount uint32) []float64 {
	out := make([]float64, len(bins))
	if maxCount == 0 {
		return out
	}
	m := float64(maxCount)
	for i, n := range bins {
		out[i] = float64(n) / m
	}
	return out
}
