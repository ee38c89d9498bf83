package scope

// RGBParadeData holds three independent single-channel waveforms, one per
// color channel, displayed side by side by the renderer. Each is built from
// that channel's raw byte values, not from luminance.
type RGBParadeData struct {
	Red   *WaveformData `json:"red"`
	Green *WaveformData `json:"green"`
	Blue  *WaveformData `json:"blue"`
}

// AnalyzeRGBParade runs the waveform column mapping once per channel over
// the same buffer with the same stride.
func AnalyzeRGBParade(buf *PixelBuffer, targetWidth, sampleRate int) *RGBParadeData {
	return &RGBParadeData{
		Red:   analyzeColumns(buf, targetWidth, sampleRate, redChannel),
		Green: analyzeColumns(buf, targetWidth, sampleRate, greenChannel),
		Blue:  analyzeColumns(buf, targetWidth, sampleRate, blueChannel),
	}
}
