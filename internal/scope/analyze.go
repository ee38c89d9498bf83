// Package scope implements the video scope analysis engine: pure numeric
// transforms that turn one raw RGBA frame into the data structures behind
// professional color-monitoring displays — histogram, waveform, vectorscope
// and RGB parade.
//
// Performance design:
//   - flat []byte walks over the RGBA buffer, no image.At in any hot loop
//   - single accumulation pass per analyzer; maxima tracked while counting
//     (vectorscope) or with one scan over the 1024 bins afterwards (histogram)
//   - every call allocates and returns a fresh result; the engine keeps no
//     state between frames and is safe to call from any goroutine
//   - the four analyzers are mutually independent and AnalyzeFrame runs them
//     concurrently over the same read-only buffer
package scope

import (
	"sync"
	"time"
)

// FrameAnalysis aggregates the four scope results for one frame, stamped
// with the analysis time and the source buffer dimensions.
type FrameAnalysis struct {
	Histogram   *HistogramData   `json:"histogram"`
	Waveform    *WaveformData    `json:"waveform"`
	Vectorscope *VectorscopeData `json:"vectorscope"`
	RGBParade   *RGBParadeData   `json:"rgb_parade"`
	Timestamp   int64            `json:"timestamp"` // unix milliseconds
	Width       int              `json:"width"`
	Height      int              `json:"height"`
}

// AnalyzeFrame runs all four analyzers over the buffer with the same
// options. The analyzers read only the immutable input and each allocates
// its own result, so they run as a goroutine fan-out joined here.
func AnalyzeFrame(buf *PixelBuffer, opts Options) *FrameAnalysis {
	opts = opts.normalized()

	fa := &FrameAnalysis{
		Timestamp: time.Now().UnixMilli(),
		Width:     buf.Width,
		Height:    buf.Height,
	}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		fa.Histogram = AnalyzeHistogram(buf, opts.SampleRate)
	}()
	go func() {
		defer wg.Done()
		fa.Waveform = AnalyzeWaveform(buf, opts.WaveformWidth, opts.SampleRate)
	}()
	go func() {
		defer wg.Done()
		fa.Vectorscope = AnalyzeVectorscope(buf, opts.VectorscopeSize, opts.SampleRate)
	}()
	go func() {
		defer wg.Done()
		fa.RGBParade = AnalyzeRGBParade(buf, opts.WaveformWidth, opts.SampleRate)
	}()
	wg.Wait()

	return fa
}

// EmptyAnalysis returns a structurally valid zero result for use before the
// first real frame arrives: zeroed 256-bin histograms, no waveform columns,
// an empty vectorscope grid and Timestamp 0.
func EmptyAnalysis() *FrameAnalysis {
	return &FrameAnalysis{
		Histogram:   &HistogramData{},
		Waveform:    &WaveformData{Columns: []WaveformColumn{}},
		Vectorscope: &VectorscopeData{Cells: []uint32{}},
		RGBParade: &RGBParadeData{
			Red:   &WaveformData{Columns: []WaveformColumn{}},
			Green: &WaveformData{Columns: []WaveformColumn{}},
			Blue:  &WaveformData{Columns: []WaveformColumn{}},
		},
	}
}
