package report

import "github.com/AnyUserName/vscope-cli/internal/scope"

// Report is the top-level output of a vscope run: one FrameRecord per
// analyzed frame plus aggregate exposure statistics.
type Report struct {
	Version     int                    `json:"version"`
	GeneratedAt string                 `json:"generated_at"`
	Preset      string                 `json:"preset"`
	RunInfo     *RunInfo               `json:"run_info,omitempty"`
	Frames      map[string]FrameRecord `json:"frames"`
	Stats       Stats                  `json:"stats"`
}

// RunInfo captures run-time parameters for diagnostics.
type RunInfo struct {
	Workers         int `json:"workers"`
	SampleRate      int `json:"sample_rate"`
	WaveformWidth   int `json:"waveform_width"`
	VectorscopeSize int `json:"vectorscope_size"`
}

// SourceInfo holds metadata about where a frame came from.
type SourceInfo struct {
	Path   string `json:"path"`
	Format string `json:"format"`         // "png", "jpeg", "video", ...
	Size   int64  `json:"size,omitempty"` // source file size, 0 for video frames
	Hash   string `json:"hash,omitempty"` // xxhash64 of the source file
	Width  int    `json:"width"`          // dimensions before any downscale
	Height int    `json:"height"`
}

// FrameRecord is the full analysis of one frame plus derived display
// helpers the scope panels consume directly.
type FrameRecord struct {
	Source            SourceInfo           `json:"source"`
	FrameHash         string               `json:"frame_hash"` // xxhash64 of analyzed RGBA bytes
	Exposure          float64              `json:"exposure"`   // roughly [-1, 1]
	ClippedShadows    float64              `json:"clipped_shadows"`
	ClippedHighlights float64              `json:"clipped_highlights"`
	Analysis          *scope.FrameAnalysis `json:"analysis"`
}

// Stats aggregates run metrics.
type Stats struct {
	TotalFrames     int     `json:"total_frames"`
	TotalInputBytes int64   `json:"total_input_bytes"`
	MeanExposure    float64 `json:"mean_exposure"`
	MinExposure     float64 `json:"min_exposure"`
	MaxExposure     float64 `json:"max_exposure"`
	DuplicateFrames int     `json:"duplicate_frames,omitempty"` // identical frame hashes
}

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1
