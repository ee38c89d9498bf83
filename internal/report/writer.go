package report

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty report with defaults.
func New(presetName string) *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Preset:      presetName,
		Frames:      make(map[string]FrameRecord),
	}
}

// ComputeStats recalculates aggregate statistics from the frame records.
func (r *Report) ComputeStats() {
	var s Stats
	s.TotalFrames = len(r.Frames)

	seen := make(map[string]bool, len(r.Frames))
	first := true
	var expSum float64

	for _, f := range r.Frames {
		s.TotalInputBytes += f.Source.Size
		expSum += f.Exposure

		if first || f.Exposure < s.MinExposure {
			s.MinExposure = f.Exposure
		}
		if first || f.Exposure > s.MaxExposure {
			s.MaxExposure = f.Exposure
		}
		first = false

		if f.FrameHash != "" {
			if seen[f.FrameHash] {
				s.DuplicateFrames++
			}
			seen[f.FrameHash] = true
		}
	}
	if s.TotalFrames > 0 {
		s.MeanExposure = expSum / float64(s.TotalFrames)
	}
	r.Stats = s
}

// WriteJSON serializes the report to a JSON file with stable ordering.
func WriteJSON(r *Report, path string) error {
	r.ComputeStats()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
