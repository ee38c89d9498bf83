package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/vscope-cli/internal/report"
	"github.com/AnyUserName/vscope-cli/internal/scope"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report_path>",
	Short: "Validate the structural invariants of a scope report",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	errors := validateReport(&r)

	if len(errors) == 0 {
		fmt.Println("  ✓ Report is valid")
		fmt.Printf("  ✓ %d frames — all invariants hold\n", r.Stats.TotalFrames)
		return nil
	}

	fmt.Printf("  ✗ Report has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

// validateReport checks every invariant the engine guarantees, so a report
// that fails here was either corrupted or produced by a different tool.
func validateReport(r *report.Report) []string {
	var errs []string

	if r.Version != report.SupportedReportVersion {
		errs = append(errs, fmt.Sprintf("unsupported report version: %d", r.Version))
	}

	for key, f := range r.Frames {
		fa := f.Analysis
		if fa == nil {
			errs = append(errs, fmt.Sprintf("frame %q: missing analysis", key))
			continue
		}

		errs = append(errs, validateHistogram(key, fa.Histogram)...)
		errs = append(errs, validateWaveform(key, "waveform", fa.Waveform)...)
		errs = append(errs, validateVectorscope(key, fa.Vectorscope)...)

		if fa.RGBParade == nil {
			errs = append(errs, fmt.Sprintf("frame %q: missing rgb parade", key))
		} else {
			errs = append(errs, validateWaveform(key, "parade red", fa.RGBParade.Red)...)
			errs = append(errs, validateWaveform(key, "parade green", fa.RGBParade.Green)...)
			errs = append(errs, validateWaveform(key, "parade blue", fa.RGBParade.Blue)...)
		}

		if f.Exposure < -1.01 || f.Exposure > 1.01 {
			errs = append(errs, fmt.Sprintf("frame %q: exposure %f out of range", key, f.Exposure))
		}
		if f.ClippedShadows < 0 || f.ClippedShadows > 1 ||
			f.ClippedHighlights < 0 || f.ClippedHighlights > 1 {
			errs = append(errs, fmt.Sprintf("frame %q: clipping ratios out of [0,1]", key))
		}
	}

	if r.Stats.TotalFrames != len(r.Frames) {
		errs = append(errs, fmt.Sprintf("stats.total_frames mismatch: %d != %d",
			r.Stats.TotalFrames, len(r.Frames)))
	}

	return errs
}

func validateHistogram(key string, h *scope.HistogramData) []string {
	if h == nil {
		return []string{fmt.Sprintf("frame %q: missing histogram", key)}
	}
	var errs []string

	var maxBin uint32
	sums := [4]uint64{}
	for i, bins := range [4]*[256]uint32{&h.Red, &h.Green, &h.Blue, &h.Luminance} {
		for _, n := range bins {
			sums[i] += uint64(n)
			if n > maxBin {
				maxBin = n
			}
		}
	}

	// Every channel counts the same sampled pixels.
	if sums[0] != sums[1] || sums[0] != sums[2] || sums[0] != sums[3] {
		errs = append(errs, fmt.Sprintf("frame %q: histogram channel sums differ: %v", key, sums))
	}
	if h.MaxCount != maxBin {
		errs = append(errs, fmt.Sprintf("frame %q: histogram max_count %d != largest bin %d",
			key, h.MaxCount, maxBin))
	}
	return errs
}

func validateWaveform(key, name string, wf *scope.WaveformData) []string {
	if wf == nil {
		return []string{fmt.Sprintf("frame %q: missing %s", key, name)}
	}
	var errs []string

	if wf.Width != len(wf.Columns) {
		errs = append(errs, fmt.Sprintf("frame %q: %s width %d != %d columns",
			key, name, wf.Width, len(wf.Columns)))
	}
	for i, col := range wf.Columns {
		if col.Min > col.Max || col.Avg < col.Min || col.Avg > col.Max {
			errs = append(errs, fmt.Sprintf("frame %q: %s column %d: min/avg/max %d/%d/%d inconsistent",
				key, name, i, col.Min, col.Avg, col.Max))
		}
		if col.Min < 0 || col.Max > 255 {
			errs = append(errs, fmt.Sprintf("frame %q: %s column %d: values outside [0,255]",
				key, name, i))
		}
	}
	return errs
}

func validateVectorscope(key string, v *scope.VectorscopeData) []string {
	if v == nil {
		return []string{fmt.Sprintf("frame %q: missing vectorscope", key)}
	}
	var errs []string

	if len(v.Cells) != v.Size*v.Size {
		errs = append(errs, fmt.Sprintf("frame %q: vectorscope %d cells for size %d",
			key, len(v.Cells), v.Size))
	}
	var maxCell uint32
	for _, c := range v.Cells {
		if c > maxCell {
			maxCell = c
		}
	}
	if v.MaxIntensity != maxCell {
		errs = append(errs, fmt.Sprintf("frame %q: vectorscope max_intensity %d != largest cell %d",
			key, v.MaxIntensity, maxCell))
	}
	return errs
}
