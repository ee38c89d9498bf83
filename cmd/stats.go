package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/vscope-cli/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats <report_or_dir>",
	Short: "Display statistics for a scope report",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for a report inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, "vscope.report.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	printStats(&r)
	return nil
}

func printStats(r *report.Report) {
	fmt.Println()
	fmt.Printf("  Report version: %d\n", r.Version)
	fmt.Printf("  Generated:      %s\n", r.GeneratedAt)
	fmt.Printf("  Preset:         %s\n", r.Preset)
	if r.RunInfo != nil {
		fmt.Printf("  Stride:         %d\n", r.RunInfo.SampleRate)
		fmt.Printf("  Waveform:       %d columns\n", r.RunInfo.WaveformWidth)
		fmt.Printf("  Vectorscope:    %d×%d\n", r.RunInfo.VectorscopeSize, r.RunInfo.VectorscopeSize)
	}
	fmt.Println()

	s := r.Stats
	fmt.Printf("  Total frames:   %d\n", s.TotalFrames)
	if s.TotalInputBytes > 0 {
		fmt.Printf("  Input size:     %s\n", formatBytes(s.TotalInputBytes))
	}
	fmt.Printf("  Mean exposure:  %+.3f\n", s.MeanExposure)
	fmt.Printf("  Exposure span:  [%+.3f, %+.3f]\n", s.MinExposure, s.MaxExposure)
	if s.DuplicateFrames > 0 {
		fmt.Printf("  Duplicates:     %d frames\n", s.DuplicateFrames)
	}
	fmt.Println()

	// Per-format breakdown.
	formatCount := map[string]int{}
	for _, f := range r.Frames {
		formatCount[f.Source.Format]++
	}
	if len(formatCount) > 0 {
		var formats []string
		for f := range formatCount {
			formats = append(formats, f)
		}
		sort.Strings(formats)
		fmt.Println("  Format breakdown:")
		for _, f := range formats {
			fmt.Printf("    %-6s  %4d frames\n", f, formatCount[f])
		}
		fmt.Println()
	}

	// Exposure distribution in coarse buckets.
	buckets := [5]int{} // <-0.5, -0.5..-0.1, -0.1..0.1, 0.1..0.5, >0.5
	for _, f := range r.Frames {
		switch {
		case f.Exposure < -0.5:
			buckets[0]++
		case f.Exposure < -0.1:
			buckets[1]++
		case f.Exposure <= 0.1:
			buckets[2]++
		case f.Exposure <= 0.5:
			buckets[3]++
		default:
			buckets[4]++
		}
	}
	labels := [5]string{"very dark", "dark", "balanced", "bright", "very bright"}
	fmt.Println("  Exposure distribution:")
	for i, n := range buckets {
		if n > 0 {
			fmt.Printf("    %-12s %4d frames\n", labels[i], n)
		}
	}
	fmt.Println()

	// Frames with the heaviest clipping.
	type clipInfo struct {
		key     string
		clipped float64
	}
	var clips []clipInfo
	for key, f := range r.Frames {
		if c := f.ClippedShadows + f.ClippedHighlights; c > 0.01 {
			clips = append(clips, clipInfo{key, c})
		}
	}
	if len(clips) > 0 {
		sort.Slice(clips, func(i, j int) bool { return clips[i].clipped > clips[j].clipped })
		n := len(clips)
		if n > 10 {
			n = 10
		}
		fmt.Printf("  Clipping (top %d):\n", n)
		for _, c := range clips[:n] {
			fmt.Printf("    %-40s %5.1f%% of samples\n", truncKey(c.key, 40), c.clipped*100)
		}
		fmt.Println()
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
