package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/vscope-cli/internal/pipeline"
	"github.com/AnyUserName/vscope-cli/internal/preset"
	"github.com/AnyUserName/vscope-cli/internal/report"
)

var (
	analyzeOut        string
	analyzePreset     string
	analyzeWorkers    int
	analyzeSampleRate int
	analyzeWfWidth    int
	analyzeVsSize     int
	analyzeMaxWidth   int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image_or_dir>",
	Short: "Analyze still frames and write a scope report",
	Long: `Scans the input for images (png, jpg, jpeg, webp, gif, bmp, tiff),
runs the scope engine over each frame — histogram, waveform, vectorscope,
RGB parade — and writes one JSON report.

Presets bundle stride and grid sizes; individual flags override them.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "vscope.report.json", "report output path")
	analyzeCmd.Flags().StringVarP(&analyzePreset, "preset", "p", "full",
		fmt.Sprintf("analysis preset %v", preset.Names()))
	analyzeCmd.Flags().IntVarP(&analyzeWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	analyzeCmd.Flags().IntVar(&analyzeSampleRate, "sample-rate", 0, "pixel/row stride (0 = preset default)")
	analyzeCmd.Flags().IntVar(&analyzeWfWidth, "waveform-width", 0, "waveform columns (0 = preset default)")
	analyzeCmd.Flags().IntVar(&analyzeVsSize, "vectorscope-size", 0, "vectorscope grid size (0 = preset default)")
	analyzeCmd.Flags().IntVar(&analyzeMaxWidth, "max-width", -1, "downscale cap before analysis (-1 = preset default, 0 = none)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	start := time.Now()

	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	pre := resolvePreset(analyzePreset, analyzeSampleRate, analyzeWfWidth, analyzeVsSize, analyzeMaxWidth)

	logVerbose("input:  %s", absInput)
	logVerbose("preset: %s (stride=%d, waveform=%d, vectorscope=%d, max-width=%d)",
		pre.Name, pre.SampleRate, pre.WaveformWidth, pre.VectorscopeSize, pre.MaxWidth)

	p := pipeline.New(pipeline.Config{
		Input:   absInput,
		Preset:  pre,
		Workers: analyzeWorkers,
		Verbose: verbose,
	})

	r, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if err := report.WriteJSON(r, analyzeOut); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	printRunReport(r, analyzeOut, time.Since(start))
	return nil
}

// resolvePreset applies flag overrides on top of a named preset.
func resolvePreset(name string, sampleRate, wfWidth, vsSize, maxWidth int) preset.Preset {
	pre := preset.Get(name)
	if sampleRate > 0 {
		pre.SampleRate = sampleRate
	}
	if wfWidth > 0 {
		pre.WaveformWidth = wfWidth
	}
	if vsSize > 0 {
		pre.VectorscopeSize = vsSize
	}
	if maxWidth >= 0 {
		pre.MaxWidth = maxWidth
	}
	return pre
}

func printRunReport(r *report.Report, outPath string, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("  Frames:        %d\n", r.Stats.TotalFrames)
	if r.Stats.TotalInputBytes > 0 {
		fmt.Printf("  Input size:    %s\n", formatBytes(r.Stats.TotalInputBytes))
	}
	fmt.Printf("  Mean exposure: %+.3f\n", r.Stats.MeanExposure)
	fmt.Printf("  Exposure span: [%+.3f, %+.3f]\n", r.Stats.MinExposure, r.Stats.MaxExposure)
	if r.Stats.DuplicateFrames > 0 {
		fmt.Printf("  Duplicates:    %d frames\n", r.Stats.DuplicateFrames)
	}
	fmt.Printf("  Time:          %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  Report:        %s\n", outPath)
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
