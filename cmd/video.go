package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/vscope-cli/internal/framesource"
	"github.com/AnyUserName/vscope-cli/internal/hasher"
	"github.com/AnyUserName/vscope-cli/internal/report"
	"github.com/AnyUserName/vscope-cli/internal/scope"
)

var (
	videoOut        string
	videoPreset     string
	videoFPS        int
	videoSampleRate int
	videoWfWidth    int
	videoVsSize     int
	videoMaxWidth   int
)

var videoCmd = &cobra.Command{
	Use:   "video <video_file>",
	Short: "Analyze frames extracted from a video file",
	Long: `Streams frames out of a video through ffmpeg at the given rate and
runs the scope engine over each one, writing a per-frame JSON report.

Requires ffmpeg and ffprobe on PATH.`,
	Args: cobra.ExactArgs(1),
	RunE: runVideo,
}

func init() {
	videoCmd.Flags().StringVarP(&videoOut, "out", "o", "vscope.report.json", "report output path")
	videoCmd.Flags().StringVarP(&videoPreset, "preset", "p", "preview", "analysis preset")
	videoCmd.Flags().IntVar(&videoFPS, "fps", 1, "frames per second of source time to extract")
	videoCmd.Flags().IntVar(&videoSampleRate, "sample-rate", 0, "pixel/row stride (0 = preset default)")
	videoCmd.Flags().IntVar(&videoWfWidth, "waveform-width", 0, "waveform columns (0 = preset default)")
	videoCmd.Flags().IntVar(&videoVsSize, "vectorscope-size", 0, "vectorscope grid size (0 = preset default)")
	videoCmd.Flags().IntVar(&videoMaxWidth, "max-width", -1, "frame width cap at extraction (-1 = preset default, 0 = none)")
	rootCmd.AddCommand(videoCmd)
}

func runVideo(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	start := time.Now()

	pre := resolvePreset(videoPreset, videoSampleRate, videoWfWidth, videoVsSize, videoMaxWidth)
	opts := pre.Options()

	if info, err := framesource.Probe(videoPath); err == nil {
		logVerbose("source: %dx%d, ~%d frames", info.Width, info.Height, info.FrameCount)
	} else {
		logVerbose("probe failed: %v", err)
	}

	r := report.New(pre.Name)
	r.RunInfo = &report.RunInfo{
		Workers:         1, // frames stream sequentially; analyzers fan out per frame
		SampleRate:      pre.SampleRate,
		WaveformWidth:   pre.WaveformWidth,
		VectorscopeSize: pre.VectorscopeSize,
	}

	n, err := framesource.ExtractFrames(cmd.Context(), videoPath, videoFPS, pre.MaxWidth,
		func(index int, buf *scope.PixelBuffer) error {
			fa := scope.AnalyzeFrame(buf, opts)
			shadows, highlights := scope.ClippingRatios(fa.Histogram)

			key := fmt.Sprintf("frame_%06d", index)
			r.Frames[key] = report.FrameRecord{
				Source: report.SourceInfo{
					Path:   videoPath,
					Format: "video",
					Width:  buf.Width,
					Height: buf.Height,
				},
				FrameHash:         hasher.FrameHash(buf.Pix),
				Exposure:          scope.ExposureLevel(fa.Histogram),
				ClippedShadows:    shadows,
				ClippedHighlights: highlights,
				Analysis:          fa,
			}

			logVerbose("frame %d: %dx%d, exposure %+.3f", index, buf.Width, buf.Height,
				scope.ExposureLevel(fa.Histogram))
			return nil
		})
	if err != nil {
		return fmt.Errorf("extract %s: %w", videoPath, err)
	}
	if n == 0 {
		return fmt.Errorf("no frames extracted from %s", videoPath)
	}

	if err := report.WriteJSON(r, videoOut); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	printRunReport(r, videoOut, time.Since(start))
	return nil
}
