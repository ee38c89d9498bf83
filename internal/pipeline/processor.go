package pipeline

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/vscope-cli/internal/framesource"
	"github.com/AnyUserName/vscope-cli/internal/hasher"
	"github.com/AnyUserName/vscope-cli/internal/preset"
	"github.com/AnyUserName/vscope-cli/internal/report"
	"github.com/AnyUserName/vscope-cli/internal/scope"
)

// frameResult holds the outcome of analyzing a single source.
type frameResult struct {
	key    string
	record report.FrameRecord
	err    error
}

// analyzeSource handles one still frame: decode, optional downscale,
// convert to a pixel buffer, run the engine, derive display helpers.
func analyzeSource(src Source, pre preset.Preset) frameResult {
	res := frameResult{key: src.Key}

	img, format, err := framesource.DecodeFile(src.AbsPath)
	if err != nil {
		res.err = err
		return res
	}

	bounds := img.Bounds()
	origW, origH := bounds.Dx(), bounds.Dy()

	// Source file identity for the report.
	fileHash := ""
	if f, err := os.Open(src.AbsPath); err == nil {
		fileHash, _ = hasher.FileHash(f)
		f.Close()
	}

	// Cap the analyzed resolution; the stride already trades accuracy for
	// speed, the cap bounds memory for very large stills.
	if pre.MaxWidth > 0 && origW > pre.MaxWidth {
		h := origH * pre.MaxWidth / origW
		if h < 1 {
			h = 1
		}
		img = imaging.Resize(img, pre.MaxWidth, h, imaging.Lanczos)
	}

	buf := framesource.FromImage(img)
	if len(buf.Pix) == 0 {
		res.err = fmt.Errorf("decode %s: empty image", src.RelPath)
		return res
	}

	fa := scope.AnalyzeFrame(buf, pre.Options())
	shadows, highlights := scope.ClippingRatios(fa.Histogram)

	res.record = report.FrameRecord{
		Source: report.SourceInfo{
			Path:   src.RelPath,
			Format: format,
			Size:   src.Size,
			Hash:   fileHash,
			Width:  origW,
			Height: origH,
		},
		FrameHash:         hasher.FrameHash(buf.Pix),
		Exposure:          scope.ExposureLevel(fa.Histogram),
		ClippedShadows:    shadows,
		ClippedHighlights: highlights,
		Analysis:          fa,
	}
	return res
}
