package scope

import "math"

// WaveformColumn aggregates all sampled pixels mapped to one output column:
// running min/max/average plus the full 256-bin intensity distribution.
// A column that received no samples reports Min=Max=Avg=0 and all-zero bins.
type WaveformColumn struct {
	Min          int         `json:"min"`
	Max          int         `json:"max"`
	Avg          int         `json:"avg"`
	Distribution [256]uint32 `json:"distribution"`
}

// WaveformData is the per-column result of a waveform (or single-channel
// parade) pass. Width == len(Columns) == min(targetWidth, sourceWidth).
type WaveformData struct {
	Columns []WaveformColumn `json:"columns"`
	Width   int              `json:"width"`
}

// Channel selectors for analyzeColumns. lumaChannel derives the value from
// all three channels; the others read one raw byte of the RGBA quad.
const (
	lumaChannel  = -1
	redChannel   = 0
	greenChannel = 1
	blueChannel  = 2
)

// AnalyzeWaveform maps source columns onto at most targetWidth output
// columns and aggregates BT.709 luminance per column, sampling rows at the
// given stride.
func AnalyzeWaveform(buf *PixelBuffer, targetWidth, sampleRate int) *WaveformData {
	return analyzeColumns(buf, targetWidth, sampleRate, lumaChannel)
}

// columnSpan returns the half-open source-column range feeding output
// column c. Proportional mapping covers the source width exactly once even
// when it does not divide evenly; integer division is floor here because
// every operand is non-negative.
func columnSpan(c, actualWidth, srcWidth int) (int, int) {
	return c * srcWidth / actualWidth, (c + 1) * srcWidth / actualWidth
}

func analyzeColumns(buf *PixelBuffer, targetWidth, sampleRate, channel int) *WaveformData {
	srcW, srcH := buf.Width, buf.Height

	actual := targetWidth
	if srcW < actual {
		actual = srcW
	}
	if actual < 0 {
		actual = 0
	}

	out := &WaveformData{
		Columns: make([]WaveformColumn, actual),
		Width:   actual,
	}
	if actual == 0 || srcH <= 0 {
		return out
	}

	rowStep := sampleRate
	if rowStep < 1 {
		rowStep = 1
	}

	pix := buf.Pix
	rowBytes := srcW * 4

	for c := 0; c < actual; c++ {
		x0, x1 := columnSpan(c, actual, srcW)
		col := &out.Columns[c]

		minV, maxV := 255, 0
		var sum, count uint64

		for y := 0; y < srcH; y += rowStep {
			off := y*rowBytes + x0*4
			for x := x0; x < x1; x++ {
				var v int
				if channel == lumaChannel {
					v = Luma(pix[off], pix[off+1], pix[off+2])
				} else {
					v = int(pix[off+channel])
				}

				if v < minV {
					minV = v
				}
				if v > maxV {
					maxV = v
				}
				sum += uint64(v)
				count++
				col.Distribution[v]++
				off += 4
			}
		}

		if count > 0 {
			col.Min = minV
			col.Max = maxV
			col.Avg = int(math.Round(float64(sum) / float64(count)))
		}
	}
	return out
}
