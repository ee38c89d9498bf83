package scope

import (
	"math"
	"reflect"
	"testing"
)

func TestAnalyzeFrame_PureRedEndToEnd(t *testing.T) {
	const n = 10 * 10
	buf := solidBuffer(10, 10, 255, 0, 0)

	fa := AnalyzeFrame(buf, DefaultOptions())

	if fa.Width != 10 || fa.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 10x10", fa.Width, fa.Height)
	}
	if fa.Timestamp == 0 {
		t.Error("timestamp not stamped")
	}
	if got := fa.Histogram.Red[255]; got != n {
		t.Errorf("histogram red[255]: got %d, want %d", got, n)
	}
	if got := fa.Histogram.Green[0]; got != n {
		t.Errorf("histogram green[0]: got %d, want %d", got, n)
	}
	center := fa.Vectorscope.Size / 2
	if got := fa.Vectorscope.At(center, center); got != 0 {
		t.Errorf("vectorscope center: got %d, want 0", got)
	}
	if fa.Vectorscope.MaxIntensity != n {
		t.Errorf("vectorscope max intensity: got %d, want %d", fa.Vectorscope.MaxIntensity, n)
	}
	if got := fa.RGBParade.Red.Columns[0].Avg; got != 255 {
		t.Errorf("parade red avg: got %d, want 255", got)
	}
	if fa.Waveform.Width != 10 {
		t.Errorf("waveform width: got %d, want 10", fa.Waveform.Width)
	}
}

// The analyzers run as a goroutine fan-out; identical input must still
// produce identical output, timestamp aside.
func TestAnalyzeFrame_Deterministic(t *testing.T) {
	buf := gradientBuffer(64, 48)
	opts := Options{WaveformWidth: 32, VectorscopeSize: 64, SampleRate: 2}

	a := AnalyzeFrame(buf, opts)
	b := AnalyzeFrame(buf, opts)

	if !reflect.DeepEqual(a.Histogram, b.Histogram) {
		t.Error("histogram differs between runs")
	}
	if !reflect.DeepEqual(a.Waveform, b.Waveform) {
		t.Error("waveform differs between runs")
	}
	if !reflect.DeepEqual(a.Vectorscope, b.Vectorscope) {
		t.Error("vectorscope differs between runs")
	}
	if !reflect.DeepEqual(a.RGBParade, b.RGBParade) {
		t.Error("parade differs between runs")
	}
}

func TestAnalyzeFrame_ZeroOptionsGetDefaults(t *testing.T) {
	buf := solidBuffer(8, 8, 1, 2, 3)

	fa := AnalyzeFrame(buf, Options{})

	if fa.Vectorscope.Size != 256 {
		t.Errorf("vectorscope size: got %d, want default 256", fa.Vectorscope.Size)
	}
	if fa.Waveform.Width != 8 {
		t.Errorf("waveform width: got %d, want min(256, 8) = 8", fa.Waveform.Width)
	}
}

func TestEmptyAnalysis(t *testing.T) {
	fa := EmptyAnalysis()

	if fa.Timestamp != 0 {
		t.Errorf("timestamp: got %d, want 0", fa.Timestamp)
	}
	if fa.Histogram == nil || fa.Histogram.MaxCount != 0 {
		t.Error("histogram not a valid zero value")
	}
	if fa.Waveform == nil || len(fa.Waveform.Columns) != 0 {
		t.Error("waveform not empty")
	}
	if fa.Vectorscope == nil || len(fa.Vectorscope.Cells) != 0 {
		t.Error("vectorscope not empty")
	}
	if fa.RGBParade == nil || fa.RGBParade.Red == nil ||
		fa.RGBParade.Green == nil || fa.RGBParade.Blue == nil {
		t.Error("parade channels missing")
	}
}

func TestLuma_BT709(t *testing.T) {
	cases := []struct {
		r, g, b byte
		want    int
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{128, 128, 128, 128},
		{255, 0, 0, 54},  // round(0.2126*255)
		{0, 255, 0, 182}, // round(0.7152*255)
		{0, 0, 255, 18},  // round(0.0722*255)
	}
	for _, tc := range cases {
		if got := Luma(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("Luma(%d,%d,%d): got %d, want %d", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestChromaCbCr_Range(t *testing.T) {
	// All extreme RGB corners stay inside [-0.5, 0.5], allowing for
	// float64 rounding at the exact boundaries.
	const eps = 1e-12
	for _, r := range []byte{0, 255} {
		for _, g := range []byte{0, 255} {
			for _, b := range []byte{0, 255} {
				cb, cr := ChromaCbCr(r, g, b)
				if cb < -0.5-eps || cb > 0.5+eps || cr < -0.5-eps || cr > 0.5+eps {
					t.Errorf("(%d,%d,%d): cb=%f cr=%f outside [-0.5, 0.5]", r, g, b, cb, cr)
				}
			}
		}
	}

	cb, cr := ChromaCbCr(128, 128, 128)
	if math.Abs(cb) > eps || math.Abs(cr) > eps {
		t.Errorf("gray: cb=%g cr=%g, want ~0, ~0", cb, cr)
	}
}
