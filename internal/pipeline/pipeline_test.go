package pipeline

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/vscope-cli/internal/preset"
)

func writePNG(t *testing.T, path string, c color.NRGBA, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestScanSources_Directory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), color.NRGBA{R: 255, A: 255}, 4, 4)

	sub := filepath.Join(dir, "clips")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(sub, "b.png"), color.NRGBA{G: 255, A: 255}, 4, 4)

	hidden := filepath.Join(dir, ".cache")
	if err := os.Mkdir(hidden, 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(hidden, "c.png"), color.NRGBA{B: 255, A: 255}, 4, 4)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	sources, err := ScanSources(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("sources: got %d, want 2 (hidden dir and txt skipped)", len(sources))
	}

	keys := map[string]bool{}
	for _, s := range sources {
		keys[s.Key] = true
		if s.Format != "png" {
			t.Errorf("format: got %q", s.Format)
		}
	}
	if !keys["a"] || !keys["clips/b"] {
		t.Errorf("keys: got %v", keys)
	}
}

func TestScanSources_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	writePNG(t, path, color.NRGBA{R: 10, A: 255}, 2, 2)

	sources, err := ScanSources(path)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(sources) != 1 || sources[0].Key != "frame" {
		t.Fatalf("sources: got %+v", sources)
	}
}

func TestScanSources_UnsupportedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.xyz")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ScanSources(path); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestRun_PureRedEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "red.png"), color.NRGBA{R: 255, A: 255}, 10, 10)

	p := New(Config{Input: dir, Preset: preset.Get("full"), Workers: 2})
	r, err := p.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	rec, ok := r.Frames["red"]
	if !ok {
		t.Fatalf("frame missing, got keys %v", r.Frames)
	}
	if rec.Analysis.Histogram.Red[255] != 100 {
		t.Errorf("histogram red[255]: got %d, want 100", rec.Analysis.Histogram.Red[255])
	}
	if rec.Analysis.Vectorscope.MaxIntensity != 100 {
		t.Errorf("vectorscope max: got %d, want 100", rec.Analysis.Vectorscope.MaxIntensity)
	}
	if rec.FrameHash == "" || rec.Source.Hash == "" {
		t.Error("frame or source hash missing")
	}
	if rec.Source.Width != 10 || rec.Source.Height != 10 {
		t.Errorf("source dims: got %dx%d", rec.Source.Width, rec.Source.Height)
	}
	if r.Stats.TotalFrames != 1 {
		t.Errorf("stats: got %+v", r.Stats)
	}
}

func TestRun_DownscaleCap(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "big.png"), color.NRGBA{R: 200, G: 200, B: 200, A: 255}, 64, 32)

	pre := preset.Get("full")
	pre.MaxWidth = 16

	p := New(Config{Input: dir, Preset: pre, Workers: 1})
	r, err := p.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	rec := r.Frames["big"]
	// Original dimensions are reported even when analysis ran downscaled.
	if rec.Source.Width != 64 || rec.Source.Height != 32 {
		t.Errorf("source dims: got %dx%d, want 64x32", rec.Source.Width, rec.Source.Height)
	}
	if rec.Analysis.Width != 16 || rec.Analysis.Height != 8 {
		t.Errorf("analyzed dims: got %dx%d, want 16x8", rec.Analysis.Width, rec.Analysis.Height)
	}
}
