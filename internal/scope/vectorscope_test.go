package scope

import "testing"

func TestAnalyzeVectorscope_NeutralGrayNearCenter(t *testing.T) {
	const n = 8 * 8
	buf := solidBuffer(8, 8, 128, 128, 128)

	v := AnalyzeVectorscope(buf, 256, 1)

	if v.MaxIntensity != n {
		t.Fatalf("max intensity: got %d, want %d", v.MaxIntensity, n)
	}

	// Gray has zero chrominance; all mass must land within one cell of
	// the exact center (floor((0+0.5)*255) = 127, center = 128).
	center := v.Size / 2
	var near uint32
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			near += v.At(center+dx, center+dy)
		}
	}
	if near != n {
		t.Errorf("mass near center: got %d, want %d", near, n)
	}
}

func TestAnalyzeVectorscope_Primaries(t *testing.T) {
	const n = 10 * 10
	center := 128

	for _, tc := range []struct {
		name    string
		r, g, b byte
	}{
		{"red", 255, 0, 0},
		{"green", 0, 255, 0},
		{"blue", 0, 0, 255},
	} {
		buf := solidBuffer(10, 10, tc.r, tc.g, tc.b)
		v := AnalyzeVectorscope(buf, 256, 1)

		if v.MaxIntensity != n {
			t.Errorf("%s: max intensity %d, want %d", tc.name, v.MaxIntensity, n)
		}
		if got := v.At(center, center); got != 0 {
			t.Errorf("%s: center cell %d, want 0", tc.name, got)
		}

		var total uint64
		for _, c := range v.Cells {
			total += uint64(c)
		}
		if total != n {
			t.Errorf("%s: total mass %d, want %d", tc.name, total, n)
		}
	}
}

func TestAnalyzeVectorscope_GridShape(t *testing.T) {
	buf := solidBuffer(4, 4, 200, 40, 90)

	v := AnalyzeVectorscope(buf, 64, 1)

	if v.Size != 64 || len(v.Cells) != 64*64 {
		t.Fatalf("grid: size %d, %d cells", v.Size, len(v.Cells))
	}
	rows := v.Rows()
	if len(rows) != 64 || len(rows[0]) != 64 {
		t.Fatalf("rows: %d×%d", len(rows), len(rows[0]))
	}

	// Rows must alias the flat buffer, index-compatible with At.
	for y := 0; y < v.Size; y++ {
		for x := 0; x < v.Size; x++ {
			if rows[y][x] != v.At(x, y) {
				t.Fatalf("rows[%d][%d] != At(%d, %d)", y, x, x, y)
			}
		}
	}
}

func TestAnalyzeVectorscope_EmptyBuffer(t *testing.T) {
	v := AnalyzeVectorscope(emptyBuffer(), 256, 1)

	if v.MaxIntensity != 0 {
		t.Errorf("max intensity: got %d, want 0", v.MaxIntensity)
	}
	for _, c := range v.Cells {
		if c != 0 {
			t.Fatal("degenerate buffer produced non-zero cells")
		}
	}
}
