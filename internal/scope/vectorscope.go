package scope

import "math"

// VectorscopeData is a square accumulation grid over Cb/Cr chrominance.
// Cells is flat row-major (y*Size + x) for cache efficiency; At and Rows
// expose the logical 2D view. The grid center (Size/2) is neutral gray;
// Cb grows to the right, Cr upward (grid y is inverted).
type VectorscopeData struct {
	Size         int      `json:"size"`
	Cells        []uint32 `json:"cells"`
	MaxIntensity uint32   `json:"max_intensity"`
}

// At returns the count at grid column x, row y.
func (v *VectorscopeData) At(x, y int) uint32 {
	return v.Cells[y*v.Size+x]
}

// Rows exposes the grid as logical rows. The rows alias the flat buffer,
// no copying.
func (v *VectorscopeData) Rows() [][]uint32 {
	rows := make([][]uint32, v.Size)
	for y := range rows {
		rows[y] = v.Cells[y*v.Size : (y+1)*v.Size]
	}
	return rows
}

// AnalyzeVectorscope accumulates sampled pixel chrominance into a
// size×size grid. Sampling is the same flat byte-stride walk the histogram
// uses. MaxIntensity is tracked during the pass.
func AnalyzeVectorscope(buf *PixelBuffer, size, sampleRate int) *VectorscopeData {
	if size < 1 {
		size = 1
	}
	if sampleRate < 1 {
		sampleRate = 1
	}

	v := &VectorscopeData{
		Size:  size,
		Cells: make([]uint32, size*size),
	}

	pix := buf.Pix
	step := 4 * sampleRate
	last := size - 1
	scale := float64(last)

	for off := 0; off+4 <= len(pix); off += step {
		cb, cr := ChromaCbCr(pix[off], pix[off+1], pix[off+2])

		x := int(math.Floor((cb + 0.5) * scale))
		y := int(math.Floor((0.5 - cr) * scale))
		if x < 0 {
			x = 0
		} else if x > last {
			x = last
		}
		if y < 0 {
			y = 0
		} else if y > last {
			y = last
		}

		i := y*size + x
		v.Cells[i]++
		if v.Cells[i] > v.MaxIntensity {
			v.MaxIntensity = v.Cells[i]
		}
	}
	return v
}
