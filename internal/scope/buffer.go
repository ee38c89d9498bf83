package scope

// PixelBuffer is one decoded frame: RGBA bytes, row-major, top-to-bottom,
// len(Pix) == Width*Height*4. The buffer is owned by the caller and never
// mutated here. Length validation against the dimensions belongs to the
// frame producer, not the engine.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// Options control the accuracy/latency trade-off of a frame analysis.
// The zero value is replaced by defaults, see DefaultOptions.
type Options struct {
	WaveformWidth   int // output columns for waveform and parade
	VectorscopeSize int // side length of the Cb/Cr grid
	SampleRate      int // pixel/row stride; larger = faster, coarser
}

// DefaultOptions matches the scope displays' native resolution.
func DefaultOptions() Options {
	return Options{
		WaveformWidth:   256,
		VectorscopeSize: 256,
		SampleRate:      1,
	}
}

// normalized substitutes defaults for unset fields and clamps the stride.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.WaveformWidth < 1 {
		o.WaveformWidth = def.WaveformWidth
	}
	if o.VectorscopeSize < 1 {
		o.VectorscopeSize = def.VectorscopeSize
	}
	if o.SampleRate < 1 {
		o.SampleRate = 1
	}
	return o
}
