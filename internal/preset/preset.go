// Package preset bundles analysis parameters for common monitoring
// scenarios so callers don't hand-tune strides per resolution.
package preset

import "github.com/AnyUserName/vscope-cli/internal/scope"

// Preset defines scope analysis parameters for a target scenario.
type Preset struct {
	Name            string
	WaveformWidth   int
	VectorscopeSize int
	SampleRate      int // pixel/row stride
	MaxWidth        int // downscale cap before analysis, 0 = analyze full-res
}

// Built-in presets.
var presets = map[string]Preset{
	"full": {
		Name:            "full",
		WaveformWidth:   256,
		VectorscopeSize: 256,
		SampleRate:      1,
	},
	"preview": {
		Name:            "preview",
		WaveformWidth:   256,
		VectorscopeSize: 256,
		SampleRate:      4,
		MaxWidth:        1280,
	},
	"proxy": {
		Name:            "proxy",
		WaveformWidth:   128,
		VectorscopeSize: 128,
		SampleRate:      8,
		MaxWidth:        640,
	},
}

// Get returns a preset by name. Falls back to full if unknown.
func Get(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	p := presets["full"]
	p.Name = name // preserve requested name
	return p
}

// Names lists the built-in preset names for help output.
func Names() []string {
	return []string{"full", "preview", "proxy"}
}

// Options maps the preset onto engine options.
func (p Preset) Options() scope.Options {
	return scope.Options{
		WaveformWidth:   p.WaveformWidth,
		VectorscopeSize: p.VectorscopeSize,
		SampleRate:      p.SampleRate,
	}
}
