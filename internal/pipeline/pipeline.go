// Package pipeline runs scope analysis over batches of still frames:
// scan, decode, analyze in parallel, collect into a report.
package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/vscope-cli/internal/preset"
	"github.com/AnyUserName/vscope-cli/internal/report"
)

// Config holds all parameters for an analysis run.
type Config struct {
	Input   string        // file or directory
	Preset  preset.Preset // resolved preset (flag overrides already applied)
	Workers int
	Verbose bool
}

// Pipeline orchestrates batch frame analysis.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{cfg: cfg}
}

// Run scans the input, analyzes every frame and returns the report.
// Partial failures are reported to stderr but only an all-failed run
// returns an error.
func (p *Pipeline) Run() (*report.Report, error) {
	sources, err := ScanSources(p.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.Input)
	}

	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[vscope] found %d frames\n", len(sources))
	}

	results := make([]frameResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			if p.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[vscope] analyzing: %s\n", s.Key)
			}
			results[idx] = analyzeSource(s, p.cfg.Preset)
		}(i, src)
	}
	wg.Wait()

	r := report.New(p.cfg.Preset.Name)
	r.RunInfo = &report.RunInfo{
		Workers:         p.cfg.Workers,
		SampleRate:      p.cfg.Preset.SampleRate,
		WaveformWidth:   p.cfg.Preset.WaveformWidth,
		VectorscopeSize: p.cfg.Preset.VectorscopeSize,
	}

	var errs []error
	for _, res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		r.Frames[res.key] = res.record
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[vscope] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d frames failed to analyze", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[vscope] warning: %d of %d frames had errors\n",
			len(errs), len(sources))
	}

	r.ComputeStats()
	return r, nil
}
