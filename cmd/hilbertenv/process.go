package main

import (
	"fmt"
	"time"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/hilbert-envelope/dsp/core"
	"github.com/cwbudde/hilbert-envelope/dsp/effects/hilbertenv"
	"github.com/cwbudde/hilbert-envelope/internal/wavio"
	"github.com/sirupsen/logrus"
)

// ProcessCmd renders a WAV file offline.
type ProcessCmd struct {
	Input     string  `arg:"" type:"existingfile" help:"Input WAV file (16, 24 or 32 bit PCM)."`
	Output    string  `arg:"" type:"path" help:"Output WAV file."`
	BlockSize int     `default:"512" env:"HILBERTENV_BLOCK_SIZE" help:"Samples per processing block."`
	Dither    bool    `help:"Add TPDF dither before quantizing the output."`
	Seed      int64   `default:"1" help:"Dither noise seed."`
	Tail      float64 `default:"0" help:"Milliseconds of silence appended so the envelope can decay."`

	ParamFlags  `embed:""`
	KernelFlags `embed:""`
}

// renderStats summarizes an offline render.
type renderStats struct {
	Blocks       int
	Frames       int
	MeanEnvelope float64
	PeakEnvelope float64
	OutputPeak   float64
}

// Run executes the process command.
func (c *ProcessCmd) Run(app *appContext) error {
	start := time.Now()

	in, err := wavio.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Input, err)
	}

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(in.SampleRate)),
		core.WithBlockSize(c.BlockSize),
		core.WithChannels(len(in.Channels)),
	)

	proc, err := newProcessor(cfg.Channels, c.KernelFlags, c.ParamFlags, app.logger)
	if err != nil {
		return err
	}

	tail := core.MillisecondsToSamples(c.Tail, cfg.SampleRate)
	out, stats, err := render(proc, in, cfg, tail)
	if err != nil {
		return err
	}

	var opts []wavio.WriteOption
	if c.Dither {
		opts = append(opts, wavio.WithDither(c.Seed))
	}
	if err := wavio.WriteFile(c.Output, out, opts...); err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}

	app.logger.WithFields(logrus.Fields{
		"input":         c.Input,
		"output":        c.Output,
		"mode":          proc.Mode(),
		"channels":      len(in.Channels),
		"frames":        stats.Frames,
		"blocks":        stats.Blocks,
		"mean_envelope": fmt.Sprintf("%.4f", stats.MeanEnvelope),
		"peak_envelope": fmt.Sprintf("%.4f", stats.PeakEnvelope),
		"output_peak":   fmt.Sprintf("%.1f dBFS", core.LinearToDB(stats.OutputPeak)),
		"latency":       proc.Latency(),
		"elapsed":       time.Since(start).Round(time.Millisecond),
	}).Info("processed")

	return nil
}

// render prepares proc for in and runs every channel through it in blocks of
// cfg.BlockSize, followed by tail frames of silence. The input is not
// modified.
func render(proc *hilbertenv.Processor, in *wavio.Audio, cfg core.ProcessorConfig, tail int) (*wavio.Audio, renderStats, error) {
	var stats renderStats

	if err := proc.Prepare(cfg.SampleRate, cfg.BlockSize); err != nil {
		return nil, stats, err
	}
	defer proc.Release()

	out := &wavio.Audio{
		SampleRate: in.SampleRate,
		BitDepth:   in.BitDepth,
		Channels:   make([][]float64, len(in.Channels)),
	}
	for ch, samples := range in.Channels {
		buf := make([]float64, len(samples)+max(tail, 0))
		copy(buf, samples)
		out.Channels[ch] = buf
	}

	frames := out.Frames()
	views := make([][]float64, len(out.Channels))
	var envSum float64

	for start := 0; start < frames; start += cfg.BlockSize {
		n := min(cfg.BlockSize, frames-start)
		for ch := range views {
			views[ch] = out.Channels[ch][start : start+n]
		}

		if err := proc.Process(views, n); err != nil {
			return nil, stats, fmt.Errorf("block at frame %d: %w", start, err)
		}

		mean, peak := proc.BlockLevels()
		envSum += mean * float64(n)
		stats.PeakEnvelope = max(stats.PeakEnvelope, peak)
		stats.Blocks++
	}

	stats.Frames = frames
	if frames > 0 {
		stats.MeanEnvelope = envSum / float64(frames)
	}
	for _, samples := range out.Channels {
		stats.OutputPeak = max(stats.OutputPeak, vecmath.MaxAbs(samples))
	}

	return out, stats, nil
}
