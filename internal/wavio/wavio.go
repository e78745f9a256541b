// Package wavio reads and writes PCM WAV files as planar float64 audio.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

// Audio is a decoded file: one slice per channel, samples in [-1, 1).
type Audio struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float64
}

// Frames returns the number of samples per channel.
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}

	return len(a.Channels[0])
}

// Read decodes an integer PCM WAV stream with 16, 24 or 32 bits per sample.
func Read(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New("wavio: not a valid wav stream")
	}
	if dec.WavAudioFormat != pcmFormat {
		return nil, fmt.Errorf("wavio: unsupported audio format %d, want PCM", dec.WavAudioFormat)
	}
	if err := checkBitDepth(int(dec.BitDepth)); err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode: %w", err)
	}

	numCh := buf.Format.NumChannels
	if numCh <= 0 {
		return nil, fmt.Errorf("wavio: invalid channel count %d", numCh)
	}

	frames := len(buf.Data) / numCh
	scale := 1 / fullScale(buf.SourceBitDepth)

	out := &Audio{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   buf.SourceBitDepth,
		Channels:   make([][]float64, numCh),
	}
	for ch := range out.Channels {
		samples := make([]float64, frames)
		for i := range samples {
			samples[i] = float64(buf.Data[i*numCh+ch]) * scale
		}
		out.Channels[ch] = samples
	}

	return out, nil
}

type writeConfig struct {
	dither bool
	seed   int64
}

// WriteOption configures Write.
type WriteOption func(*writeConfig)

// WithDither adds 2 LSB peak-to-peak TPDF dither before quantization. The
// seed makes the noise reproducible.
func WithDither(seed int64) WriteOption {
	return func(c *writeConfig) {
		c.dither = true
		c.seed = seed
	}
}

// Write encodes a as integer PCM at a.BitDepth. Samples are clipped to the
// representable range.
func Write(w io.WriteSeeker, a *Audio, opts ...WriteOption) error {
	var cfg writeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := checkBitDepth(a.BitDepth); err != nil {
		return err
	}
	if a.SampleRate <= 0 {
		return fmt.Errorf("wavio: invalid sample rate %d", a.SampleRate)
	}

	numCh := len(a.Channels)
	if numCh == 0 {
		return errors.New("wavio: no channels")
	}

	frames := a.Frames()
	for ch, samples := range a.Channels {
		if len(samples) != frames {
			return fmt.Errorf("wavio: channel %d has %d frames, want %d", ch, len(samples), frames)
		}
	}

	full := fullScale(a.BitDepth)
	data := make([]int, frames*numCh)
	scaled := make([]float64, frames)

	var state *vecmath.DitherState
	if cfg.dither {
		state = vecmath.NewDitherState(cfg.seed)
	}

	for ch, samples := range a.Channels {
		for i, v := range samples {
			if math.IsNaN(v) {
				v = 0
			}
			scaled[i] = v * full
		}
		if state != nil {
			vecmath.AddDitherTPDF(scaled, 1, state)
		}
		for i, v := range scaled {
			data[i*numCh+ch] = quantize(v, full)
		}
	}

	enc := wav.NewEncoder(w, a.SampleRate, a.BitDepth, numCh, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numCh, SampleRate: a.SampleRate},
		Data:           data,
		SourceBitDepth: a.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize: %w", err)
	}

	return nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// WriteFile encodes a into a new file at path.
func WriteFile(path string, a *Audio, opts ...WriteOption) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, a, opts...)
}

func checkBitDepth(bits int) error {
	switch bits {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("wavio: unsupported bit depth %d", bits)
	}
}

func fullScale(bits int) float64 {
	return float64(int64(1) << (bits - 1))
}

// quantize rounds a sample already scaled to LSB units and clips it to the
// signed range of full.
func quantize(v, full float64) int {
	q := math.Round(v)
	if q > full-1 {
		q = full - 1
	}
	if q < -full {
		q = -full
	}

	return int(q)
}
