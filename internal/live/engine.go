// Package live runs the envelope processor on a full-duplex audio device.
package live

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/hilbert-envelope/dsp/core"
	"github.com/cwbudde/hilbert-envelope/dsp/effects/hilbertenv"
)

const bytesPerSample = 4

// Engine converts interleaved little-endian float32 device buffers to planar
// float64 blocks and runs them through a Processor. All buffers are sized at
// construction so Render does not allocate.
type Engine struct {
	proc      *hilbertenv.Processor
	channels  int
	maxFrames int

	interleaved []float32
	planar      [][]float64

	frames atomic.Uint64
	errors atomic.Uint64
}

// NewEngine creates an Engine for channels interleaved channels and device
// callbacks of up to maxFrames frames. Longer callbacks are split.
func NewEngine(proc *hilbertenv.Processor, channels, maxFrames int) (*Engine, error) {
	if proc == nil {
		return nil, fmt.Errorf("live: processor is nil")
	}
	if channels <= 0 {
		return nil, fmt.Errorf("live: channels must be > 0: %d", channels)
	}
	if maxFrames <= 0 {
		return nil, fmt.Errorf("live: max frames must be > 0: %d", maxFrames)
	}

	return &Engine{
		proc:        proc,
		channels:    channels,
		maxFrames:   maxFrames,
		interleaved: make([]float32, channels*maxFrames),
		planar:      core.EnsurePlanar(nil, channels, maxFrames),
	}, nil
}

// Render is the device data callback. It reads frameCount frames from in,
// processes them and writes the result to out. Missing input reads as
// silence; a processing error writes silence and is counted.
func (e *Engine) Render(out, in []byte, frameCount uint32) {
	total := int(frameCount)
	for start := 0; start < total; start += e.maxFrames {
		n := min(e.maxFrames, total-start)
		e.renderChunk(out, in, start, n)
	}
	e.frames.Add(uint64(total))
}

func (e *Engine) renderChunk(out, in []byte, start, n int) {
	samples := n * e.channels
	base := start * e.channels * bytesPerSample
	buf := e.interleaved[:samples]

	for i := range buf {
		off := base + i*bytesPerSample
		if off+bytesPerSample <= len(in) {
			buf[i] = math.Float32frombits(binary.LittleEndian.Uint32(in[off:]))
		} else {
			buf[i] = 0
		}
	}

	core.DeinterleaveFloat32(e.planar, buf)
	if err := e.proc.Process(e.planar, n); err != nil {
		e.errors.Add(1)
		for i := range buf {
			buf[i] = 0
		}
	} else {
		core.InterleaveFloat32(buf, e.planar)
	}

	for i, v := range buf {
		off := base + i*bytesPerSample
		if off+bytesPerSample > len(out) {
			return
		}
		binary.LittleEndian.PutUint32(out[off:], math.Float32bits(v))
	}
}

// Frames returns the number of frames rendered so far.
func (e *Engine) Frames() uint64 {
	return e.frames.Load()
}

// Errors returns the number of chunks the processor rejected.
func (e *Engine) Errors() uint64 {
	return e.errors.Load()
}

// Channels returns the interleaved channel count.
func (e *Engine) Channels() int {
	return e.channels
}
