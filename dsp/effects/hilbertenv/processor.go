package hilbertenv

import (
	"fmt"

	"github.com/cwbudde/hilbert-envelope/dsp/core"
	"github.com/cwbudde/hilbert-envelope/dsp/delay"
	"github.com/cwbudde/hilbert-envelope/dsp/envelope"
	"github.com/cwbudde/hilbert-envelope/dsp/filter/hilbert"
	"github.com/cwbudde/hilbert-envelope/dsp/param"
	"github.com/sirupsen/logrus"
)

// Processor is a multi-channel Hilbert envelope follower and modulator.
//
// Prepare and Release are lifecycle calls and must not run concurrently
// with Process. Parameters and telemetry may be accessed from any goroutine.
type Processor struct {
	cfg    config
	logger logrus.FieldLogger
	params *param.Set

	filters []*hilbert.FIR
	direct  []*delay.Line
	states  []envelope.ChannelState
	active  int

	coeffs     envelope.Coefficients
	sampleRate float64
	prepared   bool

	tel telemetry
}

// New creates an unprepared Processor. Call Prepare before Process.
func New(opts ...Option) (*Processor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.telemetryChannel >= cfg.maxChannels {
		return nil, fmt.Errorf("hilbertenv: telemetry channel %d outside %d channels",
			cfg.telemetryChannel, cfg.maxChannels)
	}

	nFilters := cfg.maxChannels
	if cfg.sharedDelayLine {
		nFilters = 1
	}

	p := &Processor{
		cfg:     cfg,
		logger:  cfg.logger,
		params:  param.NewSet(),
		filters: make([]*hilbert.FIR, nFilters),
		states:  make([]envelope.ChannelState, cfg.maxChannels),
	}

	for i := range p.filters {
		f, err := hilbert.New(cfg.kernel)
		if err != nil {
			return nil, fmt.Errorf("hilbertenv: %w", err)
		}
		p.filters[i] = f
	}

	if cfg.compensate {
		p.direct = make([]*delay.Line, cfg.maxChannels)
		for i := range p.direct {
			d, err := delay.New(cfg.kernel.GroupDelay())
			if err != nil {
				return nil, fmt.Errorf("hilbertenv: %w", err)
			}
			p.direct[i] = d
		}
	}

	p.logger.WithFields(logrus.Fields{
		"taps":         cfg.kernel.Len(),
		"max_channels": cfg.maxChannels,
		"shared_line":  cfg.sharedDelayLine,
		"compensated":  cfg.compensate,
	}).Debug("hilbertenv: processor created")

	return p, nil
}

// Prepare readies the processor for a stream at sampleRate. It clears every
// filter delay line, channel state and telemetry cell and snaps the
// smoothing coefficients to the current attack and release times, so a
// second Prepare at another rate starts from a clean state.
func (p *Processor) Prepare(sampleRate float64, blockSizeHint int) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("hilbertenv: sample rate must be positive and finite: %f", sampleRate)
	}
	if blockSizeHint < 0 {
		return fmt.Errorf("hilbertenv: block size hint must be >= 0: %d", blockSizeHint)
	}

	v := p.params.Snapshot()
	if err := p.coeffs.Prepare(sampleRate, v[param.Attack], v[param.Release]); err != nil {
		return fmt.Errorf("hilbertenv: %w", err)
	}

	for _, f := range p.filters {
		f.Reset()
	}
	for _, d := range p.direct {
		d.Reset()
	}

	peakRelease := p.coeffs.PeakRelease(v[param.Release])
	for i := range p.states {
		p.states[i] = envelope.ChannelState{PeakRelease: peakRelease}
	}
	p.active = 0

	p.tel.reset()
	p.sampleRate = sampleRate
	p.prepared = true

	p.logger.WithFields(logrus.Fields{
		"sample_rate": sampleRate,
		"block_size":  blockSizeHint,
		"attack":      p.coeffs.CurrentAttack,
		"release":     p.coeffs.CurrentRelease,
	}).Info("hilbertenv: prepared")

	return nil
}

// Release tears the stream down. All state is cleared and Process returns
// ErrNotPrepared until the next Prepare.
func (p *Processor) Release() {
	for _, f := range p.filters {
		f.Reset()
	}
	for _, d := range p.direct {
		d.Reset()
	}
	for i := range p.states {
		p.states[i] = envelope.ChannelState{}
	}
	p.active = 0
	p.tel.reset()
	p.prepared = false

	p.logger.Info("hilbertenv: released")
}

// Process runs numSamples of every channel through the pipeline in place.
// On error the buffers are left untouched.
func (p *Processor) Process(channels [][]float64, numSamples int) error {
	if err := p.check(channels, numSamples); err != nil {
		return err
	}

	p.run(channels, channels, numSamples)

	return nil
}

// ProcessTo is the out-of-place form of Process: src is read and dst is
// written. dst and src must have the same channel count.
func (p *Processor) ProcessTo(dst, src [][]float64, numSamples int) error {
	if err := p.check(src, numSamples); err != nil {
		return err
	}
	if len(dst) != len(src) {
		return ErrShortBuffer
	}
	for _, ch := range dst {
		if len(ch) < numSamples {
			return ErrShortBuffer
		}
	}

	p.run(dst, src, numSamples)

	return nil
}

func (p *Processor) check(channels [][]float64, numSamples int) error {
	if !p.prepared {
		return ErrNotPrepared
	}
	if len(channels) > p.cfg.maxChannels {
		return ErrTooManyChannels
	}
	if numSamples < 0 {
		return ErrShortBuffer
	}
	for _, ch := range channels {
		if len(ch) < numSamples {
			return ErrShortBuffer
		}
	}

	return nil
}

func (p *Processor) run(dst, src [][]float64, numSamples int) {
	mix := p.params.Value(param.Mix)
	gain := p.params.Value(param.Gain)
	mode := envelope.ModeFromValue(p.params.Value(param.Mode))
	release := p.params.Value(param.Release)

	p.coeffs.Update(p.params.Value(param.Attack), release)
	attack, rel := p.coeffs.CurrentAttack, p.coeffs.CurrentRelease
	peakRelease := p.coeffs.PeakRelease(release)

	p.resize(len(src))

	var sum, blockPeak float64
	decimation := p.cfg.telemetryDecimation

	for ch := range src {
		in, out := src[ch][:numSamples], dst[ch][:numSamples]
		st := &p.states[ch]
		st.PeakRelease = peakRelease

		f := p.filters[0]
		if !p.cfg.sharedDelayLine {
			f = p.filters[ch]
		}
		var d *delay.Line
		if p.direct != nil {
			d = p.direct[ch]
		}
		publish := ch == p.cfg.telemetryChannel

		for i, x := range in {
			q := f.Push(x)
			if d != nil {
				x = d.Process(x)
			}

			env := envelope.Detect(x, q)
			if mode.Smooths() {
				env = envelope.Smooth(env, st, attack, rel)
			}
			peak := envelope.TrackPeak(env, st)

			if env > blockPeak {
				blockPeak = env
			}
			sum += env

			out[i] = envelope.Synthesize(x, env, mix, gain, mode)

			if publish && i%decimation == 0 {
				p.tel.publish(env, peak)
			}
		}
	}

	if n := len(src) * numSamples; n > 0 {
		p.tel.publishBlock(sum/float64(n), blockPeak)
	} else {
		p.tel.publishBlock(0, blockPeak)
	}
}

// resize makes the active channel view match n channels. Channels entering
// the view start from zero: follower state, their own filter history and
// their direct-path delay. A shared delay line is left alone.
func (p *Processor) resize(n int) {
	for i := p.active; i < n; i++ {
		p.states[i] = envelope.ChannelState{}
		if !p.cfg.sharedDelayLine {
			p.filters[i].Reset()
		}
		if p.direct != nil {
			p.direct[i].Reset()
		}
	}
	p.active = n
}

// ReadCurrentEnvelope returns the most recently published envelope of the
// telemetry channel, clamped to [0, 1].
func (p *Processor) ReadCurrentEnvelope() float64 {
	return p.tel.current.load()
}

// ReadPeakEnvelope returns the most recently published peak hold of the
// telemetry channel, clamped to [0, 1].
func (p *Processor) ReadPeakEnvelope() float64 {
	return p.tel.peak.load()
}

// BlockLevels returns the mean envelope over every channel and sample of
// the last block and the largest envelope value in it.
func (p *Processor) BlockLevels() (mean, peak float64) {
	return p.tel.blockMean.load(), p.tel.blockPeak.load()
}

// ResetPeak zeroes the published peak values. Channel peak hold state is
// not affected.
func (p *Processor) ResetPeak() {
	p.tel.resetPeak()
}

// Parameters returns the parameter store read by Process.
func (p *Processor) Parameters() *param.Set {
	return p.params
}

// SetParameter stores a clamped parameter value. It takes effect at the
// next block.
func (p *Processor) SetParameter(id param.ID, value float64) error {
	return p.params.SetValue(id, value)
}

// Mode returns the output mode selected by the current parameter value.
func (p *Processor) Mode() envelope.Mode {
	return envelope.ModeFromValue(p.params.Value(param.Mode))
}

// ChannelState returns a copy of the follower state of channel ch. It is
// only meaningful between Process calls.
func (p *Processor) ChannelState(ch int) (envelope.ChannelState, bool) {
	if ch < 0 || ch >= p.active {
		return envelope.ChannelState{}, false
	}

	return p.states[ch], true
}

// ActiveChannels returns the channel count of the last processed block.
func (p *Processor) ActiveChannels() int {
	return p.active
}

// Coefficients returns a copy of the smoothing coefficients.
func (p *Processor) Coefficients() envelope.Coefficients {
	return p.coeffs
}

// Kernel returns the quadrature kernel.
func (p *Processor) Kernel() hilbert.Kernel {
	return p.cfg.kernel
}

// Latency returns the direct path delay in samples: the kernel group delay
// when compensation is enabled, 0 otherwise.
func (p *Processor) Latency() int {
	if p.direct == nil {
		return 0
	}

	return p.cfg.kernel.GroupDelay()
}

// SampleRate returns the prepared sample rate, or 0 when unprepared.
func (p *Processor) SampleRate() float64 {
	if !p.prepared {
		return 0
	}

	return p.sampleRate
}

// Prepared reports whether Process may be called.
func (p *Processor) Prepared() bool {
	return p.prepared
}
