package hilbertenv

import (
	"io"

	"github.com/cwbudde/hilbert-envelope/dsp/filter/hilbert"
	"github.com/sirupsen/logrus"
)

const (
	defaultMaxChannels         = 2
	defaultTelemetryDecimation = 10
)

type config struct {
	maxChannels         int
	kernel              hilbert.Kernel
	sharedDelayLine     bool
	compensate          bool
	telemetryDecimation int
	telemetryChannel    int
	logger              logrus.FieldLogger
}

func defaultConfig() config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return config{
		maxChannels:         defaultMaxChannels,
		kernel:              hilbert.ReferenceKernel(),
		telemetryDecimation: defaultTelemetryDecimation,
		logger:              discard,
	}
}

// Option configures a Processor at construction time. Invalid values are
// ignored.
type Option func(*config)

// WithMaxChannels sets the largest channel count Process accepts.
func WithMaxChannels(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxChannels = n
		}
	}
}

// WithKernel replaces the reference 21-tap quadrature kernel.
func WithKernel(k hilbert.Kernel) Option {
	return func(c *config) {
		if !k.IsZero() {
			c.kernel = k
		}
	}
}

// WithSharedDelayLine makes every channel push into one filter delay line,
// in channel order, so later channels see the history of earlier ones. The
// default gives each channel its own delay line.
func WithSharedDelayLine(shared bool) Option {
	return func(c *config) {
		c.sharedDelayLine = shared
	}
}

// WithDirectPathCompensation delays the in-phase path by the kernel group
// delay before it is combined with the quadrature output. Off by default.
func WithDirectPathCompensation(enabled bool) Option {
	return func(c *config) {
		c.compensate = enabled
	}
}

// WithTelemetryDecimation publishes telemetry every n samples of a block.
func WithTelemetryDecimation(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.telemetryDecimation = n
		}
	}
}

// WithTelemetryChannel selects the channel whose envelope is published.
func WithTelemetryChannel(ch int) Option {
	return func(c *config) {
		if ch >= 0 {
			c.telemetryChannel = ch
		}
	}
}

// WithLogger sets the logger used by lifecycle calls. Process never logs.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
