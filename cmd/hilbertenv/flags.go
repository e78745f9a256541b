package main

import (
	"fmt"

	"github.com/cwbudde/hilbert-envelope/dsp/effects/hilbertenv"
	"github.com/cwbudde/hilbert-envelope/dsp/envelope"
	"github.com/cwbudde/hilbert-envelope/dsp/filter/hilbert"
	"github.com/cwbudde/hilbert-envelope/dsp/param"
	"github.com/sirupsen/logrus"
)

// ParamFlags are the initial parameter values shared by process and live.
type ParamFlags struct {
	Mode    string  `default:"instant" enum:"instant,smoothed,sidechain" env:"HILBERTENV_MODE" help:"Output mode (${enum})."`
	Mix     float64 `default:"0.25" env:"HILBERTENV_MIX" help:"Modulation depth, 0 to 1."`
	Gain    float64 `default:"1" env:"HILBERTENV_GAIN" help:"Output gain, 0 to 4."`
	Attack  float64 `default:"10" env:"HILBERTENV_ATTACK" help:"Attack time in ms."`
	Release float64 `default:"100" env:"HILBERTENV_RELEASE" help:"Release time in ms."`
}

// values converts the flags into parameter values. Out of range numbers are
// clamped later by the parameter store.
func (f ParamFlags) values() (param.Values, error) {
	mode, err := envelope.ParseMode(f.Mode)
	if err != nil {
		return param.Values{}, err
	}

	var v param.Values
	v[param.Mix] = f.Mix
	v[param.Gain] = f.Gain
	v[param.Attack] = f.Attack
	v[param.Release] = f.Release
	v[param.Mode] = mode.Value()

	return v, nil
}

// KernelFlags select the quadrature kernel and filter topology.
type KernelFlags struct {
	Preset          string `default:"reference" enum:"reference,balanced,precise" env:"HILBERTENV_PRESET" help:"Kernel preset (${enum})."`
	Taps            int    `help:"Design a windowed kernel with this odd tap count instead of using the preset."`
	Window          string `default:"blackman" enum:"rectangular,hann,hamming,blackman,kaiser" help:"Window for designed kernels (${enum})."`
	SharedDelayLine bool   `help:"Feed every channel through one shared delay line."`
	Compensate      bool   `help:"Delay the direct path by the kernel group delay."`
}

func (f KernelFlags) kernel() (hilbert.Kernel, error) {
	if f.Taps > 0 {
		w, err := hilbert.ParseWindow(f.Window)
		if err != nil {
			return hilbert.Kernel{}, err
		}
		return hilbert.DesignKernel(f.Taps, w)
	}

	preset, err := hilbert.ParsePreset(f.Preset)
	if err != nil {
		return hilbert.Kernel{}, err
	}

	return hilbert.PresetKernel(preset)
}

// newProcessor builds an unprepared processor for channels channels with the
// kernel and initial parameters taken from the flags.
func newProcessor(channels int, kf KernelFlags, pf ParamFlags, logger logrus.FieldLogger) (*hilbertenv.Processor, error) {
	kernel, err := kf.kernel()
	if err != nil {
		return nil, fmt.Errorf("kernel: %w", err)
	}

	values, err := pf.values()
	if err != nil {
		return nil, err
	}

	proc, err := hilbertenv.New(
		hilbertenv.WithMaxChannels(channels),
		hilbertenv.WithKernel(kernel),
		hilbertenv.WithSharedDelayLine(kf.SharedDelayLine),
		hilbertenv.WithDirectPathCompensation(kf.Compensate),
		hilbertenv.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	warnClamped(logger, values)
	proc.Parameters().Apply(values)

	return proc, nil
}

// warnClamped logs every flag value the parameter store will clamp.
func warnClamped(logger logrus.FieldLogger, values param.Values) {
	for _, id := range param.IDs() {
		info, _ := param.Describe(id)
		if v := values[id]; info.Clamp(v) != v {
			logger.WithFields(logrus.Fields{
				"param": id.String(),
				"value": v,
				"used":  info.Clamp(v),
			}).Warn("parameter outside range, clamped")
		}
	}
}
