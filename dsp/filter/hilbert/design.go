package hilbert

import (
	"fmt"
	"math"

	"github.com/cwbudde/hilbert-envelope/dsp/window"
)

// Window selects the taper applied to the ideal Hilbert kernel.
type Window int

const (
	// WindowRectangular truncates the ideal kernel without tapering.
	WindowRectangular Window = iota
	// WindowHann applies a symmetric Hann taper.
	WindowHann
	// WindowHamming applies a symmetric Hamming taper.
	WindowHamming
	// WindowBlackman applies a symmetric 3-term Blackman taper.
	WindowBlackman
	// WindowKaiser applies a Kaiser taper with beta 8.6.
	WindowKaiser
)

var windowTypes = [...]window.Type{
	WindowRectangular: window.TypeRectangular,
	WindowHann:        window.TypeHann,
	WindowHamming:     window.TypeHamming,
	WindowBlackman:    window.TypeBlackman,
	WindowKaiser:      window.TypeKaiser,
}

func (w Window) valid() bool {
	return w >= WindowRectangular && int(w) < len(windowTypes)
}

func (w Window) String() string {
	if !w.valid() {
		return "unknown"
	}

	return windowTypes[w].String()
}

// ParseWindow maps a window name to a [Window].
func ParseWindow(name string) (Window, error) {
	switch name {
	case "rect":
		return WindowRectangular, nil
	case "hanning":
		return WindowHann, nil
	}

	for w := range windowTypes {
		if windowTypes[w].String() == name {
			return Window(w), nil
		}
	}

	return 0, fmt.Errorf("hilbert: unknown window %q", name)
}

// DesignKernel builds a windowed ideal Hilbert kernel of the given odd length.
// The ideal response is h[m] = 2/(pi*m) for odd m and 0 for even m, where m is
// the offset from the center tap, so the kernel is antisymmetric.
func DesignKernel(length int, w Window) (Kernel, error) {
	if length < 3 || length%2 == 0 {
		return Kernel{}, fmt.Errorf("hilbert: design length must be odd and >= 3: %d", length)
	}
	if !w.valid() {
		return Kernel{}, fmt.Errorf("hilbert: invalid window: %d", w)
	}

	center := (length - 1) / 2
	h := make([]float64, length)
	for d := range length {
		m := d - center
		if m%2 == 0 {
			continue
		}
		h[d] = 2 / (math.Pi * float64(m))
	}

	window.Apply(windowTypes[w], h)

	return Kernel{taps: fromImpulseResponse(h)}, nil
}

// Preset selects a kernel design profile.
type Preset int

const (
	// PresetReference is the 21-tap reference table.
	PresetReference Preset = iota
	// PresetBalanced is a 63-tap Blackman-windowed design.
	PresetBalanced
	// PresetPrecise is a 127-tap Blackman-windowed design with better
	// low-frequency quadrature accuracy at higher CPU cost.
	PresetPrecise
)

func (p Preset) String() string {
	switch p {
	case PresetReference:
		return "reference"
	case PresetBalanced:
		return "balanced"
	case PresetPrecise:
		return "precise"
	default:
		return "unknown"
	}
}

// ParsePreset maps a preset name to a [Preset].
func ParsePreset(name string) (Preset, error) {
	switch name {
	case "reference":
		return PresetReference, nil
	case "balanced":
		return PresetBalanced, nil
	case "precise":
		return PresetPrecise, nil
	default:
		return 0, fmt.Errorf("hilbert: unknown preset %q", name)
	}
}

// PresetKernel returns the kernel for a preset.
func PresetKernel(preset Preset) (Kernel, error) {
	switch preset {
	case PresetReference:
		return ReferenceKernel(), nil
	case PresetBalanced:
		return DesignKernel(63, WindowBlackman)
	case PresetPrecise:
		return DesignKernel(127, WindowBlackman)
	default:
		return Kernel{}, fmt.Errorf("hilbert: invalid preset: %d", preset)
	}
}
