package hilbert

import (
	"math"
	"testing"

	"github.com/cwbudde/hilbert-envelope/dsp/window"
)

func TestDesignKernelAntisymmetric(t *testing.T) {
	for _, w := range []Window{WindowRectangular, WindowHann, WindowHamming, WindowBlackman, WindowKaiser} {
		k, err := DesignKernel(31, w)
		if err != nil {
			t.Fatalf("%v: DesignKernel() error = %v", w, err)
		}

		h := k.ImpulseResponse()
		center := k.GroupDelay()
		if h[center] != 0 {
			t.Fatalf("%v: center tap = %v, want 0", w, h[center])
		}
		for m := 1; m <= center; m++ {
			if math.Abs(h[center+m]+h[center-m]) > 1e-12 {
				t.Fatalf("%v: taps not antisymmetric at offset %d: %v vs %v", w, m, h[center+m], h[center-m])
			}
			if m%2 == 0 && h[center+m] != 0 {
				t.Fatalf("%v: even offset %d should be zero", w, m)
			}
		}
	}
}

func TestDesignKernelRectangularMatchesIdeal(t *testing.T) {
	k, err := DesignKernel(7, WindowRectangular)
	if err != nil {
		t.Fatalf("DesignKernel() error = %v", err)
	}

	h := k.ImpulseResponse()
	want := []float64{2 / (-3 * math.Pi), 0, 2 / (-math.Pi), 0, 2 / math.Pi, 0, 2 / (3 * math.Pi)}
	for i := range want {
		if math.Abs(h[i]-want[i]) > 1e-15 {
			t.Fatalf("h[%d] = %v, want %v", i, h[i], want[i])
		}
	}
}

func TestDesignKernelValidation(t *testing.T) {
	if _, err := DesignKernel(20, WindowHann); err == nil {
		t.Fatal("expected error for even length")
	}
	if _, err := DesignKernel(1, WindowHann); err == nil {
		t.Fatal("expected error for length 1")
	}
	if _, err := DesignKernel(21, Window(9)); err == nil {
		t.Fatal("expected error for invalid window")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset Preset
		length int
	}{
		{PresetReference, 21},
		{PresetBalanced, 63},
		{PresetPrecise, 127},
	}

	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			k, err := PresetKernel(tt.preset)
			if err != nil {
				t.Fatalf("PresetKernel() error = %v", err)
			}
			if k.Len() != tt.length {
				t.Fatalf("Len() = %d, want %d", k.Len(), tt.length)
			}

			parsed, err := ParsePreset(tt.preset.String())
			if err != nil || parsed != tt.preset {
				t.Fatalf("ParsePreset(%q) = %v, %v", tt.preset.String(), parsed, err)
			}
		})
	}

	if _, err := PresetKernel(Preset(7)); err == nil {
		t.Fatal("expected error for invalid preset")
	}
	if _, err := ParsePreset("fast"); err == nil {
		t.Fatal("expected error for unknown preset name")
	}
}

func TestParseWindow(t *testing.T) {
	for _, w := range []Window{WindowRectangular, WindowHann, WindowHamming, WindowBlackman, WindowKaiser} {
		got, err := ParseWindow(w.String())
		if err != nil || got != w {
			t.Fatalf("ParseWindow(%q) = %v, %v", w.String(), got, err)
		}
	}
	if got, err := ParseWindow("hanning"); err != nil || got != WindowHann {
		t.Fatalf("ParseWindow(hanning) = %v, %v", got, err)
	}
	if _, err := ParseWindow("tukey"); err == nil {
		t.Fatal("expected error for unsupported window")
	}
	if Window(9).String() != "unknown" {
		t.Fatalf("Window(9).String() = %q", Window(9).String())
	}
}

func TestDesignKernelTaperMatchesWindow(t *testing.T) {
	const length = 15

	ideal, err := DesignKernel(length, WindowRectangular)
	if err != nil {
		t.Fatal(err)
	}
	k, err := DesignKernel(length, WindowBlackman)
	if err != nil {
		t.Fatal(err)
	}

	w := window.Generate(window.TypeBlackman, length)
	h, hi := k.ImpulseResponse(), ideal.ImpulseResponse()
	for d := range h {
		if math.Abs(h[d]-hi[d]*w[d]) > 1e-15 {
			t.Fatalf("h[%d] = %v, want %v", d, h[d], hi[d]*w[d])
		}
	}
}
