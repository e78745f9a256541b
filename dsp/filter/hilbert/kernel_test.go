package hilbert

import (
	"math"
	"testing"
)

func TestReferenceKernel(t *testing.T) {
	k := ReferenceKernel()
	if k.Len() != ReferenceLength {
		t.Fatalf("Len() = %d, want %d", k.Len(), ReferenceLength)
	}
	if k.GroupDelay() != 10 {
		t.Fatalf("GroupDelay() = %d, want 10", k.GroupDelay())
	}

	taps := k.Taps()
	if taps[10] != -0.5 {
		t.Fatalf("center tap = %v, want -0.5", taps[10])
	}
	for i := 1; i < len(taps); i += 2 {
		if taps[i] != 0 {
			t.Fatalf("tap[%d] = %v, want 0", i, taps[i])
		}
	}

	taps[0] = 42
	if k.Taps()[0] == 42 {
		t.Fatal("Taps() must return a copy")
	}
}

func TestNewKernelValidation(t *testing.T) {
	tests := []struct {
		name string
		taps []float64
	}{
		{name: "empty", taps: nil},
		{name: "too short", taps: []float64{1}},
		{name: "even", taps: []float64{1, 0, -1, 0}},
		{name: "NaN", taps: []float64{1, math.NaN(), -1}},
		{name: "Inf", taps: []float64{1, math.Inf(-1), -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewKernel(tt.taps); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	k, err := NewKernel([]float64{0.5, 0, -0.5})
	if err != nil {
		t.Fatalf("NewKernel() error = %v", err)
	}
	if k.Len() != 3 || k.GroupDelay() != 1 {
		t.Fatalf("unexpected kernel shape: len=%d delay=%d", k.Len(), k.GroupDelay())
	}
}

func TestImpulseResponseRoundTrip(t *testing.T) {
	k := ReferenceKernel()
	h := k.ImpulseResponse()
	back := fromImpulseResponse(h)

	for i, c := range k.Taps() {
		if back[i] != c {
			t.Fatalf("tap[%d] = %v, want %v", i, back[i], c)
		}
	}
	if h[0] != -0.0164 || h[1] != -0.0164 || h[11] != -0.5 {
		t.Fatalf("unexpected impulse response head: %v", h[:12])
	}
}

func TestZeroKernel(t *testing.T) {
	var k Kernel
	if !k.IsZero() || k.Len() != 0 || k.GroupDelay() != 0 {
		t.Fatal("zero kernel should report empty shape")
	}
	if len(k.ImpulseResponse()) != 0 {
		t.Fatal("zero kernel impulse response should be empty")
	}
}
