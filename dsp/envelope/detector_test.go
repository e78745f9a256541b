package envelope

import (
	"math"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		input      float64
		quadrature float64
		want       float64
	}{
		{name: "silence", input: 0, quadrature: 0, want: 0},
		{name: "in-phase only", input: -0.5, quadrature: 0, want: 0.5},
		{name: "quadrature only", input: 0, quadrature: 0.25, want: 0.25},
		{name: "3-4-5", input: 0.3, quadrature: -0.4, want: 0.5},
		{name: "squares overflow", input: 1e200, quadrature: 1e200, want: MaxEnvelope},
		{name: "above ceiling", input: 2e3, quadrature: 0, want: MaxEnvelope},
		{name: "infinite quadrature", input: 0, quadrature: math.Inf(-1), want: MaxEnvelope},
		{name: "nan quadrature", input: 0.5, quadrature: math.NaN(), want: MaxEnvelope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.input, tt.quadrature)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Detect(%v, %v) = %v, want %v", tt.input, tt.quadrature, got, tt.want)
			}
		})
	}
}

func TestDetectPhaseIndependentForIdealQuadrature(t *testing.T) {
	const amp = 0.6
	for i := range 64 {
		phase := 2 * math.Pi * float64(i) / 64
		env := Detect(amp*math.Cos(phase), amp*math.Sin(phase))
		if math.Abs(env-amp) > 1e-12 {
			t.Fatalf("phase %d: envelope = %v, want %v", i, env, amp)
		}
	}
}

func TestFollowerStaysFiniteAfterHugeSample(t *testing.T) {
	st := ChannelState{PeakRelease: PeakReleaseCoeff(100, 48000)}
	attack, release := TimeCoeff(10, 48000), TimeCoeff(100, 48000)

	env := Smooth(Detect(1e200, -1.5e200), &st, attack, release)
	TrackPeak(env, &st)
	if st.Smoothed > MaxEnvelope || st.PeakHold != MaxEnvelope {
		t.Fatalf("state after spike = %+v", st)
	}

	for range 48000 {
		env = Smooth(Detect(0, 0), &st, attack, release)
		TrackPeak(env, &st)
	}
	if math.IsInf(st.Smoothed, 0) || math.IsNaN(st.Smoothed) || st.Smoothed > 1 {
		t.Fatalf("smoothed envelope did not decay: %v", st.Smoothed)
	}
	if got := Synthesize(0, st.Smoothed, 1, 1, ModeSmoothed); got != 0 {
		t.Fatalf("silent input after spike gave %v", got)
	}
}
