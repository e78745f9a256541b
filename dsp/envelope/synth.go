package envelope

import "math"

const (
	// SidechainScale is the -3 dB factor applied to the envelope in sidechain mode.
	SidechainScale = 0.707
	// DriveScale halves the gain inside the modulation soft clipper.
	DriveScale = 0.5
)

// Synthesize produces one output sample from input and envelope.
//
// Instant and smoothed modes modulate the input by (1-mix) + mix*envelope and
// soft clip with tanh(x*gain*0.5). Sidechain mode emits tanh(envelope*0.707*gain)
// and ignores both input and mix. A final tanh is applied to either branch,
// so the result stays within tanh(1) even for extreme arguments.
func Synthesize(input, envelope, mix, gain float64, mode Mode) float64 {
	var out float64
	if mode == ModeSidechain {
		out = math.Tanh(envelope * SidechainScale * gain)
	} else {
		modulation := (1 - mix) + mix*envelope
		out = math.Tanh(input * modulation * gain * DriveScale)
	}

	return math.Tanh(out)
}
