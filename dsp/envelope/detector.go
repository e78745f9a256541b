package envelope

// MaxEnvelope caps every detected envelope value, 60 dB above full scale.
// Follower and peak state can never leave the finite range.
const MaxEnvelope = 1e3

// Detect returns the analytic-signal magnitude sqrt(input² + quadrature²),
// limited to MaxEnvelope. Non-finite magnitudes also map to MaxEnvelope.
//
// For a sinusoid of amplitude A and an ideal quadrature partner the result
// is A regardless of phase.
func Detect(input, quadrature float64) float64 {
	env := mathHypot(input, quadrature)
	if !(env <= MaxEnvelope) {
		return MaxEnvelope
	}

	return env
}
