package envelope

import "github.com/cwbudde/hilbert-envelope/dsp/core"

// ChannelState holds the follower and peak-hold state of one audio channel.
type ChannelState struct {
	// Smoothed is the attack/release smoothed envelope.
	Smoothed float64
	// PeakHold is the instant-attack, exponentially decaying peak.
	PeakHold float64
	// PeakRelease is the per-sample decay factor applied to PeakHold.
	PeakRelease float64
}

// Reset zeroes the follower state. PeakRelease is kept.
func (s *ChannelState) Reset() {
	s.Smoothed = 0
	s.PeakHold = 0
}

// Smooth advances the one-pole follower by one sample and returns the new
// smoothed value. The attack coefficient applies while instantaneous is above
// the current smoothed value, the release coefficient otherwise; the branch
// is chosen again on every sample.
func Smooth(instantaneous float64, s *ChannelState, attack, release float64) float64 {
	c := release
	if instantaneous > s.Smoothed {
		c = attack
	}

	s.Smoothed = core.FlushDenormals(c*s.Smoothed + (1-c)*instantaneous)

	return s.Smoothed
}

// TrackPeak updates the peak hold with envelope and returns the new peak.
// The peak jumps to envelope immediately when exceeded and otherwise decays
// by PeakRelease.
func TrackPeak(envelope float64, s *ChannelState) float64 {
	if envelope > s.PeakHold {
		s.PeakHold = envelope
	} else {
		s.PeakHold = core.FlushDenormals(s.PeakHold * s.PeakRelease)
	}

	return s.PeakHold
}
