package envelope

import (
	"fmt"

	"github.com/cwbudde/hilbert-envelope/dsp/core"
)

const (
	// MinCoeff and MaxCoeff bound every smoothing and peak coefficient.
	MinCoeff = 1e-4
	MaxCoeff = 0.9999

	// SlewTimeSeconds is the time constant of the coefficient slew filter.
	SlewTimeSeconds = 0.010

	// PeakReleaseScale stretches the release time for the peak hold decay.
	PeakReleaseScale = 10.0

	minTimeMs = 1e-3

	maxPeakCoeff = 1 - 1e-12
)

// TimeCoeff converts a time constant in milliseconds into the one-pole
// coefficient exp(-1/(t*fs)), clamped to [MinCoeff, MaxCoeff]. The time is
// clamped to a small positive minimum first.
func TimeCoeff(ms, sampleRate float64) float64 {
	if !(ms > minTimeMs) {
		ms = minTimeMs
	}

	return core.Clamp(mathExp(-1/(ms*0.001*sampleRate)), MinCoeff, MaxCoeff)
}

// PeakReleaseCoeff returns the peak hold decay factor for a release time in
// milliseconds: exp(-1/(releaseSeconds*10*fs)), kept in [MinCoeff, 1).
// It is not capped at MaxCoeff.
func PeakReleaseCoeff(releaseMs, sampleRate float64) float64 {
	ms := releaseMs * PeakReleaseScale
	if !(ms > minTimeMs) {
		ms = minTimeMs
	}

	return core.Clamp(mathExp(-1/(ms*0.001*sampleRate)), MinCoeff, maxPeakCoeff)
}

// SlewCoeff returns the block-rate slew factor exp(-1/(0.01*fs)).
func SlewCoeff(sampleRate float64) float64 {
	return mathExp(-1 / (SlewTimeSeconds * sampleRate))
}

// Coefficients converts attack/release times into smoothing coefficients
// once per block and slews the active values toward them so parameter
// automation cannot step the follower's time constant.
type Coefficients struct {
	CurrentAttack  float64
	CurrentRelease float64
	TargetAttack   float64
	TargetRelease  float64

	sampleRate float64
	slew       float64
}

// Prepare sets the sample rate, computes targets and snaps the current
// coefficients onto them.
func (c *Coefficients) Prepare(sampleRate, attackMs, releaseMs float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("envelope: sample rate must be positive and finite: %f", sampleRate)
	}

	c.sampleRate = sampleRate
	c.slew = SlewCoeff(sampleRate)
	c.setTargets(attackMs, releaseMs)
	c.CurrentAttack = c.TargetAttack
	c.CurrentRelease = c.TargetRelease

	return nil
}

// Update recomputes the targets from the current times and moves the active
// coefficients one slew step toward them. Call once per block.
func (c *Coefficients) Update(attackMs, releaseMs float64) {
	if c.sampleRate <= 0 {
		return
	}

	c.setTargets(attackMs, releaseMs)
	c.CurrentAttack = c.slew*c.CurrentAttack + (1-c.slew)*c.TargetAttack
	c.CurrentRelease = c.slew*c.CurrentRelease + (1-c.slew)*c.TargetRelease
}

// SampleRate returns the prepared sample rate, or 0 before Prepare.
func (c *Coefficients) SampleRate() float64 {
	return c.sampleRate
}

// PeakRelease returns the peak hold decay factor at the prepared rate.
func (c *Coefficients) PeakRelease(releaseMs float64) float64 {
	return PeakReleaseCoeff(releaseMs, c.sampleRate)
}

func (c *Coefficients) setTargets(attackMs, releaseMs float64) {
	c.TargetAttack = TimeCoeff(attackMs, c.sampleRate)
	c.TargetRelease = TimeCoeff(releaseMs, c.sampleRate)
}
