package envelope

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how the detected envelope shapes the output.
type Mode int

const (
	// ModeInstant modulates the input by the raw instantaneous envelope.
	ModeInstant Mode = iota
	// ModeSmoothed modulates the input by the attack/release smoothed envelope.
	ModeSmoothed
	// ModeSidechain replaces the input with the smoothed envelope itself.
	ModeSidechain

	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeInstant:
		return "instant"
	case ModeSmoothed:
		return "smoothed"
	case ModeSidechain:
		return "sidechain"
	default:
		return "unknown"
	}
}

// Smooths reports whether the mode runs the attack/release follower.
func (m Mode) Smooths() bool {
	return m == ModeSmoothed || m == ModeSidechain
}

// ParseMode maps a case-insensitive mode name to a [Mode].
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "instant":
		return ModeInstant, nil
	case "smoothed":
		return ModeSmoothed, nil
	case "sidechain":
		return ModeSidechain, nil
	default:
		return 0, fmt.Errorf("envelope: unknown mode %q", name)
	}
}

// ModeFromValue maps a choice parameter value to the nearest valid mode.
func ModeFromValue(v float64) Mode {
	if math.IsNaN(v) || v <= 0 {
		return ModeInstant
	}
	if v >= float64(modeCount-1) {
		return modeCount - 1
	}

	return Mode(math.Round(v))
}

// Value returns the choice parameter value of m.
func (m Mode) Value() float64 {
	return float64(m)
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}
