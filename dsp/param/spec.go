package param

import (
	"fmt"
	"math"
)

// Info describes the range and presentation of a parameter.
type Info struct {
	ID      ID
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Default float64
	// Steps is the number of discrete steps for choice parameters, 0 for
	// continuous ones.
	Steps int
}

var infos = [Count]Info{
	Mix:     {ID: Mix, Name: "Mix", Min: 0, Max: 1, Default: 0.25},
	Gain:    {ID: Gain, Name: "Gain", Min: 0, Max: 4, Default: 1},
	Attack:  {ID: Attack, Name: "Attack", Unit: "ms", Min: 1, Max: 500, Default: 10},
	Release: {ID: Release, Name: "Release", Unit: "ms", Min: 1, Max: 2000, Default: 100},
	Mode:    {ID: Mode, Name: "Mode", Min: 0, Max: 2, Default: 0, Steps: 2},
}

var modeLabels = [...]string{"Instant", "Smoothed", "Sidechain"}

// Describe returns the Info for id. Unknown IDs return the zero Info and false.
func Describe(id ID) (Info, bool) {
	if !id.Valid() {
		return Info{}, false
	}

	return infos[id], true
}

// Clamp limits v to the range of the parameter. Choice parameters are
// rounded to the nearest step. NaN maps to the default value.
func (i Info) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return i.Default
	}

	v = math.Max(i.Min, math.Min(i.Max, v))
	if i.Steps > 0 {
		v = math.Round(v)
	}

	return v
}

// Format renders v for display in the parameter's unit.
func Format(id ID, v float64) string {
	switch id {
	case Mix:
		return fmt.Sprintf("%.0f%%", v*100)
	case Gain:
		return fmt.Sprintf("%.2fx", v)
	case Attack, Release:
		if v >= 1000 {
			return fmt.Sprintf("%.2f s", v/1000)
		}
		return fmt.Sprintf("%.1f ms", v)
	case Mode:
		idx := int(infos[Mode].Clamp(v))
		return modeLabels[idx]
	default:
		return fmt.Sprintf("%g", v)
	}
}
