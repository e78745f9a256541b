package param

import (
	"fmt"
	"strings"
)

// ID identifies a processor parameter.
type ID int

const (
	// Mix blends dry input with the envelope-modulated signal, [0, 1].
	Mix ID = iota
	// Gain is the linear output drive, [0, 4].
	Gain
	// Attack is the follower attack time in milliseconds, [1, 500].
	Attack
	// Release is the follower release time in milliseconds, [1, 2000].
	Release
	// Mode is the output mode choice index: 0 instant, 1 smoothed, 2 sidechain.
	Mode

	// Count is the number of parameters.
	Count
)

var names = [Count]string{
	Mix:     "mix",
	Gain:    "gain",
	Attack:  "attack",
	Release: "release",
	Mode:    "mode",
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("param(%d)", int(id))
	}

	return names[id]
}

// Valid reports whether id names a known parameter.
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

// ParseID maps a case-insensitive parameter name to its ID.
func ParseID(name string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for id, n := range names {
		if n == key {
			return ID(id), nil
		}
	}

	return 0, fmt.Errorf("param: unknown parameter %q", name)
}

// IDs returns every parameter ID in declaration order.
func IDs() []ID {
	out := make([]ID, Count)
	for i := range out {
		out[i] = ID(i)
	}

	return out
}
