package param

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Values is a plain copy of every parameter, indexed by ID.
type Values [Count]float64

// Set stores the current value of every parameter in lock-free cells.
//
// Writes are single-writer; reads may happen from any goroutine and see the
// most recent completed write, or an older one.
type Set struct {
	cells [Count]atomic.Uint64
}

// NewSet returns a Set initialized to the default values.
func NewSet() *Set {
	s := &Set{}
	s.Reset()

	return s
}

// Value returns the current value of id. Unknown IDs return 0.
func (s *Set) Value(id ID) float64 {
	if !id.Valid() {
		return 0
	}

	return math.Float64frombits(s.cells[id].Load())
}

// SetValue stores v for id after clamping it to the parameter range.
// NaN is rejected and leaves the cell unchanged.
func (s *Set) SetValue(id ID, v float64) error {
	if !id.Valid() {
		return fmt.Errorf("param: invalid id %d", int(id))
	}
	if math.IsNaN(v) {
		return fmt.Errorf("param: %s value is NaN", id)
	}

	s.cells[id].Store(math.Float64bits(infos[id].Clamp(v)))

	return nil
}

// Nudge adds delta to the current value of id, clamped to range, and
// returns the stored value.
func (s *Set) Nudge(id ID, delta float64) (float64, error) {
	if !id.Valid() {
		return 0, fmt.Errorf("param: invalid id %d", int(id))
	}

	v := infos[id].Clamp(s.Value(id) + delta)
	s.cells[id].Store(math.Float64bits(v))

	return v, nil
}

// Snapshot returns a copy of every value.
func (s *Set) Snapshot() Values {
	var out Values
	for i := range out {
		out[i] = math.Float64frombits(s.cells[i].Load())
	}

	return out
}

// Apply stores every value of v, clamping each one. NaN entries are skipped.
func (s *Set) Apply(v Values) {
	for i, x := range v {
		if math.IsNaN(x) {
			continue
		}
		s.cells[i].Store(math.Float64bits(infos[i].Clamp(x)))
	}
}

// Reset restores every parameter to its default value.
func (s *Set) Reset() {
	for i := range s.cells {
		s.cells[i].Store(math.Float64bits(infos[i].Default))
	}
}

// Defaults returns the default value of every parameter.
func Defaults() Values {
	var out Values
	for i := range out {
		out[i] = infos[i].Default
	}

	return out
}
