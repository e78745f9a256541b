package hilbert

import (
	"fmt"
	"math"
)

// ReferenceLength is the tap count of [ReferenceKernel].
const ReferenceLength = 21

var referenceTaps = [ReferenceLength]float64{
	-0.0164, 0, -0.0265, 0, -0.0452, 0, -0.0909, 0,
	-0.3129, 0, -0.5000, 0, -0.3129, 0, -0.0909, 0,
	-0.0452, 0, -0.0265, 0, -0.0164,
}

// Kernel is an immutable odd-length set of FIR taps in delay-line order.
type Kernel struct {
	taps []float64
}

// NewKernel validates and copies taps into a Kernel. The tap count must be
// odd and at least 3, and every tap must be finite.
func NewKernel(taps []float64) (Kernel, error) {
	if len(taps) < 3 {
		return Kernel{}, fmt.Errorf("hilbert: kernel needs at least 3 taps: %d", len(taps))
	}
	if len(taps)%2 == 0 {
		return Kernel{}, fmt.Errorf("hilbert: kernel length must be odd: %d", len(taps))
	}

	for i, c := range taps {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Kernel{}, fmt.Errorf("hilbert: tap[%d] is not finite", i)
		}
	}

	k := Kernel{taps: make([]float64, len(taps))}
	copy(k.taps, taps)

	return k, nil
}

// ReferenceKernel returns the 21-tap reference table.
func ReferenceKernel() Kernel {
	k := Kernel{taps: make([]float64, ReferenceLength)}
	copy(k.taps, referenceTaps[:])

	return k
}

// Len returns the tap count L. A zero Kernel has length 0.
func (k Kernel) Len() int {
	return len(k.taps)
}

// IsZero reports whether k holds no taps.
func (k Kernel) IsZero() bool {
	return len(k.taps) == 0
}

// GroupDelay returns the nominal group delay (L-1)/2 in samples.
func (k Kernel) GroupDelay() int {
	if len(k.taps) == 0 {
		return 0
	}

	return (len(k.taps) - 1) / 2
}

// Taps returns a copy of the taps in delay-line order.
func (k Kernel) Taps() []float64 {
	out := make([]float64, len(k.taps))
	copy(out, k.taps)

	return out
}

// ImpulseResponse returns the taps in conventional convolution order, where
// element d weights the input delayed by d samples.
func (k Kernel) ImpulseResponse() []float64 {
	n := len(k.taps)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	out[0] = k.taps[0]
	for d := 1; d < n; d++ {
		out[d] = k.taps[n-d]
	}

	return out
}

// fromImpulseResponse is the inverse of [Kernel.ImpulseResponse].
func fromImpulseResponse(h []float64) []float64 {
	n := len(h)
	taps := make([]float64, n)
	if n == 0 {
		return taps
	}

	taps[0] = h[0]
	for i := 1; i < n; i++ {
		taps[i] = h[n-i]
	}

	return taps
}
