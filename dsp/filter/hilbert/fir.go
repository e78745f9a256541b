package hilbert

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// FIR is a streaming Hilbert FIR filter over a circular delay line.
//
// The delay line is stored twice back to back so the L-tap window starting at
// the cursor is always one contiguous slice.
type FIR struct {
	kernel Kernel
	line   []float64
	cursor int
}

// New creates a FIR filter for kernel with a zeroed delay line.
func New(kernel Kernel) (*FIR, error) {
	if kernel.IsZero() {
		return nil, fmt.Errorf("hilbert: kernel must not be empty")
	}

	return &FIR{
		kernel: kernel,
		line:   make([]float64, 2*kernel.Len()),
	}, nil
}

// Push writes sample into the delay line and returns the quadrature output.
func (f *FIR) Push(sample float64) float64 {
	n := len(f.kernel.taps)
	f.line[f.cursor] = sample
	f.line[f.cursor+n] = sample

	y := vecmath.DotProduct(f.kernel.taps, f.line[f.cursor:f.cursor+n])

	f.cursor++
	if f.cursor >= n {
		f.cursor = 0
	}

	return y
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *FIR) ProcessBlockTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("hilbert: ProcessBlockTo slice length mismatch: dst=%d src=%d", len(dst), len(src))
	}

	for i, x := range src {
		dst[i] = f.Push(x)
	}

	return nil
}

// Reset clears the delay line and rewinds the cursor.
func (f *FIR) Reset() {
	for i := range f.line {
		f.line[i] = 0
	}
	f.cursor = 0
}

// Cursor returns the slot the next sample will be written to, in [0, L).
func (f *FIR) Cursor() int {
	return f.cursor
}

// Kernel returns the filter kernel.
func (f *FIR) Kernel() Kernel {
	return f.kernel
}
