package hilbert

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// MagnitudeResponse returns the magnitude response of kernel at the
// non-negative frequency bins [0..fftSize/2]. Bin i corresponds to
// i*sampleRate/fftSize Hz.
func MagnitudeResponse(kernel Kernel, fftSize int) ([]float64, error) {
	if kernel.IsZero() {
		return nil, fmt.Errorf("hilbert: kernel must not be empty")
	}
	if fftSize < kernel.Len() {
		return nil, fmt.Errorf("hilbert: fft size %d shorter than kernel length %d", fftSize, kernel.Len())
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("hilbert: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for d, c := range kernel.ImpulseResponse() {
		in[d] = complex(c, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("hilbert: fft forward: %w", err)
	}

	mags := make([]float64, fftSize/2+1)
	for i := range mags {
		mags[i] = cmplx.Abs(out[i])
	}

	return mags, nil
}
