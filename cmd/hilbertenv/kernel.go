package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/hilbert-envelope/dsp/core"
	"github.com/cwbudde/hilbert-envelope/dsp/filter/hilbert"
)

// KernelCmd prints a quadrature kernel.
type KernelCmd struct {
	FFTSize    int     `default:"512" help:"FFT size for the magnitude response."`
	SampleRate float64 `default:"48000" help:"Sample rate used to label frequencies."`
	Rows       int     `default:"16" help:"Rows in the magnitude table."`

	KernelFlags `embed:""`
}

// Run executes the kernel command.
func (c *KernelCmd) Run(app *appContext) error {
	kernel, err := c.kernel()
	if err != nil {
		return err
	}

	return printKernel(app.out, kernel, c.FFTSize, c.SampleRate, c.Rows)
}

func printKernel(w io.Writer, kernel hilbert.Kernel, fftSize int, sampleRate float64, rows int) error {
	if rows < 1 {
		return fmt.Errorf("rows must be >= 1: %d", rows)
	}

	mags, err := hilbert.MagnitudeResponse(kernel, fftSize)
	if err != nil {
		return err
	}

	taps := kernel.Taps()
	fmt.Fprintf(w, "%d taps, group delay %d samples, %s\n\n", kernel.Len(), kernel.GroupDelay(), symmetry(taps))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "n\ttap\timpulse\t")
	for n, h := range kernel.ImpulseResponse() {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t\n", n, taps[n], h)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "freq (Hz)\t|H|\tdB\t")
	step := max(1, (len(mags)-1)/rows)
	for i := 0; i < len(mags); i += step {
		freq := float64(i) * sampleRate / float64(fftSize)
		fmt.Fprintf(tw, "%.1f\t%.5f\t%.2f\t\n", freq, mags[i], core.LinearToDB(mags[i]))
	}

	return tw.Flush()
}

// symmetry names the mirror property of taps around the centre tap.
func symmetry(taps []float64) string {
	even, odd := true, true
	for i, j := 0, len(taps)-1; i <= j; i, j = i+1, j-1 {
		even = even && core.NearlyEqual(taps[i], taps[j], 1e-12)
		odd = odd && core.NearlyEqual(taps[i], -taps[j], 1e-12)
	}

	switch {
	case even:
		return "symmetric"
	case odd:
		return "antisymmetric"
	default:
		return "asymmetric"
	}
}
