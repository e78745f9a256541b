package hilbertenv

import (
	"testing"

	"github.com/cwbudde/hilbert-envelope/dsp/filter/hilbert"
	"github.com/cwbudde/hilbert-envelope/dsp/param"
	"github.com/cwbudde/hilbert-envelope/internal/testutil"
)

func benchmarkProcess(b *testing.B, preset hilbert.Preset, mode float64) {
	k, err := hilbert.PresetKernel(preset)
	if err != nil {
		b.Fatal(err)
	}

	p, err := New(WithKernel(k))
	if err != nil {
		b.Fatal(err)
	}
	if err := p.Prepare(48000, 512); err != nil {
		b.Fatal(err)
	}
	if err := p.SetParameter(param.Mode, mode); err != nil {
		b.Fatal(err)
	}

	buf := testutil.Planar(testutil.Noise(1, 0.5, 512), 2)

	b.ReportAllocs()
	b.SetBytes(int64(2 * 512 * 8))
	for i := 0; i < b.N; i++ {
		if err := p.Process(buf, 512); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProcessReferenceInstant(b *testing.B) {
	benchmarkProcess(b, hilbert.PresetReference, 0)
}

func BenchmarkProcessReferenceSmoothed(b *testing.B) {
	benchmarkProcess(b, hilbert.PresetReference, 1)
}

func BenchmarkProcessBalancedSmoothed(b *testing.B) {
	benchmarkProcess(b, hilbert.PresetBalanced, 1)
}

func BenchmarkProcessPreciseSidechain(b *testing.B) {
	benchmarkProcess(b, hilbert.PresetPrecise, 2)
}
