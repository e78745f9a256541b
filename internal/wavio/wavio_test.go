package wavio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/hilbert-envelope/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	left := testutil.Tone(440, 48000, 0.8, 0, 1000)
	right := testutil.Noise(4, 0.5, 1000)

	for _, bits := range []int{16, 24, 32} {
		path := filepath.Join(t.TempDir(), "roundtrip.wav")
		in := &Audio{SampleRate: 48000, BitDepth: bits, Channels: [][]float64{left, right}}
		if err := WriteFile(path, in); err != nil {
			t.Fatalf("%d bit: WriteFile() error = %v", bits, err)
		}

		out, err := ReadFile(path)
		if err != nil {
			t.Fatalf("%d bit: ReadFile() error = %v", bits, err)
		}
		if out.SampleRate != 48000 || out.BitDepth != bits || len(out.Channels) != 2 {
			t.Fatalf("%d bit: header mismatch: rate=%d bits=%d channels=%d", bits, out.SampleRate, out.BitDepth, len(out.Channels))
		}
		if out.Frames() != 1000 {
			t.Fatalf("%d bit: Frames() = %d, want 1000", bits, out.Frames())
		}

		eps := 1 / fullScale(bits)
		testutil.RequireSliceNearlyEqual(t, out.Channels[0], left, eps)
		testutil.RequireSliceNearlyEqual(t, out.Channels[1], right, eps)
	}
}

func TestWriteClipsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	in := &Audio{SampleRate: 44100, BitDepth: 16, Channels: [][]float64{{2, -2, math.NaN(), 0.5}}}
	if err := WriteFile(path, in); err != nil {
		t.Fatal(err)
	}

	out, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{32767.0 / 32768, -1, 0, 0.5}
	testutil.RequireSliceNearlyEqual(t, out.Channels[0], want, 1e-12)
}

func TestWriteValidation(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		in   *Audio
	}{
		{name: "bit depth", in: &Audio{SampleRate: 48000, BitDepth: 8, Channels: [][]float64{{0}}}},
		{name: "rate", in: &Audio{SampleRate: 0, BitDepth: 16, Channels: [][]float64{{0}}}},
		{name: "no channels", in: &Audio{SampleRate: 48000, BitDepth: 16}},
		{name: "ragged", in: &Audio{SampleRate: 48000, BitDepth: 16, Channels: [][]float64{{0, 0}, {0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := WriteFile(filepath.Join(dir, tt.name+".wav"), tt.in); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	if err := os.WriteFile(path, []byte("definitely not a riff file"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Fatal("expected error for invalid file")
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDitherIsBoundedAndReproducible(t *testing.T) {
	in := &Audio{SampleRate: 48000, BitDepth: 16, Channels: [][]float64{testutil.Tone(1000, 48000, 0.25, 0, 512)}}

	write := func(name string, opts ...WriteOption) []float64 {
		path := filepath.Join(t.TempDir(), name)
		if err := WriteFile(path, in, opts...); err != nil {
			t.Fatal(err)
		}
		out, err := ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		return out.Channels[0]
	}

	a := write("a.wav", WithDither(1))
	b := write("b.wav", WithDither(1))
	plain := write("plain.wav")

	testutil.RequireSliceNearlyEqual(t, a, b, 0)
	testutil.RequireSliceNearlyEqual(t, a, in.Channels[0], 2.5/32768)

	if d, _ := testutil.MaxAbsDiff(a, plain); d == 0 {
		t.Fatal("dither did not change any sample")
	}
}
