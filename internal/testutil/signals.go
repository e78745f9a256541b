package testutil

import (
	"math"
	"math/rand"
)

// Tone generates amplitude*sin(2*pi*freqHz*n/sampleRate + phase).
// A phase of pi/2 yields a cosine.
func Tone(freqHz, sampleRate, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude) with a fixed seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Step generates zeros before at and level from at onward.
func Step(length, at int, level float64) []float64 {
	out := make([]float64, length)
	for i := max(at, 0); i < length; i++ {
		out[i] = level
	}
	return out
}

// Planar wraps mono into a channel slice of n independent copies.
func Planar(mono []float64, n int) [][]float64 {
	out := make([][]float64, n)
	for ch := range out {
		out[ch] = append([]float64(nil), mono...)
	}
	return out
}
