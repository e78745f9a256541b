package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// EnsurePlanar returns a planar buffer with the given channel count and frame
// length, reusing the capacity of buf and its channel slices where possible.
func EnsurePlanar(buf [][]float64, channels, frames int) [][]float64 {
	if channels <= 0 {
		return buf[:0]
	}
	if cap(buf) >= channels {
		buf = buf[:channels]
	} else {
		grown := make([][]float64, channels)
		copy(grown, buf)
		buf = grown
	}
	for ch := range buf {
		buf[ch] = EnsureLen(buf[ch], frames)
	}
	return buf
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// DeinterleaveFloat32 splits interleaved frames from src into the planar dst.
// It returns the number of frames copied, bounded by the shortest input.
func DeinterleaveFloat32(dst [][]float64, src []float32) int {
	channels := len(dst)
	if channels == 0 {
		return 0
	}
	frames := len(src) / channels
	for ch := range dst {
		if len(dst[ch]) < frames {
			frames = len(dst[ch])
		}
	}
	for i := range frames {
		base := i * channels
		for ch := range dst {
			dst[ch][i] = float64(src[base+ch])
		}
	}
	return frames
}

// InterleaveFloat32 writes frames from the planar src into interleaved dst.
// It returns the number of frames written, bounded by the shortest input.
func InterleaveFloat32(dst []float32, src [][]float64) int {
	channels := len(src)
	if channels == 0 {
		return 0
	}
	frames := len(dst) / channels
	for ch := range src {
		if len(src[ch]) < frames {
			frames = len(src[ch])
		}
	}
	for i := range frames {
		base := i * channels
		for ch := range src {
			dst[base+ch] = float32(src[ch][i])
		}
	}
	return frames
}
