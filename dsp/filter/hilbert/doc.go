// Package hilbert provides an odd-length FIR Hilbert transformer for
// analytic-signal envelope detection.
//
// A [Kernel] is an immutable, odd-length tap set. [ReferenceKernel] returns
// the 21-tap table used by the envelope processor; [DesignKernel] builds a
// windowed ideal Hilbert kernel of arbitrary odd length. Presets
// [PresetReference], [PresetBalanced] and [PresetPrecise] trade CPU cost
// against quadrature accuracy.
//
// [FIR] streams samples through a kernel with a circular delay line. Taps are
// stored in delay-line order: after a sample is written at the cursor, tap n
// weights the delay-line slot (cursor+n) mod L, so tap 0 weights the newest
// sample and tap n >= 1 weights the sample written L-n pushes earlier.
package hilbert
