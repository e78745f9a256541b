// Package hilbertenv implements a real-time envelope follower and modulator
// built on a Hilbert FIR quadrature filter.
//
// Each sample passes through the pipeline
//
//	input -> Hilbert FIR -> |analytic signal| -> (attack/release) -> peak hold -> output
//
// The output is either the input amplitude-modulated by its own envelope
// (instant and smoothed modes) or the envelope itself (sidechain mode), soft
// clipped into (-1, 1).
//
// [Processor.Process] is allocation-free and lock-free. Parameters are read
// from atomic cells once per block; telemetry is published to atomic cells
// every few samples and can be polled from any goroutine with
// [Processor.ReadCurrentEnvelope] and [Processor.ReadPeakEnvelope].
package hilbertenv
