// Package envelope provides the per-sample building blocks of the Hilbert
// envelope follower: analytic-signal magnitude detection, attack/release
// smoothing, peak hold, block-rate coefficient slewing and mode-dependent
// output synthesis.
//
// All functions are allocation-free and safe to call from a real-time audio
// callback. None of them synchronize; callers own the state they pass in.
package envelope
