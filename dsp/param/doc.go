// Package param defines the user parameters of the Hilbert envelope
// processor and a lock-free store for them.
//
// A [Set] holds one atomic cell per parameter. A single control thread
// writes with [Set.SetValue]; the audio thread reads with [Set.Value] once
// per block. Values are stored in plain units (ms, linear gain, choice
// index) and clamped to their range on write, so a reader never observes an
// out-of-range or NaN value.
package param
