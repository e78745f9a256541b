// Package delay provides a fixed integer delay used to align a direct
// signal path with the group delay of a linear-phase filter.
package delay

import "fmt"

// Line is a circular delay line with a fixed delay in samples.
type Line struct {
	buffer   []float64
	writePos int
	delay    int
}

// New returns a delay line that delays its input by delay samples.
// A delay of 0 passes samples straight through.
func New(delay int) (*Line, error) {
	if delay < 0 {
		return nil, fmt.Errorf("delay: length must be >= 0: %d", delay)
	}

	return &Line{buffer: make([]float64, delay+1), delay: delay}, nil
}

// Delay returns the delay in samples.
func (d *Line) Delay() int {
	return d.delay
}

// Process writes sample and returns the sample written Delay() calls ago.
func (d *Line) Process(sample float64) float64 {
	d.buffer[d.writePos] = sample

	readPos := d.writePos - d.delay
	if readPos < 0 {
		readPos += len(d.buffer)
	}
	out := d.buffer[readPos]

	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}

	return out
}

// Reset clears the line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
}
