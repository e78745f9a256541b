package hilbertenv

import (
	"math"
	"sync/atomic"
)

// cell is a single-writer float64 slot. Readers see the latest store or an
// older one; nothing is queued.
type cell struct {
	bits atomic.Uint64
}

func (c *cell) store(v float64) { c.bits.Store(math.Float64bits(v)) }

func (c *cell) load() float64 { return math.Float64frombits(c.bits.Load()) }

type telemetry struct {
	current   cell
	peak      cell
	blockMean cell
	blockPeak cell
}

// publish stores a decimated envelope/peak pair clamped to [0, 1].
func (t *telemetry) publish(envelope, peak float64) {
	t.current.store(unit(envelope))
	t.peak.store(unit(peak))
}

func (t *telemetry) publishBlock(mean, peak float64) {
	t.blockMean.store(mean)
	t.blockPeak.store(peak)
}

func (t *telemetry) resetPeak() {
	t.peak.store(0)
	t.blockPeak.store(0)
}

func (t *telemetry) reset() {
	t.current.store(0)
	t.peak.store(0)
	t.blockMean.store(0)
	t.blockPeak.store(0)
}

func unit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
