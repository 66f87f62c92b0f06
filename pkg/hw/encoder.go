package hw

import (
	"math"
	"sync/atomic"
)

// DefaultCmPerPulse is the arc length per pulse of a 6.5cm wheel
// with a 32-slot encoder disc.
const DefaultCmPerPulse = 6.5 * math.Pi / 32

// PulseCounter is a lock-free Encoder fed by a pulse source.
// Pulse may be called from any goroutine (or interrupt handler) while
// pollers read DistanceCm.
type PulseCounter struct {
	CmPerPulse float64

	pulses atomic.Uint64
}

// NewPulseCounter creates a PulseCounter.
func NewPulseCounter(cmPerPulse float64) *PulseCounter {
	return &PulseCounter{CmPerPulse: cmPerPulse}
}

// Pulse records one pulse.
func (c *PulseCounter) Pulse() {
	c.pulses.Add(1)
}

// AddPulses records n pulses at once.
func (c *PulseCounter) AddPulses(n uint64) {
	c.pulses.Add(n)
}

// Pulses gets the number of pulses since last Reset.
func (c *PulseCounter) Pulses() uint64 {
	return c.pulses.Load()
}

// Reset implements Encoder.
func (c *PulseCounter) Reset() {
	c.pulses.Store(0)
}

// DistanceCm implements Encoder.
func (c *PulseCounter) DistanceCm() float64 {
	cm := c.CmPerPulse
	if cm == 0 {
		cm = DefaultCmPerPulse
	}
	return float64(c.pulses.Load()) * cm
}
