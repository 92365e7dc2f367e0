package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 stored as bits in an atomic word
// Zero value is ready to use (reads 0.0)
type Gauge struct {
	bits atomic.Uint64
}

// Store sets the value
func (g *Gauge) Store(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Load returns the value
func (g *Gauge) Load() float64 {
	return math.Float64frombits(g.bits.Load())
}
