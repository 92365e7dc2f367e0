package status

import (
	"sync/atomic"

	"github.com/lixenwraith/gameparam/parameter"
)

// Metric holds the diagnostics for one watched parameter
type Metric struct {
	Changes atomic.Int64
	Value   Gauge // Last effective value
}

// Sample is a point-in-time copy of a Metric
type Sample struct {
	Name    string
	Changes int64
	Value   float64
}

// Tracker records change counts and effective values of watched parameters
type Tracker struct {
	metrics *MetricMap[Metric]
}

// NewTracker creates an empty Tracker
func NewTracker() *Tracker {
	return &Tracker{metrics: NewMetricMap[Metric]()}
}

// Watch subscribes to n under name and seeds the value gauge
// Watching two parameters under one name merges their counts
func Watch[T parameter.Numeric](t *Tracker, name string, n *parameter.Number[T]) (unwatch func()) {
	m := t.metrics.Get(name)
	m.Value.Store(n.Float64())
	return n.OnChangedValue(func(v T) {
		m.Changes.Add(1)
		m.Value.Store(float64(v))
	})
}

// Sample returns the current diagnostics for name
func (t *Tracker) Sample(name string) (Sample, bool) {
	m, ok := t.metrics.Lookup(name)
	if !ok {
		return Sample{}, false
	}
	return Sample{Name: name, Changes: m.Changes.Load(), Value: m.Value.Load()}, true
}

// Samples returns diagnostics for every watched name, sorted by name
func (t *Tracker) Samples() []Sample {
	out := make([]Sample, 0, t.metrics.Len())
	for name, m := range t.metrics.All() {
		out = append(out, Sample{Name: name, Changes: m.Changes.Load(), Value: m.Value.Load()})
	}
	return out
}

// Forget drops name from the listing; call the unwatch func to stop updates
func (t *Tracker) Forget(name string) {
	t.metrics.Delete(name)
}

// Len returns the number of watched names
func (t *Tracker) Len() int {
	return t.metrics.Len()
}
