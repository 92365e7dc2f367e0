package parameter

import (
	"github.com/lixenwraith/gameparam/chain"
)

// Modification is the handle for one registered pre-processor
//
// A Modification is either attached (in exactly one chain at its priority) or
// detached. Clean detaches; SetPriority and Attach re-attach at the end of the
// target priority's bucket. The nominal priority survives detachment
type Modification[T comparable] struct {
	param    *Parameter[T]
	chain    *chain.Chain[*Modification[T]]
	fn       ContextFunc[T]
	priority chain.Priority
	attached bool
	busy     bool // Reading the pre-change value; nested structural calls are ignored
}

// newModification allocates the handle then attaches it; priority goes last
// because attaching is what inserts into the chain
func newModification[T comparable](p *Parameter[T], c *chain.Chain[*Modification[T]], fn ContextFunc[T], priority chain.Priority) *Modification[T] {
	m := &Modification[T]{param: p, chain: c, fn: fn}
	m.priority = priority
	m.chain.Insert(m, priority)
	m.attached = true
	return m
}

// Parameter returns the owning parameter
func (m *Modification[T]) Parameter() *Parameter[T] {
	return m.param
}

// IsGet reports whether m sits on the get chain
func (m *Modification[T]) IsGet() bool {
	return m.chain == &m.param.get
}

// Attached reports whether m is currently in its chain
func (m *Modification[T]) Attached() bool {
	return m.attached
}

// Priority returns the nominal priority
func (m *Modification[T]) Priority() chain.Priority {
	return m.priority
}

// SetPriority moves m to priority p, appending it after existing entries of p
// Re-attaches a detached modification; no-op if attached at p already
func (m *Modification[T]) SetPriority(p chain.Priority) {
	if m.busy || (m.attached && m.priority == p) {
		return
	}
	m.mutate(func() {
		m.chain.Insert(m, p)
		m.priority = p
		m.attached = true
	})
}

// Attach re-attaches a detached modification at its nominal priority
func (m *Modification[T]) Attach() {
	m.SetPriority(m.priority)
}

// Clean detaches m from its chain; safe to call repeatedly
func (m *Modification[T]) Clean() {
	if m.busy || !m.attached {
		return
	}
	m.mutate(func() {
		m.chain.Remove(m)
		m.attached = false
	})
}

// TruePriority returns the collision-free priority reflecting m's exact position
// Detached modifications report their nominal priority. O(bucket size)
func (m *Modification[T]) TruePriority() float64 {
	if !m.attached {
		return float64(m.priority)
	}
	tp, ok := m.chain.TruePriority(m)
	if !ok {
		return float64(m.priority)
	}
	return tp
}

// mutate applies a structural change, refreshing listeners for get-chain changes
func (m *Modification[T]) mutate(change func()) {
	if !m.IsGet() {
		change()
		return
	}
	before := m.valueBefore()
	change()
	m.param.obs.Refresh(before)
}

// valueBefore reads the effective value while ignoring structural calls on m,
// since the read runs m's own pre-processor
func (m *Modification[T]) valueBefore() T {
	m.busy = true
	defer func() { m.busy = false }()
	return m.param.Value()
}
