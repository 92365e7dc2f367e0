// Package parameter composes an observable value with prioritized pre-processor chains
//
// A Parameter stores a raw value. Writes pass through the set chain before being
// committed; reads pass the raw value through the get chain on every call. Each chain
// visits pre-processors from highest to lowest priority, insertion order among equals.
// Not safe for concurrent use; a panicking pre-processor propagates to the caller
package parameter

import (
	"iter"

	"github.com/lixenwraith/gameparam/chain"
	"github.com/lixenwraith/gameparam/observable"
)

// Func transforms a value
type Func[T any] func(v T) T

// ContextFunc transforms a value with caller-supplied context, nil for plain reads and writes
type ContextFunc[T any] func(v T, ctx any) T

// Parameter is an observable value with get and set pre-processor chains
type Parameter[T comparable] struct {
	obs *observable.Observable[T]
	get chain.Chain[*Modification[T]]
	set chain.Chain[*Modification[T]]
}

// New creates a Parameter with the given raw value
func New[T comparable](initial T) *Parameter[T] {
	p := &Parameter[T]{}
	p.obs = observable.NewWithView(initial, p.processGet)
	return p
}

func (p *Parameter[T]) processGet(v T) T {
	return applyChain(&p.get, v, nil)
}

// applyChain folds v through a snapshot of c, so pre-processors may mutate chains
// while running; such changes apply from the next fold
func applyChain[T comparable](c *chain.Chain[*Modification[T]], v T, ctx any) T {
	if c.Len() == 0 {
		return v
	}
	var buf [8]*Modification[T]
	for _, m := range c.Snapshot(buf[:0]) {
		if m.fn != nil {
			v = m.fn(v, ctx)
		}
	}
	return v
}

// RawValue returns the stored value without get processing
func (p *Parameter[T]) RawValue() T {
	return p.obs.Raw()
}

// Value returns the stored value through the get chain, recomputed on every call
func (p *Parameter[T]) Value() T {
	return p.obs.Value()
}

// Set writes v through the set chain
func (p *Parameter[T]) Set(v T) bool {
	return p.SetValue(v, false, false)
}

// SetValue writes v through the set chain unless skipPreprocessing
// forceNotify fires listeners even when the stored value is unchanged
// Returns true if listeners fired
func (p *Parameter[T]) SetValue(v T, skipPreprocessing, forceNotify bool) bool {
	if !skipPreprocessing {
		v = applyChain(&p.set, v, nil)
	}
	return p.obs.SetValue(v, forceNotify)
}

// SetValueWithContext writes v through the set chain, handing ctx to context-aware pre-processors
func (p *Parameter[T]) SetValueWithContext(v T, ctx any, forceNotify bool) bool {
	return p.obs.SetValue(applyChain(&p.set, v, ctx), forceNotify)
}

// ValueWithContext reads through the get chain with ctx
func (p *Parameter[T]) ValueWithContext(ctx any) T {
	return applyChain(&p.get, p.obs.Raw(), ctx)
}

// OnChanged registers a parameterless change listener
func (p *Parameter[T]) OnChanged(fn func()) (cancel func()) {
	return p.obs.OnChanged(fn)
}

// OnChangedValue registers a listener receiving the new effective value
func (p *Parameter[T]) OnChangedValue(fn func(next T)) (cancel func()) {
	return p.obs.OnChangedValue(fn)
}

// OnChangedValues registers a listener receiving the previous and new effective values
func (p *Parameter[T]) OnChangedValues(fn func(prev, next T)) (cancel func()) {
	return p.obs.OnChangedValues(fn)
}

// AddGetPreProcessor registers fn on the get chain
// Listeners fire if the effective value changes as a result
func (p *Parameter[T]) AddGetPreProcessor(fn Func[T], priority chain.Priority) *Modification[T] {
	return p.AddGetPreProcessorWithContext(dropContext(fn), priority)
}

// AddGetPreProcessorWithContext registers a context-aware fn on the get chain
func (p *Parameter[T]) AddGetPreProcessorWithContext(fn ContextFunc[T], priority chain.Priority) *Modification[T] {
	before := p.Value()
	m := newModification(p, &p.get, fn, priority)
	p.obs.Refresh(before)
	return m
}

// AddSetPreProcessor registers fn on the set chain
// The stored value is not reprocessed; fn applies from the next write
func (p *Parameter[T]) AddSetPreProcessor(fn Func[T], priority chain.Priority) *Modification[T] {
	return p.AddSetPreProcessorWithContext(dropContext(fn), priority)
}

// AddSetPreProcessorWithContext registers a context-aware fn on the set chain
func (p *Parameter[T]) AddSetPreProcessorWithContext(fn ContextFunc[T], priority chain.Priority) *Modification[T] {
	return newModification(p, &p.set, fn, priority)
}

// Clean detaches m if it belongs to this parameter
func (p *Parameter[T]) Clean(m *Modification[T]) {
	if m == nil || m.param != p {
		return
	}
	m.Clean()
}

// GetPreProcessors yields the attached get pre-processors in traversal order
func (p *Parameter[T]) GetPreProcessors() iter.Seq[*Modification[T]] {
	return p.get.All()
}

// SetPreProcessors yields the attached set pre-processors in traversal order
func (p *Parameter[T]) SetPreProcessors() iter.Seq[*Modification[T]] {
	return p.set.All()
}

func (p *Parameter[T]) String() string {
	return p.obs.String()
}

func dropContext[T any](fn Func[T]) ContextFunc[T] {
	if fn == nil {
		return nil
	}
	return func(v T, _ any) T { return fn(v) }
}
