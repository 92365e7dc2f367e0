// Package observable provides a typed value cell that notifies listeners on change
package observable

import (
	"fmt"
	"slices"
)

// Source reports parameterless change notifications
type Source interface {
	OnChanged(fn func()) (cancel func())
}

type listener[F any] struct {
	id      uint64
	fn      F
	removed bool
}

// listeners is an ordered listener list; removal is copy-on-write so dispatch
// can iterate a stable snapshot while callbacks cancel themselves or others
type listeners[F any] struct {
	nextID uint64
	items  []*listener[F]
}

func (l *listeners[F]) add(fn F) func() {
	l.nextID++
	item := &listener[F]{id: l.nextID, fn: fn}
	l.items = append(l.items, item)
	return func() { l.remove(item) }
}

func (l *listeners[F]) remove(item *listener[F]) {
	if item.removed {
		return
	}
	item.removed = true
	l.items = slices.DeleteFunc(slices.Clone(l.items), func(x *listener[F]) bool {
		return x == item
	})
}

func (l *listeners[F]) snapshot() []*listener[F] {
	return l.items[:len(l.items):len(l.items)]
}

func (l *listeners[F]) len() int {
	return len(l.items)
}

// Observable holds a value and fires change hooks when a write changes it
//
// Hooks fire in this order: OnChanged, OnChangedValue, OnChangedValues. Values handed
// to listeners pass through the read view, identity unless set by NewWithView.
// Not safe for concurrent use
type Observable[T comparable] struct {
	value T
	prev  T
	view  func(T) T

	changed       listeners[func()]
	changedValue  listeners[func(T)]
	changedValues listeners[func(prev, next T)]
}

// New creates an Observable holding initial
func New[T comparable](initial T) *Observable[T] {
	return &Observable[T]{value: initial, prev: initial}
}

// NewWithView creates an Observable whose readers and listeners see view(raw)
// view runs on every read and is never cached
func NewWithView[T comparable](initial T, view func(T) T) *Observable[T] {
	o := New(initial)
	o.view = view
	return o
}

func (o *Observable[T]) read(raw T) T {
	if o.view == nil {
		return raw
	}
	return o.view(raw)
}

// Raw returns the committed value, bypassing the view
func (o *Observable[T]) Raw() T {
	return o.value
}

// Previous returns the committed value before the last successful write
func (o *Observable[T]) Previous() T {
	return o.prev
}

// Value returns the committed value through the view
func (o *Observable[T]) Value() T {
	return o.read(o.value)
}

// Set commits v, notifying if it differs from the stored value
func (o *Observable[T]) Set(v T) bool {
	return o.SetValue(v, false)
}

// SetValue commits v; listeners fire when v differs from the stored value or force is set
// Equality is ==, so floats compare exactly and NaN always counts as a change
// Returns true if listeners fired
func (o *Observable[T]) SetValue(v T, force bool) bool {
	if v == o.value && !force {
		return false
	}

	before := o.read(o.value)
	o.prev = o.value
	o.value = v
	o.publish(before, o.read(v))
	return true
}

// Refresh re-reads the effective value and notifies if it differs from before
// Used when the view changes while the raw value stays put
func (o *Observable[T]) Refresh(before T) bool {
	current := o.Value()
	if current == before {
		return false
	}
	o.publish(before, current)
	return true
}

func (o *Observable[T]) publish(prev, next T) {
	for _, l := range o.changed.snapshot() {
		if !l.removed {
			l.fn()
		}
	}
	for _, l := range o.changedValue.snapshot() {
		if !l.removed {
			l.fn(next)
		}
	}
	for _, l := range o.changedValues.snapshot() {
		if !l.removed {
			l.fn(prev, next)
		}
	}
}

// OnChanged registers a parameterless change listener
func (o *Observable[T]) OnChanged(fn func()) (cancel func()) {
	return o.changed.add(fn)
}

// OnChangedValue registers a listener receiving the new value
func (o *Observable[T]) OnChangedValue(fn func(next T)) (cancel func()) {
	return o.changedValue.add(fn)
}

// OnChangedValues registers a listener receiving the previous and new values
func (o *Observable[T]) OnChangedValues(fn func(prev, next T)) (cancel func()) {
	return o.changedValues.add(fn)
}

// Listeners returns the number of registered listeners across all hooks
func (o *Observable[T]) Listeners() int {
	return o.changed.len() + o.changedValue.len() + o.changedValues.len()
}

func (o *Observable[T]) String() string {
	return fmt.Sprint(o.Value())
}
