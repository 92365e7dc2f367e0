package observable

// Effect binds one action to the change hooks of several sources
// An Effect is itself a Source, so effects can be chained
type Effect struct {
	action  func()
	cancels []func()
	changed listeners[func()]
	closed  bool
}

// NewEffect binds action to sources and runs it once immediately
func NewEffect(action func(), sources ...Source) *Effect {
	e := newEffect(action, sources)
	if action != nil {
		action()
	}
	return e
}

// NewEffectDeferred binds action to sources without running it
func NewEffectDeferred(action func(), sources ...Source) *Effect {
	return newEffect(action, sources)
}

func newEffect(action func(), sources []Source) *Effect {
	e := &Effect{action: action, cancels: make([]func(), 0, len(sources))}
	for _, s := range sources {
		e.cancels = append(e.cancels, s.OnChanged(e.fire))
	}
	return e
}

func (e *Effect) fire() {
	if e.action != nil {
		e.action()
	}
	for _, l := range e.changed.snapshot() {
		if !l.removed {
			l.fn()
		}
	}
}

// OnChanged registers a listener fired after the action on every source change
func (e *Effect) OnChanged(fn func()) (cancel func()) {
	return e.changed.add(fn)
}

// Close unbinds from all sources; safe to call more than once
func (e *Effect) Close() {
	if e.closed {
		return
	}
	e.closed = true
	for _, cancel := range e.cancels {
		cancel()
	}
	e.cancels = nil
}
