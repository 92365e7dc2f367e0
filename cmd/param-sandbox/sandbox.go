package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gameparam/audio"
	"github.com/lixenwraith/gameparam/chain"
	"github.com/lixenwraith/gameparam/preset"
	"github.com/lixenwraith/gameparam/status"
)

const priorityStep = 10

// Sandbox holds the interactive state; all calls happen on the event loop goroutine
type Sandbox struct {
	bundle   *preset.Bundle
	tracker  *status.Tracker
	feedback *audio.Feedback // Nil when audio is off

	step     float64
	selParam int
	selMod   int
	message  string

	cancels []func()
}

// NewSandbox watches every parameter of b; fb may be nil
func NewSandbox(b *preset.Bundle, tracker *status.Tracker, fb *audio.Feedback, step float64) *Sandbox {
	s := &Sandbox{
		bundle:   b,
		tracker:  tracker,
		feedback: fb,
		step:     step,
	}
	for _, e := range b.Entries() {
		s.cancels = append(s.cancels, status.Watch(tracker, e.Spec.Name, e.Param))
		if fb != nil {
			s.cancels = append(s.cancels, audio.Attach(fb, e.Param))
		}
	}
	return s
}

// Close unsubscribes all listeners
func (s *Sandbox) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}

func (s *Sandbox) entry() *preset.Entry {
	entries := s.bundle.Entries()
	if len(entries) == 0 {
		return nil
	}
	return entries[s.selParam]
}

func (s *Sandbox) modifier() *preset.Modifier {
	e := s.entry()
	if e == nil || len(e.Modifiers) == 0 {
		return nil
	}
	return e.Modifiers[s.selMod]
}

// HandleKey applies one key event; returns false to quit
func (s *Sandbox) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.moveParam(-1)
	case tcell.KeyDown:
		s.moveParam(1)
	case tcell.KeyLeft:
		s.moveMod(-1)
	case tcell.KeyRight:
		s.moveMod(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case '+', '=':
			s.nudge(s.step)
		case '-', '_':
			s.nudge(-s.step)
		case ' ':
			s.toggle()
		case ']':
			s.shiftPriority(priorityStep)
		case '[':
			s.shiftPriority(-priorityStep)
		case 'f':
			s.forceNotify()
		case 'm':
			s.toggleMute()
		}
	}
	return true
}

func (s *Sandbox) moveParam(d int) {
	n := len(s.bundle.Entries())
	if n == 0 {
		return
	}
	s.selParam = (s.selParam + d + n) % n
	s.selMod = 0
}

func (s *Sandbox) moveMod(d int) {
	e := s.entry()
	if e == nil || len(e.Modifiers) == 0 {
		return
	}
	n := len(e.Modifiers)
	s.selMod = (s.selMod + d + n) % n
}

func (s *Sandbox) nudge(d float64) {
	e := s.entry()
	if e == nil {
		return
	}
	if e.Param.Set(e.Param.RawValue() + d) {
		s.message = fmt.Sprintf("%s = %g", e.Spec.Name, e.Param.Value())
	} else {
		s.message = fmt.Sprintf("%s unchanged", e.Spec.Name)
	}
}

func (s *Sandbox) toggle() {
	e, m := s.entry(), s.modifier()
	if m == nil {
		return
	}
	on, err := s.bundle.Toggle(e.Spec.Name, m.Spec.Name)
	if err != nil {
		s.message = err.Error()
		return
	}
	state := "detached"
	if on {
		state = "attached"
	}
	s.message = fmt.Sprintf("%s %s", m.Spec.Name, state)
}

func (s *Sandbox) shiftPriority(d int64) {
	m := s.modifier()
	if m == nil {
		return
	}
	p := int64(m.Mod.Priority()) + d
	p = min(max(p, math.MinInt32), math.MaxInt32)
	m.Mod.SetPriority(chain.Priority(p))
	s.message = fmt.Sprintf("%s priority %d", m.Spec.Name, p)
}

func (s *Sandbox) forceNotify() {
	e := s.entry()
	if e == nil {
		return
	}
	e.Param.SetValue(e.Param.RawValue(), true, true)
	s.message = fmt.Sprintf("%s notified", e.Spec.Name)
}

func (s *Sandbox) toggleMute() {
	if s.feedback == nil {
		s.message = "audio unavailable"
		return
	}
	if s.feedback.ToggleMute() {
		s.message = "audio on"
	} else {
		s.message = "audio muted"
	}
}
