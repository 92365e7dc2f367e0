package preset

import (
	"fmt"

	"github.com/lixenwraith/gameparam/parameter"
)

// Modifier is a built modifier and its definition
type Modifier struct {
	Spec ModifierSpec
	Mod  *parameter.Modification[float64]
}

// Entry is a built parameter with its modifiers in declaration order
type Entry struct {
	Spec      ParameterSpec
	Param     *parameter.Float
	Modifiers []*Modifier
}

// Modifier returns the named modifier
func (e *Entry) Modifier(name string) (*Modifier, bool) {
	for _, m := range e.Modifiers {
		if m.Spec.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Bundle holds the parameters built from a preset
type Bundle struct {
	entries []*Entry
	byName  map[string]*Entry
}

// Build creates a float parameter per definition and registers its modifiers
// Int parameters truncate the stored value on both chains and every declared modifier output
// Disabled modifiers are built detached and can be attached with Toggle
func Build(p *Preset) (*Bundle, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	b := &Bundle{byName: make(map[string]*Entry, len(p.Parameters))}
	for _, ps := range p.Parameters {
		e := &Entry{Spec: ps}
		if ps.Kind.orDefault() == KindInt {
			e.Param = parameter.NewFloat(parameter.Truncate(ps.Initial))
			e.Param.AddGetPreProcessor(parameter.Truncate, parameter.PriorityCap)
			e.Param.AddSetPreProcessor(parameter.Truncate, parameter.PriorityCap)
		} else {
			e.Param = parameter.NewFloat(ps.Initial)
		}

		for _, ms := range ps.Modifiers {
			fn, err := transform(ms)
			if err != nil {
				return nil, fmt.Errorf("parameter %q modifier %q: %w", ps.Name, ms.Name, err)
			}
			if ps.Kind.orDefault() == KindInt {
				fn = truncated(fn)
			}

			var mod *parameter.Modification[float64]
			if ms.Direction.orDefault() == DirectionSet {
				mod = e.Param.AddSetPreProcessor(fn, ms.Priority)
			} else {
				mod = e.Param.AddGetPreProcessor(fn, ms.Priority)
			}
			if !ms.IsEnabled() {
				mod.Clean()
			}
			e.Modifiers = append(e.Modifiers, &Modifier{Spec: ms, Mod: mod})
		}

		b.entries = append(b.entries, e)
		b.byName[ps.Name] = e
	}
	return b, nil
}

func transform(ms ModifierSpec) (parameter.Func[float64], error) {
	switch ms.Op {
	case OpOffset:
		return parameter.Offset(*ms.Value), nil
	case OpScale:
		return parameter.Scale(*ms.Value), nil
	case OpAtMost:
		return parameter.AtMost(*ms.Value), nil
	case OpAtLeast:
		return parameter.AtLeast(*ms.Value), nil
	case OpClamp:
		return parameter.Clamp(*ms.Min, *ms.Max), nil
	case OpOverride:
		return parameter.Override(*ms.Value), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownOp, ms.Op)
}

// truncated keeps fn whole-valued wherever it lands in the chain
func truncated(fn parameter.Func[float64]) parameter.Func[float64] {
	return func(v float64) float64 { return parameter.Truncate(fn(v)) }
}

// Entries returns the parameters in declaration order
func (b *Bundle) Entries() []*Entry {
	return b.entries
}

// Names returns parameter names in declaration order
func (b *Bundle) Names() []string {
	names := make([]string, len(b.entries))
	for i, e := range b.entries {
		names[i] = e.Spec.Name
	}
	return names
}

// Entry returns the named parameter entry
func (b *Bundle) Entry(name string) (*Entry, bool) {
	e, ok := b.byName[name]
	return e, ok
}

// Parameter returns the named parameter
func (b *Bundle) Parameter(name string) (*parameter.Float, bool) {
	e, ok := b.byName[name]
	if !ok {
		return nil, false
	}
	return e.Param, true
}

// Modifier returns the named modifier of the named parameter
func (b *Bundle) Modifier(param, mod string) (*Modifier, error) {
	e, ok := b.byName[param]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownParameter, param)
	}
	m, ok := e.Modifier(mod)
	if !ok {
		return nil, fmt.Errorf("parameter %q: %w %q", param, ErrUnknownModifier, mod)
	}
	return m, nil
}

// Toggle detaches an attached modifier or re-attaches a detached one at its current priority
// Returns the new attachment state
func (b *Bundle) Toggle(param, mod string) (bool, error) {
	m, err := b.Modifier(param, mod)
	if err != nil {
		return false, err
	}
	if m.Mod.Attached() {
		m.Mod.Clean()
	} else {
		m.Mod.Attach()
	}
	return m.Mod.Attached(), nil
}
