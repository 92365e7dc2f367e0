package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a preset file
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML preset; unknown fields are rejected
func Parse(data []byte) (*Preset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Preset
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Marshal encodes p as YAML
func Marshal(p *Preset) ([]byte, error) {
	return yaml.Marshal(p)
}

// Validate checks names, kinds, ops and operands
func (p *Preset) Validate() error {
	if len(p.Parameters) == 0 {
		return ErrEmpty
	}

	names := make(map[string]bool, len(p.Parameters))
	for i, ps := range p.Parameters {
		if ps.Name == "" {
			return fmt.Errorf("parameter %d: %w", i, ErrNoName)
		}
		if names[ps.Name] {
			return fmt.Errorf("parameter %q: %w", ps.Name, ErrDuplicateName)
		}
		names[ps.Name] = true

		switch ps.Kind.orDefault() {
		case KindFloat, KindInt:
		default:
			return fmt.Errorf("parameter %q: %w %q", ps.Name, ErrUnknownKind, ps.Kind)
		}

		mods := make(map[string]bool, len(ps.Modifiers))
		for j, ms := range ps.Modifiers {
			if ms.Name == "" {
				return fmt.Errorf("parameter %q modifier %d: %w", ps.Name, j, ErrNoName)
			}
			if mods[ms.Name] {
				return fmt.Errorf("parameter %q modifier %q: %w", ps.Name, ms.Name, ErrDuplicateName)
			}
			mods[ms.Name] = true

			if err := ms.validate(); err != nil {
				return fmt.Errorf("parameter %q modifier %q: %w", ps.Name, ms.Name, err)
			}
		}
	}
	return nil
}

func (m ModifierSpec) validate() error {
	switch m.Direction.orDefault() {
	case DirectionGet, DirectionSet:
	default:
		return fmt.Errorf("%w %q", ErrUnknownDirection, m.Direction)
	}

	switch m.Op {
	case OpOffset, OpScale, OpAtMost, OpAtLeast, OpOverride:
		if m.Value == nil {
			return fmt.Errorf("%s: %w value", m.Op, ErrMissingOperand)
		}
		if !finite(*m.Value) {
			return fmt.Errorf("%s: value %v: %w", m.Op, *m.Value, ErrNonFinite)
		}
	case OpClamp:
		if m.Min == nil || m.Max == nil {
			return fmt.Errorf("%s: %w min/max", m.Op, ErrMissingOperand)
		}
		if !finite(*m.Min) || !finite(*m.Max) {
			return fmt.Errorf("%s: [%v, %v]: %w", m.Op, *m.Min, *m.Max, ErrNonFinite)
		}
		if *m.Min > *m.Max {
			return fmt.Errorf("%s: %w", m.Op, ErrInvalidRange)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, m.Op)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
