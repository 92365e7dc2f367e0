// Package preset loads parameter definitions and their modifiers from YAML
package preset

import (
	"errors"

	"github.com/lixenwraith/gameparam/chain"
)

// Kind selects the value domain of a parameter
type Kind string

const (
	KindFloat Kind = "float"
	KindInt   Kind = "int" // Truncated toward zero on read and write
)

// Direction selects the chain a modifier is registered on
type Direction string

const (
	DirectionGet Direction = "get"
	DirectionSet Direction = "set"
)

// Op names a transform
type Op string

const (
	OpOffset   Op = "offset"
	OpScale    Op = "scale"
	OpAtMost   Op = "at_most"
	OpAtLeast  Op = "at_least"
	OpClamp    Op = "clamp"
	OpOverride Op = "override"
)

var (
	ErrEmpty            = errors.New("preset is empty")
	ErrNoName           = errors.New("missing name")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrUnknownKind      = errors.New("unknown kind")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownOp        = errors.New("unknown op")
	ErrMissingOperand   = errors.New("missing operand")
	ErrInvalidRange     = errors.New("min greater than max")
	ErrNonFinite        = errors.New("operand must be finite")
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrUnknownModifier  = errors.New("unknown modifier")
)

// Preset is the root YAML document
type Preset struct {
	Parameters []ParameterSpec `yaml:"parameters"`
}

// ParameterSpec defines one parameter
type ParameterSpec struct {
	Name      string         `yaml:"name"`
	Kind      Kind           `yaml:"kind,omitempty"` // Defaults to float
	Initial   float64        `yaml:"initial"`
	Modifiers []ModifierSpec `yaml:"modifiers,omitempty"`
}

// ModifierSpec defines one pre-processor
type ModifierSpec struct {
	Name      string         `yaml:"name"`
	Direction Direction      `yaml:"direction,omitempty"` // Defaults to get
	Op        Op             `yaml:"op"`
	Value     *float64       `yaml:"value,omitempty"`
	Min       *float64       `yaml:"min,omitempty"`
	Max       *float64       `yaml:"max,omitempty"`
	Priority  chain.Priority `yaml:"priority,omitempty"`
	Enabled   *bool          `yaml:"enabled,omitempty"` // Defaults to true
}

func (k Kind) orDefault() Kind {
	if k == "" {
		return KindFloat
	}
	return k
}

func (d Direction) orDefault() Direction {
	if d == "" {
		return DirectionGet
	}
	return d
}

// IsEnabled reports whether the modifier starts attached
func (m ModifierSpec) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}
