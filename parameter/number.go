package parameter

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of types Number accepts
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Number is a Parameter over an ordered numeric type
// Comparisons and arithmetic helpers always use Value, never RawValue
type Number[T Numeric] struct {
	*Parameter[T]
}

// Int and Float are the common instantiations
type (
	Int   = Number[int]
	Float = Number[float64]
)

// NewNumber creates a numeric parameter
func NewNumber[T Numeric](initial T) *Number[T] {
	return &Number[T]{Parameter: New(initial)}
}

// NewInt creates an int parameter
func NewInt(initial int) *Int {
	return NewNumber(initial)
}

// NewFloat creates a float64 parameter
func NewFloat(initial float64) *Float {
	return NewNumber(initial)
}

// Float64 returns the effective value converted to float64
func (n *Number[T]) Float64() float64 {
	return float64(n.Value())
}

// Compare returns -1, 0 or +1 comparing the effective value with v
func (n *Number[T]) Compare(v T) int {
	return cmp.Compare(n.Value(), v)
}

func (n *Number[T]) Less(v T) bool           { return n.Compare(v) < 0 }
func (n *Number[T]) LessOrEqual(v T) bool    { return n.Compare(v) <= 0 }
func (n *Number[T]) Greater(v T) bool        { return n.Compare(v) > 0 }
func (n *Number[T]) GreaterOrEqual(v T) bool { return n.Compare(v) >= 0 }

// Add returns Value + v
func (n *Number[T]) Add(v T) T { return n.Value() + v }

// Sub returns Value - v
func (n *Number[T]) Sub(v T) T { return n.Value() - v }

// SubFrom returns v - Value
func (n *Number[T]) SubFrom(v T) T { return v - n.Value() }

// Mul returns Value * v
func (n *Number[T]) Mul(v T) T { return n.Value() * v }

// Div returns Value / v; integer division by zero panics as usual
func (n *Number[T]) Div(v T) T { return n.Value() / v }

// DivInto returns v / Value
func (n *Number[T]) DivInto(v T) T { return v / n.Value() }

// Compare compares the effective values of two parameters
func Compare[T Numeric](a, b *Number[T]) int {
	return cmp.Compare(a.Value(), b.Value())
}

// Less reports a.Value < b.Value
func Less[T Numeric](a, b *Number[T]) bool { return Compare(a, b) < 0 }

// LessOrEqual reports a.Value <= b.Value
func LessOrEqual[T Numeric](a, b *Number[T]) bool { return Compare(a, b) <= 0 }

// Greater reports a.Value > b.Value
func Greater[T Numeric](a, b *Number[T]) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports a.Value >= b.Value
func GreaterOrEqual[T Numeric](a, b *Number[T]) bool { return Compare(a, b) >= 0 }
