package parameter

import (
	"math"
	"testing"
)

// TestIntComparisons mirrors the int parameter scenario: comparisons use effective values
func TestIntComparisons(t *testing.T) {
	a := NewInt(10)
	b := NewInt(0)
	b.Set(20)

	if !Less(a, b) || !Greater(b, a) || !LessOrEqual(a, b) || !GreaterOrEqual(b, a) {
		t.Error("Pairwise comparisons failed for 10 vs 20")
	}
	if !a.LessOrEqual(10) || !b.GreaterOrEqual(20) || a.Less(10) || b.Greater(20) {
		t.Error("Scalar comparisons failed at the boundaries")
	}

	// A get pre-processor flips the order even though raw values do not change
	m := a.AddGetPreProcessor(Offset(15), 0)
	if !Greater(a, b) || Compare(a, b) != 1 {
		t.Errorf("Expected 25 > 20, got compare=%d", Compare(a, b))
	}
	m.Clean()
	if Compare(a, b) != -1 {
		t.Errorf("Expected 10 < 20 after removal, got %d", Compare(a, b))
	}
}

// TestIntArithmetic verifies arithmetic helpers in both operand orders
func TestIntArithmetic(t *testing.T) {
	a := NewInt(10)

	cases := []struct {
		name string
		got  int
		want int
	}{
		{"Add", a.Add(20), 30},
		{"Sub", a.Sub(20), -10},
		{"SubFrom", a.SubFrom(20), 10},
		{"Mul", a.Mul(20), 200},
		{"Div", a.Div(3), 3},
		{"DivInto", a.DivInto(20), 2},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: expected %d, got %d", c.name, c.want, c.got)
		}
	}
}

// TestFloatArithmetic mirrors the float parameter scenario
func TestFloatArithmetic(t *testing.T) {
	f := NewFloat(10)
	g := NewFloat(0)
	g.Set(20)

	x2 := f.AddGetPreProcessor(Scale(2.0), 0)
	if f.Value() != f.RawValue()*2 {
		t.Errorf("Expected %v, got %v", f.RawValue()*2, f.Value())
	}
	plus5 := f.AddGetPreProcessor(Offset(5.0), 0)
	if f.Value() != f.RawValue()*2+5 {
		t.Errorf("Expected %v, got %v", f.RawValue()*2+5, f.Value())
	}
	x2.Clean()
	plus5.Clean()

	if f.Div(20) != 0.5 || f.DivInto(20) != 2 {
		t.Errorf("Expected 0.5 and 2, got %v and %v", f.Div(20), f.DivInto(20))
	}
	if f.Add(20) != 30 || f.SubFrom(20) != 10 || f.Mul(20) != 200 {
		t.Error("Float arithmetic mismatch")
	}
	if !Less(f, g) || f.Float64() != 10 {
		t.Error("Float comparison mismatch")
	}
}

// TestGenericNumber verifies other numeric instantiations
func TestGenericNumber(t *testing.T) {
	u := NewNumber[uint8](200)
	u.AddGetPreProcessor(AtMost[uint8](150), PriorityCap)
	if u.Value() != 150 || u.RawValue() != 200 {
		t.Errorf("Expected value=150 raw=200, got value=%d raw=%d", u.Value(), u.RawValue())
	}

	f32 := NewNumber[float32](1)
	if f32.Compare(float32(math.Inf(1))) != -1 {
		t.Error("Expected 1 < +Inf")
	}
}

// TestOps verifies the transform helpers
func TestOps(t *testing.T) {
	cases := []struct {
		name string
		fn   Func[float64]
		in   float64
		want float64
	}{
		{"Offset", Offset(2.5), 1, 3.5},
		{"Scale", Scale(0.5), 8, 4},
		{"AtMost", AtMost(3.0), 8, 3},
		{"AtMostBelow", AtMost(3.0), 1, 1},
		{"AtLeast", AtLeast(3.0), 1, 3},
		{"ClampLow", Clamp(0.0, 1.0), -2, 0},
		{"ClampHigh", Clamp(0.0, 1.0), 2, 1},
		{"ClampInside", Clamp(0.0, 1.0), 0.25, 0.25},
		{"Override", Override(9.0), 1, 9},
		{"Truncate", Truncate, -2.7, -2},
	}
	for _, c := range cases {
		if got := c.fn(c.in); got != c.want {
			t.Errorf("%s(%v): expected %v, got %v", c.name, c.in, c.want, got)
		}
	}
}

// TestPriorityBands verifies conventional band ordering
func TestPriorityBands(t *testing.T) {
	p := NewFloat(10)
	p.AddGetPreProcessor(Clamp(0.0, 50.0), PriorityCap)
	p.AddGetPreProcessor(Scale(2.0), PriorityMultiplier)
	p.AddGetPreProcessor(Offset(20.0), PriorityBase)
	p.AddGetPreProcessor(Offset(-1.0), PriorityStatus)

	// ((10 + 20) * 2 - 1) capped at 50
	if p.Value() != 50 {
		t.Errorf("Expected 50, got %v", p.Value())
	}

	p.AddGetPreProcessor(Override(7.0), PriorityOverride)
	if p.Value() != 7 {
		t.Errorf("Expected override to win before caps, got %v", p.Value())
	}
}
