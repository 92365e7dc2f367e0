package parameter

import "math"

// Offset adds d
func Offset[T Numeric](d T) Func[T] {
	return func(v T) T { return v + d }
}

// Scale multiplies by f
func Scale[T Numeric](f T) Func[T] {
	return func(v T) T { return v * f }
}

// AtMost caps the value at hi
func AtMost[T Numeric](hi T) Func[T] {
	return func(v T) T { return min(v, hi) }
}

// AtLeast raises the value to lo
func AtLeast[T Numeric](lo T) Func[T] {
	return func(v T) T { return max(v, lo) }
}

// Clamp bounds the value to [lo, hi]
func Clamp[T Numeric](lo, hi T) Func[T] {
	return func(v T) T { return min(max(v, lo), hi) }
}

// Override replaces the value with x
func Override[T any](x T) Func[T] {
	return func(T) T { return x }
}

// Truncate drops the fractional part, toward zero
var Truncate Func[float64] = math.Trunc
