package value

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is the payload of a number value.
// Integers are held exactly so that every host width up to 64 bits
// survives a round trip; floats are held as float64.
type Number struct {
	i     int64
	f     float64
	float bool
}

// Int returns an integral Number.
func Int(v int64) Number {
	return Number{i: v}
}

// Float returns a floating point Number.
func Float(v float64) Number {
	return Number{f: v, float: true}
}

// NumberOf widens any built-in integer or float into a Number.
func NumberOf[T constraints.Integer | constraints.Float](v T) Number {
	switch x := any(v).(type) {
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case uint64:
		if x > math.MaxInt64 {
			return Float(float64(x))
		}
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Float(float64(x))
		}
	}
	return Int(int64(v))
}

// IsInteger reports whether n holds an exact integer.
func (n Number) IsInteger() bool {
	return !n.float
}

// Int64 returns n as int64. Float payloads truncate toward zero,
// NaN becomes 0 and out-of-range values saturate.
func (n Number) Int64() int64 {
	if !n.float {
		return n.i
	}
	return truncate(n.f)
}

// Float64 returns n as float64.
func (n Number) Float64() float64 {
	if n.float {
		return n.f
	}
	return float64(n.i)
}

func (n Number) Int8() int8       { return Narrow[int8](n) }
func (n Number) Int16() int16     { return Narrow[int16](n) }
func (n Number) Int32() int32     { return Narrow[int32](n) }
func (n Number) Float32() float32 { return NarrowFloat[float32](n) }

// Narrow converts n to a signed integer width, wrapping like a Go conversion.
func Narrow[T constraints.Signed](n Number) T {
	return T(n.Int64())
}

// NarrowFloat converts n to a float width.
func NarrowFloat[T constraints.Float](n Number) T {
	return T(n.Float64())
}

// Equal reports whether a and b hold the same payload representation.
// NaN floats compare equal to each other.
func (n Number) Equal(o Number) bool {
	if n.float != o.float {
		return false
	}
	if !n.float {
		return n.i == o.i
	}
	return math.Float64bits(n.f) == math.Float64bits(o.f) || (math.IsNaN(n.f) && math.IsNaN(o.f))
}

func (n Number) String() string {
	if !n.float {
		return strconv.FormatInt(n.i, 10)
	}
	switch {
	case math.IsNaN(n.f):
		return "NaN"
	case math.IsInf(n.f, 1):
		return "Infinity"
	case math.IsInf(n.f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
