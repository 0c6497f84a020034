package value

import (
	"math"
	"testing"
)

func TestNumber_IntegerWidths(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		i8   int8
		i16  int16
		i32  int32
	}{
		{"zero", 0, 0, 0, 0},
		{"minus one", -1, -1, -1, -1},
		{"int8 max", math.MaxInt8, math.MaxInt8, math.MaxInt8, math.MaxInt8},
		{"int8 wrap", 200, -56, 200, 200},
		{"int16 min", math.MinInt16, 0, math.MinInt16, math.MinInt16},
		{"int32 wrap", 1 << 32, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Int(tt.in)
			if got := n.Int8(); got != tt.i8 {
				t.Errorf("Int8() = %d, want %d", got, tt.i8)
			}
			if got := n.Int16(); got != tt.i16 {
				t.Errorf("Int16() = %d, want %d", got, tt.i16)
			}
			if got := n.Int32(); got != tt.i32 {
				t.Errorf("Int32() = %d, want %d", got, tt.i32)
			}
			if got := n.Int64(); got != tt.in {
				t.Errorf("Int64() = %d, want %d", got, tt.in)
			}
		})
	}
}

func TestNumber_Int64Exact(t *testing.T) {
	for _, v := range []int64{math.MaxInt64, math.MinInt64, math.MaxInt64 - 1, 1<<53 + 1} {
		if got := Int(v).Int64(); got != v {
			t.Errorf("Int(%d).Int64() = %d", v, got)
		}
	}
}

func TestNumber_FloatToInt(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{1.9, 1},
		{-1.9, -1},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt64},
		{math.Inf(-1), math.MinInt64},
		{1e300, math.MaxInt64},
		{-1e300, math.MinInt64},
	}
	for _, tt := range tests {
		if got := Float(tt.in).Int64(); got != tt.want {
			t.Errorf("Float(%v).Int64() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNumber_Floats(t *testing.T) {
	f32 := float32(3.4028235e38)
	if got := NumberOf(f32).Float32(); got != f32 {
		t.Errorf("float32 max round trip = %v", got)
	}
	if got := Float(math.SmallestNonzeroFloat64).Float64(); got != math.SmallestNonzeroFloat64 {
		t.Errorf("smallest float64 = %v", got)
	}
	negZero := math.Copysign(0, -1)
	if got := Float(negZero).Float64(); !math.Signbit(got) {
		t.Error("negative zero lost its sign")
	}
	if got := Int(7).Float64(); got != 7 {
		t.Errorf("Int(7).Float64() = %v", got)
	}
}

func TestNumberOf(t *testing.T) {
	if n := NumberOf(int8(-5)); !n.IsInteger() || n.Int64() != -5 {
		t.Errorf("NumberOf(int8) = %v", n)
	}
	if n := NumberOf(float64(2.5)); n.IsInteger() || n.Float64() != 2.5 {
		t.Errorf("NumberOf(float64) = %v", n)
	}
	if n := NumberOf(uint64(math.MaxUint64)); n.IsInteger() {
		t.Errorf("NumberOf(MaxUint64) should fall back to float, got %v", n)
	}
	if n := NumberOf(uint32(math.MaxUint32)); n.Int64() != math.MaxUint32 {
		t.Errorf("NumberOf(MaxUint32) = %v", n)
	}
}
