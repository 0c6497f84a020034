package value

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/wippyai/js-bridge/errors"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUndefined, "undefined"},
		{KindNull, "null"},
		{KindBoolean, "boolean"},
		{KindNumber, "number"},
		{KindString, "string"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestValue_ZeroIsUndefined(t *testing.T) {
	var v Value
	if v.Kind() != KindUndefined {
		t.Errorf("zero Value kind = %v, want undefined", v.Kind())
	}
	if !v.IsNullish() {
		t.Error("zero Value should be nullish")
	}
}

func TestValue_CheckedDowncast(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		kind  Kind
	}{
		{"null", NewNull(), KindNull},
		{"undefined", NewUndefined(), KindUndefined},
		{"boolean", NewBoolean(true), KindBoolean},
		{"number", NewNumber(Int(7)), KindNumber},
		{"string", NewString("x"), KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.value.As(tt.kind); err != nil {
				t.Fatalf("As(%v) on matching variant: %v", tt.kind, err)
			}

			for _, other := range []Kind{KindNull, KindUndefined, KindBoolean, KindNumber, KindString} {
				if other == tt.kind {
					continue
				}
				err := tt.value.As(other)
				if err == nil {
					t.Fatalf("As(%v) on %v variant should fail", other, tt.kind)
				}
				var e *errors.Error
				if !stderrors.As(err, &e) {
					t.Fatalf("error type = %T, want *errors.Error", err)
				}
				if e.Kind != errors.KindTypeMismatch {
					t.Errorf("Kind = %v, want type_mismatch", e.Kind)
				}
				if e.Expected != other.String() || e.Actual != tt.kind.String() {
					t.Errorf("Expected=%q Actual=%q, want %q/%q", e.Expected, e.Actual, other, tt.kind)
				}
			}
		})
	}
}

func TestValue_Payloads(t *testing.T) {
	b, err := NewBoolean(true).AsBoolean()
	if err != nil || !b {
		t.Errorf("AsBoolean = %v, %v", b, err)
	}

	n, err := NewNumber(Float(1.5)).AsNumber()
	if err != nil || n.Float64() != 1.5 {
		t.Errorf("AsNumber = %v, %v", n, err)
	}

	s, err := NewString("héllo").AsString()
	if err != nil || s != "héllo" {
		t.Errorf("AsString = %q, %v", s, err)
	}

	if _, err := NewString("1").AsNumber(); !stderrors.Is(err, errors.ErrTypeMismatch) {
		t.Errorf("AsNumber on string: err = %v, want type mismatch", err)
	}
	if _, err := NewNull().AsString(); !stderrors.Is(err, errors.ErrTypeMismatch) {
		t.Errorf("AsString on null: err = %v, want type mismatch", err)
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{NewNull(), "null"},
		{NewUndefined(), "undefined"},
		{NewBoolean(false), "false"},
		{NewNumber(Int(-3)), "-3"},
		{NewNumber(Float(0.25)), "0.25"},
		{NewNumber(Float(math.NaN())), "NaN"},
		{NewNumber(Float(math.Inf(-1))), "-Infinity"},
		{NewString(`a"b`), `"a\"b"`},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	if !NewNumber(Float(math.NaN())).Equal(NewNumber(Float(math.NaN()))) {
		t.Error("NaN numbers should be equal by representation")
	}
	if NewNumber(Int(1)).Equal(NewNumber(Float(1))) {
		t.Error("integer and float payloads are distinct representations")
	}
	if NewNull().Equal(NewUndefined()) {
		t.Error("null and undefined must differ")
	}
	if !NewString("a").Equal(NewString("a")) {
		t.Error("equal strings should be equal")
	}
}

func TestPlain(t *testing.T) {
	var p Plain
	if p.CreateNull().Kind() != KindNull {
		t.Error("CreateNull")
	}
	if p.CreateUndefined().Kind() != KindUndefined {
		t.Error("CreateUndefined")
	}
	if b, _ := p.CreateBoolean(true).AsBoolean(); !b {
		t.Error("CreateBoolean")
	}
	if n, _ := p.CreateNumber(Int(5)).AsNumber(); n.Int64() != 5 {
		t.Error("CreateNumber")
	}
	if s, _ := p.CreateString("s").AsString(); s != "s" {
		t.Error("CreateString")
	}
}
