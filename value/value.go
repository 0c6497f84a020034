package value

import (
	"strconv"

	"github.com/wippyai/js-bridge/errors"
)

// Value is a script value. Exactly one variant is active; payloads are
// reachable only through the checked As* accessors.
// The zero Value is undefined.
type Value struct {
	s    string
	n    Number
	kind Kind
	b    bool
}

func NewUndefined() Value { return Value{kind: KindUndefined} }

func NewNull() Value { return Value{kind: KindNull} }

func NewBoolean(b bool) Value { return Value{kind: KindBoolean, b: b} }

func NewNumber(n Number) Value { return Value{kind: KindNumber, n: n} }

func NewString(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the active variant.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNullish reports whether v is null or undefined.
func (v Value) IsNullish() bool {
	return v.kind.IsNullish()
}

// As checks that the active variant is k.
func (v Value) As(k Kind) error {
	if v.kind != k {
		return errors.TypeMismatch(errors.PhaseDecode, nil, k.String(), v.kind.String())
	}
	return nil
}

// AsBoolean returns the boolean payload.
func (v Value) AsBoolean() (bool, error) {
	if err := v.As(KindBoolean); err != nil {
		return false, err
	}
	return v.b, nil
}

// AsNumber returns the number payload.
func (v Value) AsNumber() (Number, error) {
	if err := v.As(KindNumber); err != nil {
		return Number{}, err
	}
	return v.n, nil
}

// AsString returns the string payload.
func (v Value) AsString() (string, error) {
	if err := v.As(KindString); err != nil {
		return "", err
	}
	return v.s, nil
}

// Equal reports whether v and o have the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBoolean:
		return v.b == o.b
	case KindNumber:
		return v.n.Equal(o.n)
	case KindString:
		return v.s == o.s
	default:
		return true
	}
}

// String renders v the way a script console would.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return v.n.String()
	case KindString:
		return strconv.Quote(v.s)
	default:
		return "undefined"
	}
}
