package adapter

import (
	"reflect"

	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/value"
)

// NullableEncoding selects how Nullable encodes a host value.
type NullableEncoding uint8

const (
	// NullableEncodeNull always produces null, present value or not.
	// This is the default.
	NullableEncodeNull NullableEncoding = iota

	// NullableEncodeDelegate produces null for nil and delegates otherwise.
	NullableEncodeDelegate
)

func (m NullableEncoding) String() string {
	switch m {
	case NullableEncodeNull:
		return "null"
	case NullableEncodeDelegate:
		return "delegate"
	}
	return "unknown"
}

// ParseNullableEncoding parses "null" or "delegate".
func ParseNullableEncoding(s string) (NullableEncoding, error) {
	switch s {
	case "", "null":
		return NullableEncodeNull, nil
	case "delegate":
		return NullableEncodeDelegate, nil
	}
	return 0, errors.New(errors.PhaseResolve, errors.KindInvalidInput).
		Value(s).
		Detail("unknown nullable encoding %q (want null or delegate)", s).
		Build()
}

// Nullable adds null/undefined handling to a non-nullable delegate.
// The host "absent" value is the nil pointer.
type Nullable[T any] struct {
	delegate TypeAdapter[T]
	mode     NullableEncoding
}

// NewNullable wraps delegate.
func NewNullable[T any](delegate TypeAdapter[T], mode NullableEncoding) *Nullable[T] {
	return &Nullable[T]{delegate: delegate, mode: mode}
}

// Delegate returns the wrapped adapter.
func (n *Nullable[T]) Delegate() TypeAdapter[T] {
	return n.delegate
}

// Mode returns the encode behavior in effect.
func (n *Nullable[T]) Mode() NullableEncoding {
	return n.mode
}

func (n *Nullable[T]) HostType() HostType {
	h := n.delegate.HostType()
	h.Boxed = true
	return h
}

func (n *Nullable[T]) GoType() reflect.Type { return reflect.TypeFor[*T]() }

func (n *Nullable[T]) Encode(ctx Context, v *T) value.Value {
	return encodeNullable(n.mode, ctx, n.delegate, v)
}

// encodeNullable is the single place the wrapper's encode direction is
// decided. In NullableEncodeNull mode the host value is discarded.
func encodeNullable[T any](mode NullableEncoding, ctx Context, delegate TypeAdapter[T], v *T) value.Value {
	if mode == NullableEncodeDelegate && v != nil {
		return delegate.Encode(ctx, *v)
	}
	return ctx.CreateNull()
}

func (n *Nullable[T]) Decode(ctx Context, v value.Value) (*T, error) {
	if v.IsNullish() {
		return nil, nil
	}
	t, err := n.delegate.Decode(ctx, v)
	if err != nil {
		return nil, atHost(err, n.HostType())
	}
	return &t, nil
}

// EncodeAny accepts *T, T or an untyped nil.
func (n *Nullable[T]) EncodeAny(ctx Context, v any) (value.Value, error) {
	switch x := v.(type) {
	case nil:
		return n.Encode(ctx, nil), nil
	case *T:
		return n.Encode(ctx, x), nil
	case T:
		return n.Encode(ctx, &x), nil
	}
	return value.Value{}, encodeMismatch[*T](n.HostType(), v)
}

func (n *Nullable[T]) DecodeAny(ctx Context, v value.Value) (any, error) {
	t, err := n.Decode(ctx, v)
	if err != nil {
		return nil, err
	}
	return t, nil
}

var _ TypeAdapter[*int32] = (*Nullable[int32])(nil)
