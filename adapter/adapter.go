package adapter

import (
	"fmt"
	"reflect"

	jsbridge "github.com/wippyai/js-bridge"
	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/value"
)

type Context = jsbridge.Context

// Void is the host "no value" marker.
type Void struct{}

// Adapter is the untyped facet every adapter exposes to the factory.
type Adapter interface {
	HostType() HostType
	GoType() reflect.Type
	EncodeAny(ctx Context, v any) (value.Value, error)
	DecodeAny(ctx Context, v value.Value) (any, error)
}

// TypeAdapter converts one host type to and from script values.
// Encode is total; Decode fails when the active variant does not fit.
type TypeAdapter[T any] interface {
	Adapter
	Encode(ctx Context, v T) value.Value
	Decode(ctx Context, v value.Value) (T, error)
}

// EncodeFunc and DecodeFunc are the two halves of a TypeAdapter.
type (
	EncodeFunc[T any] func(ctx Context, v T) value.Value
	DecodeFunc[T any] func(ctx Context, v value.Value) (T, error)
)

type funcAdapter[T any] struct {
	encode EncodeFunc[T]
	decode DecodeFunc[T]
	host   HostType
}

// Func builds a TypeAdapter from a pair of functions.
func Func[T any](host HostType, encode EncodeFunc[T], decode DecodeFunc[T]) TypeAdapter[T] {
	return &funcAdapter[T]{host: host, encode: encode, decode: decode}
}

func (a *funcAdapter[T]) HostType() HostType { return a.host }

func (a *funcAdapter[T]) GoType() reflect.Type { return reflect.TypeFor[T]() }

func (a *funcAdapter[T]) Encode(ctx Context, v T) value.Value {
	return a.encode(ctx, v)
}

func (a *funcAdapter[T]) Decode(ctx Context, v value.Value) (T, error) {
	t, err := a.decode(ctx, v)
	if err != nil {
		return t, withHost(err, a.host)
	}
	return t, nil
}

func (a *funcAdapter[T]) EncodeAny(ctx Context, v any) (value.Value, error) {
	t, ok := v.(T)
	if !ok {
		if v != nil || reflect.TypeFor[T]().Kind() != reflect.Pointer {
			return value.Value{}, encodeMismatch[T](a.host, v)
		}
		// untyped nil for a pointer host type
	}
	return a.encode(ctx, t), nil
}

func (a *funcAdapter[T]) DecodeAny(ctx Context, v value.Value) (any, error) {
	t, err := a.Decode(ctx, v)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ResolveAs resolves ht and asserts the adapter handles T.
func ResolveAs[T any](f *Factory, ht HostType) (TypeAdapter[T], error) {
	a, err := f.Resolve(ht)
	if err != nil {
		return nil, err
	}
	ta, ok := a.(TypeAdapter[T])
	if !ok {
		return nil, errors.New(errors.PhaseResolve, errors.KindTypeMismatch).
			HostType(ht.String()).
			Expected(reflect.TypeFor[T]().String()).
			Actual(a.GoType().String()).
			Build()
	}
	return ta, nil
}

func encodeMismatch[T any](host HostType, v any) error {
	return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
		HostType(host.String()).
		Expected(reflect.TypeFor[T]().String()).
		Actual(fmt.Sprintf("%T", v)).
		Value(v).
		Build()
}

// withHost stamps the host type onto a structured error that lacks one.
func withHost(err error, host HostType) error {
	if e, ok := err.(*errors.Error); ok && e.HostType == "" {
		cp := *e
		cp.HostType = host.String()
		return &cp
	}
	return err
}

// atHost replaces the host type on a structured error, so a wrapper
// reports its own descriptor rather than its delegate's.
func atHost(err error, host HostType) error {
	if e, ok := err.(*errors.Error); ok {
		cp := *e
		cp.HostType = host.String()
		return &cp
	}
	return err
}
