package binding

import (
	"reflect"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/wire"
)

// WriteValue writes one host value of a's type to buf, by underlying
// Go kind:
//
//	bool                  boolean
//	int8, int16, int32    int32 (char is its code point)
//	int64                 int64
//	float32, float64      double
//	string                string
//	adapter.Void          nothing
//
// Named host types with one of these kinds share the layout.
// Nullable types write a presence boolean, followed by the payload when
// present. They accept nil, *T or T, and their adapter must have a
// pointer Go type.
func WriteValue(buf *wire.Buffer, a adapter.Adapter, arg any) error {
	want := a.GoType()
	if a.HostType().Boxed {
		if want.Kind() != reflect.Pointer {
			return noLayout(errors.PhaseWrite, a)
		}
		want = want.Elem()
		present, payload, ok := unbox(arg, want)
		if !ok {
			return argMismatch(a, arg)
		}
		buf.WriteBoolean(present)
		if !present {
			return nil
		}
		arg = payload
	} else if arg == nil || reflect.TypeOf(arg) != want {
		return argMismatch(a, arg)
	}

	if _, ok := arg.(adapter.Void); ok {
		return nil
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Bool:
		buf.WriteBoolean(rv.Bool())
	case reflect.Int8, reflect.Int16, reflect.Int32:
		buf.WriteInt32(int32(rv.Int()))
	case reflect.Int64:
		buf.WriteInt64(rv.Int())
	case reflect.Float32, reflect.Float64:
		buf.WriteDouble(rv.Float())
	case reflect.String:
		return buf.WriteString(rv.String())
	default:
		return noLayout(errors.PhaseWrite, a)
	}
	return nil
}

// ReadValue reads one host value of a's type, the inverse of
// WriteValue. Nullable types yield a typed nil pointer when absent.
func ReadValue(r *wire.Reader, a adapter.Adapter) (any, error) {
	t := a.GoType()
	if !a.HostType().Boxed {
		return readPayload(r, a, t)
	}
	if t.Kind() != reflect.Pointer {
		return nil, noLayout(errors.PhaseRead, a)
	}

	present, err := r.ReadBoolean()
	if err != nil {
		return nil, err
	}
	if !present {
		return reflect.Zero(t).Interface(), nil
	}
	v, err := readPayload(r, a, t.Elem())
	if err != nil {
		return nil, err
	}
	ptr := reflect.New(t.Elem())
	ptr.Elem().Set(reflect.ValueOf(v))
	return ptr.Interface(), nil
}

func readPayload(r *wire.Reader, a adapter.Adapter, t reflect.Type) (any, error) {
	if t == reflect.TypeFor[adapter.Void]() {
		return adapter.Void{}, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return r.ReadBoolean()
	case reflect.Int8, reflect.Int16, reflect.Int32:
		v, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(v).Convert(t).Interface(), nil
	case reflect.Int64:
		v, err := r.ReadInt64()
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(v).Convert(t).Interface(), nil
	case reflect.Float32, reflect.Float64:
		v, err := r.ReadDouble()
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(v).Convert(t).Interface(), nil
	case reflect.String:
		return r.ReadString()
	}
	return nil, noLayout(errors.PhaseRead, a)
}

// unbox accepts nil, *T or T for a nullable value of element type t.
func unbox(arg any, t reflect.Type) (present bool, payload any, ok bool) {
	if arg == nil {
		return false, nil, true
	}
	rv := reflect.ValueOf(arg)
	switch rv.Type() {
	case t:
		return true, arg, true
	case reflect.PointerTo(t):
		if rv.IsNil() {
			return false, nil, true
		}
		return true, rv.Elem().Interface(), true
	}
	return false, nil, false
}

func argMismatch(a adapter.Adapter, arg any) error {
	actual := "nil"
	if arg != nil {
		actual = reflect.TypeOf(arg).String()
	}
	return errors.New(errors.PhaseWrite, errors.KindTypeMismatch).
		HostType(a.HostType().String()).
		Expected(a.GoType().String()).
		Actual(actual).
		Value(arg).
		Build()
}

func noLayout(phase errors.Phase, a adapter.Adapter) error {
	return errors.New(phase, errors.KindUnsupported).
		HostType(a.HostType().String()).
		Detail("no wire layout for %s", a.GoType()).
		Build()
}
